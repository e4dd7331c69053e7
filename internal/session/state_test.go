package session

import "testing"

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		ok       bool
	}{
		{StateIdle, StateLoading, true},
		{StateIdle, StateReady, false},
		{StateLoading, StateAwaitingCampaign, true},
		{StateLoading, StateReady, true},
		{StateAwaitingCampaign, StateReady, true},
		{StateAwaitingCampaign, StateCallActive, false},
		{StateReady, StateCallActive, true},
		{StateReady, StateFinishing, true},
		{StateCallActive, StateFinishing, true},
		{StateCallActive, StateReady, false},
		{StateFinishing, StateReady, true},
		{StateFinishing, StateAwaitingCampaign, true},
		{StateFinishing, StateCallActive, true},
		{StateFinishing, StateIdle, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.ok {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.ok, got)
		}
	}
}

func TestStateString(t *testing.T) {
	if StateAwaitingCampaign.String() != "awaiting_campaign" {
		t.Fatalf("unexpected %q", StateAwaitingCampaign.String())
	}
	if State(99).String() != "unknown(99)" {
		t.Fatalf("unexpected %q", State(99).String())
	}
}
