package session

import (
	"context"
	"testing"
)

func TestManager_RequiresCoreCollaborators(t *testing.T) {
	if _, err := NewManager(Deps{}); err == nil {
		t.Fatalf("expected error for missing collaborators")
	}
}

func TestManager_CreateGetRemove(t *testing.T) {
	f := newFixture(t, nil)

	s, err := f.manager.Create(context.Background(), "1001", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.manager.Len() != 1 {
		t.Fatalf("expected one live session")
	}

	got, ok := f.manager.Get(s.ID())
	if !ok || got != s {
		t.Fatalf("expected session by id")
	}

	f.manager.Remove(s.ID())
	if _, ok := f.manager.Get(s.ID()); ok {
		t.Fatalf("expected session removed")
	}
}

func TestManager_DefaultsToTelephonyChannel(t *testing.T) {
	f := newFixture(t, nil)
	if f.manager.deps.Channel.Name != ChannelTelephony.Name {
		t.Fatalf("expected telephony default, got %q", f.manager.deps.Channel.Name)
	}
}
