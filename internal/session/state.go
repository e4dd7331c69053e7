package session

import "fmt"

// State is the lifecycle state of one client interaction.
type State int

const (
	// StateIdle is the initial state before the session starts.
	StateIdle State = iota
	// StateLoading is while agent identity and campaigns are resolved.
	StateLoading
	// StateAwaitingCampaign waits for a manual campaign pick.
	StateAwaitingCampaign
	// StateReady has a campaign selected; calls and finishes are possible.
	StateReady
	// StateCallActive has an outbound call in progress.
	StateCallActive
	// StateFinishing is while the disposition is being persisted.
	StateFinishing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateAwaitingCampaign:
		return "awaiting_campaign"
	case StateReady:
		return "ready"
	case StateCallActive:
		return "call_active"
	case StateFinishing:
		return "finishing"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// validTransitions defines which state transitions are allowed.
// Finishing may fall back to Ready or CallActive when disposition
// persistence fails, so the agent can retry.
var validTransitions = map[State][]State{
	StateIdle:             {StateLoading},
	StateLoading:          {StateAwaitingCampaign, StateReady},
	StateAwaitingCampaign: {StateReady},
	StateReady:            {StateReady, StateCallActive, StateFinishing},
	StateCallActive:       {StateFinishing},
	StateFinishing:        {StateReady, StateAwaitingCampaign, StateCallActive},
}

// CanTransitionTo checks if moving from s to next is allowed.
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
