package session

import "context"

// CallGuard caps active calls per agent across desk instances. The
// session also tracks call-active locally; the guard is the shared
// backstop when several processes serve the same agent.
//
// A nil guard means the in-session flag is the only enforcement.
type CallGuard interface {
	// Acquire reserves the agent's call slot. false means a call is
	// already active elsewhere.
	Acquire(ctx context.Context, agent string) (bool, error)

	// Release frees the agent's call slot.
	Release(ctx context.Context, agent string) error
}
