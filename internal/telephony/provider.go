package telephony

import (
	"context"
)

// Provider-agnostic contracts for the unified-communications gateway the
// agent desk talks to. Business logic depends on these interfaces only;
// no gateway SDK calls outside telephony adapters.

// OriginateRequest asks the gateway to place an outbound call on behalf
// of the agent.
type OriginateRequest struct {
	// Campaign is the queue the call is billed and routed under.
	Campaign string `json:"campaign"`

	// Source is the chosen campaign DID presented to the callee.
	Source string `json:"source"`

	// Destination is the client's number.
	Destination string `json:"destination"`

	// AutoAnswer asks the gateway to bridge the agent leg without ringing.
	AutoAnswer bool `json:"auto_answer"`
}

// Dialer places outbound calls.
type Dialer interface {
	// PlaceCall returns the gateway's correlation id for the new call.
	PlaceCall(ctx context.Context, req OriginateRequest) (string, error)
}

// DispositionReport is the outcome record persisted when an interaction
// is finished.
type DispositionReport struct {
	Campaign      string `json:"campaign"`
	Destination   string `json:"destination"`
	CorrelationID string `json:"correlation_id"`

	Level1 string `json:"level1"`
	Level2 string `json:"level2,omitempty"`
	Level3 string `json:"level3,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// DispositionRecorder persists disposition reports downstream.
type DispositionRecorder interface {
	Record(ctx context.Context, report DispositionReport) error
}

// SessionCloser signals the integration layer to tear down a one-shot
// CTI-driven interaction (close the popped form). Fire-and-forget:
// callers log errors but never fail the finish on them.
type SessionCloser interface {
	CloseForm(ctx context.Context, interactionID string) error
}

// ContactRemover deletes the client record after a finished interaction.
// Only some channels (messaging) support this; voice gateways may not
// implement it.
type ContactRemover interface {
	DeleteContact(ctx context.Context, campaign, contact string) error
}

// Gateway bundles every collaborator a full-featured adapter provides.
type Gateway interface {
	Name() string
	HealthCheck(ctx context.Context) error

	Dialer
	DispositionRecorder
	SessionCloser
}
