package audit

import "time"

// Event is an immutable, append-only trail record of agent-desk activity.
//
// Invariants:
// - Events are never updated or deleted.
// - agent_code is required; it ties the record to the operator.
// - Audit writes are best-effort; workflow steps never block on them.
//
// Storage recommendation (Postgres):
// - Table audit_events with an INSERT-only policy.
// - Optional: partition by time for retention.
type Event struct {
	ID        string `json:"id" db:"id"`
	AgentCode string `json:"agent_code" db:"agent_code"`

	// Type indicates the session lifecycle step being recorded.
	Type EventType `json:"type" db:"type"`

	// Target identifiers (optional, depending on the event type).
	SessionID string `json:"session_id,omitempty" db:"session_id"`
	Campaign  string `json:"campaign,omitempty" db:"campaign"`
	CallID    string `json:"call_id,omitempty" db:"call_id"`

	// Message is a short human-readable description for internal ops.
	Message string `json:"message,omitempty" db:"message"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type EventType string

const (
	EventTypeSessionStarted   EventType = "session_started"
	EventTypeCampaignSelected EventType = "campaign_selected"
	EventTypeCallPlaced       EventType = "call_placed"
	EventTypeDispositionSaved EventType = "disposition_saved"
	EventTypeSessionFinished  EventType = "session_finished"
)
