package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for audit events.
//
// It MUST be append-only. No Update/Delete methods are provided.
type Repository interface {
	Append(ctx context.Context, e Event) error
}

// Service records the session lifecycle trail.
//
// Callers should treat audit logging as best-effort: a failed append is
// logged by the caller and never aborts a workflow transition.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

var ErrInvalidEvent = errors.New("audit: invalid event")

func (s *Service) Append(ctx context.Context, e Event) error {
	if s.repo == nil {
		return errors.New("audit: repository not configured")
	}
	if e.AgentCode == "" {
		return ErrInvalidEvent
	}
	if e.Type == "" {
		return ErrInvalidEvent
	}

	now := s.clock().UTC()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	return s.repo.Append(ctx, e)
}

// LogSession records a session lifecycle step.
func (s *Service) LogSession(ctx context.Context, typ EventType, agentCode, sessionID, campaign, callID, message string) error {
	return s.Append(ctx, Event{
		AgentCode: agentCode,
		Type:      typ,
		SessionID: sessionID,
		Campaign:  campaign,
		CallID:    callID,
		Message:   message,
	})
}
