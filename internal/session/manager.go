package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Manager owns the live sessions of a desk instance, keyed by session
// id. It carries the collaborator wiring every new session inherits.
type Manager struct {
	deps Deps

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(deps Deps) (*Manager, error) {
	if deps.Directory == nil || deps.Dispositions == nil {
		return nil, errors.New("session: directory and disposition services are required")
	}
	if deps.Dialer == nil || deps.Recorder == nil {
		return nil, errors.New("session: dialer and recorder are required")
	}
	if deps.Channel.Name == "" {
		deps.Channel = ChannelTelephony
	}
	return &Manager{
		deps:     deps,
		sessions: map[string]*Session{},
	}, nil
}

// Create starts a new session for an agent. rawCTI is the optional
// descriptor from the integration layer; empty means manual mode.
func (m *Manager) Create(ctx context.Context, agent, rawCTI string) (*Session, error) {
	s := newSession(uuid.NewString(), agent, m.deps)
	if err := s.start(ctx, rawCTI); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns a live session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops a session from the registry. Pending prompts are
// cancelled so no place-call attempt stays parked forever.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		_ = s.CancelNumber()
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
