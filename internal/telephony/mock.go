package telephony

import (
	"context"
	"sync"
)

// MockGateway records every gateway interaction for test assertions.
type MockGateway struct {
	mu sync.Mutex

	// NextCorrelationID is returned by PlaceCall when set.
	NextCorrelationID string

	// DialErr / RecordErr / CloseErr / DeleteErr force failures.
	DialErr   error
	RecordErr error
	CloseErr  error
	DeleteErr error

	calls      []OriginateRequest
	reports    []DispositionReport
	closed     []string
	deleted    [][2]string
}

func NewMockGateway() *MockGateway { return &MockGateway{} }

func (m *MockGateway) Name() string { return "mock" }

func (m *MockGateway) HealthCheck(ctx context.Context) error { return nil }

func (m *MockGateway) PlaceCall(ctx context.Context, req OriginateRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DialErr != nil {
		return "", m.DialErr
	}
	m.calls = append(m.calls, req)
	id := m.NextCorrelationID
	if id == "" {
		id = "call-1"
	}
	return id, nil
}

func (m *MockGateway) Record(ctx context.Context, report DispositionReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.reports = append(m.reports, report)
	return nil
}

func (m *MockGateway) CloseForm(ctx context.Context, interactionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CloseErr != nil {
		return m.CloseErr
	}
	m.closed = append(m.closed, interactionID)
	return nil
}

func (m *MockGateway) DeleteContact(ctx context.Context, campaign, contact string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.deleted = append(m.deleted, [2]string{campaign, contact})
	return nil
}

// Calls returns a copy of all originate requests.
func (m *MockGateway) Calls() []OriginateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]OriginateRequest, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reports returns a copy of all recorded dispositions.
func (m *MockGateway) Reports() []DispositionReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]DispositionReport, len(m.reports))
	copy(out, m.reports)
	return out
}

// Closed returns the interaction ids CloseForm was invoked with.
func (m *MockGateway) Closed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.closed))
	copy(out, m.closed)
	return out
}

// Deleted returns the (campaign, contact) pairs DeleteContact saw.
func (m *MockGateway) Deleted() [][2]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][2]string, len(m.deleted))
	copy(out, m.deleted)
	return out
}
