package notify

import (
	"context"
	"sync"
)

// MemoryNotifier records notices for test assertions.
type MemoryNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func NewMemoryNotifier() *MemoryNotifier { return &MemoryNotifier{} }

func (m *MemoryNotifier) Notify(_ context.Context, n Notice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, n)
}

// Notices returns a copy of everything notified so far.
func (m *MemoryNotifier) Notices() []Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notice, len(m.notices))
	copy(out, m.notices)
	return out
}

// Last returns the most recent notice, if any.
func (m *MemoryNotifier) Last() (Notice, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.notices) == 0 {
		return Notice{}, false
	}
	return m.notices[len(m.notices)-1], true
}

// Reset clears all recorded notices.
func (m *MemoryNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = nil
}
