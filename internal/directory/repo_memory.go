package directory

import (
	"context"
	"sync"
)

// MemoryRepo is a simple in-memory repository useful for tests and early
// development. Not intended for production.
type MemoryRepo struct {
	mu sync.Mutex

	// Campaigns maps agent -> queue names (telephony channel assumed).
	Campaigns map[string][]string

	// Numbers maps campaign -> raw DID fields.
	Numbers map[string][]string

	// Err, when set, is returned by every lookup.
	Err error
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		Campaigns: map[string][]string{},
		Numbers:   map[string][]string{},
	}
}

func (r *MemoryRepo) AgentCampaigns(ctx context.Context, agent, channel string) ([]string, error) {
	_ = ctx
	_ = channel
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]string, len(r.Campaigns[agent]))
	copy(out, r.Campaigns[agent])
	return out, nil
}

func (r *MemoryRepo) CampaignNumbers(ctx context.Context, campaign string) ([]string, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]string, len(r.Numbers[campaign]))
	copy(out, r.Numbers[campaign])
	return out, nil
}
