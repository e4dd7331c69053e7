package disposition

import (
	"context"
	"sync"
)

// MemoryRepo is a simple in-memory repository useful for tests.
type MemoryRepo struct {
	mu sync.Mutex

	// Rows maps campaign -> catalog rows.
	Rows map[string][]Record

	// Err, when set, is returned by every lookup.
	Err error
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{Rows: map[string][]Record{}}
}

func (r *MemoryRepo) CampaignDispositions(ctx context.Context, campaign string) ([]Record, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]Record, len(r.Rows[campaign]))
	copy(out, r.Rows[campaign])
	return out, nil
}
