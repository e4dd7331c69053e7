package disposition

import (
	"context"
	"log/slog"
	"strings"
)

// Record is one row of a campaign's outcome-code tree. Level2/Level3 may
// be empty, meaning the branch does not refine further at that depth.
type Record struct {
	Level1 string `json:"value1" db:"value1"`
	Level2 string `json:"value2" db:"value2"`
	Level3 string `json:"value3" db:"value3"`
}

// Catalog is the full disposition tree loaded for a campaign.
type Catalog []Record

// Level1Options returns the distinct non-blank level-1 values in
// first-occurrence order.
func (c Catalog) Level1Options() []string {
	return distinct(c, func(r Record) string { return r.Level1 }, func(Record) bool { return true })
}

// Level2Options returns the distinct non-blank level-2 values among rows
// whose level-1 matches.
func (c Catalog) Level2Options(level1 string) []string {
	return distinct(c, func(r Record) string { return r.Level2 }, func(r Record) bool {
		return r.Level1 == level1
	})
}

// Level3Options returns the distinct non-blank level-3 values among rows
// matching both parents.
func (c Catalog) Level3Options(level1, level2 string) []string {
	return distinct(c, func(r Record) string { return r.Level3 }, func(r Record) bool {
		return r.Level1 == level1 && r.Level2 == level2
	})
}

func distinct(c Catalog, value func(Record) string, match func(Record) bool) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range c {
		if !match(r) {
			continue
		}
		v := value(r)
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Repository is the persistence contract for disposition catalogs.
type Repository interface {
	CampaignDispositions(ctx context.Context, campaign string) ([]Record, error)
}

// Service loads campaign disposition catalogs, degrading load failures to
// a logged no-op so the previously loaded catalog stays usable.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// LoadForCampaign fetches the catalog for a campaign. On failure it
// returns ok=false and the caller must keep its previous catalog.
func (s *Service) LoadForCampaign(ctx context.Context, campaign string) (Catalog, bool) {
	rows, err := s.repo.CampaignDispositions(ctx, campaign)
	if err != nil {
		s.log.Error("disposition lookup failed", "campaign", campaign, "err", err)
		return nil, false
	}
	return Catalog(rows), true
}
