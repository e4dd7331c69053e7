package directory

import (
	"context"
	"log/slog"
	"strings"
)

// ChannelTelephony is the queue channel the voice desk operates on.
const ChannelTelephony = "telephony"

// numberSeparator joins multiple DIDs inside a single raw queue field.
const numberSeparator = ":"

// Repository is the persistence contract for campaign lookups.
//
// Implementations MUST use parameterized queries; agent and campaign
// identifiers are opaque strings and are never spliced into query text.
type Repository interface {
	// AgentCampaigns returns the queue names an agent may handle on the
	// given channel.
	AgentCampaigns(ctx context.Context, agent, channel string) ([]string, error)

	// CampaignNumbers returns the raw DID fields for a campaign. A single
	// row may concatenate several numbers.
	CampaignNumbers(ctx context.Context, campaign string) ([]string, error)
}

// Service resolves the campaigns an agent may operate and the dial-out
// numbers of a chosen campaign.
//
// Lookup failures are degraded to empty results and logged; the desk keeps
// working with zero options rather than failing the session.
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

// ListCampaigns returns the campaign names available to an agent on the
// given channel, source order preserved. Empty on failure.
func (s *Service) ListCampaigns(ctx context.Context, agent, channel string) []string {
	if channel == "" {
		channel = ChannelTelephony
	}
	names, err := s.repo.AgentCampaigns(ctx, agent, channel)
	if err != nil {
		s.log.Error("campaign lookup failed", "agent", agent, "err", err)
		return nil
	}
	return names
}

// EnsureIncluded appends tag to campaigns when it is not already present.
// The CTI-supplied campaign must always be selectable even when the
// directory query omits it.
func EnsureIncluded(campaigns []string, tag string) []string {
	if tag == "" {
		return campaigns
	}
	for _, c := range campaigns {
		if c == tag {
			return campaigns
		}
	}
	return append(campaigns, tag)
}

// LoadNumbers returns the flat list of dial-out numbers for a campaign:
// raw fields split on ':', trimmed, blanks and repeats dropped, order
// preserved. Empty on failure or no results.
func (s *Service) LoadNumbers(ctx context.Context, campaign string) []string {
	raw, err := s.repo.CampaignNumbers(ctx, campaign)
	if err != nil {
		s.log.Error("campaign number lookup failed", "campaign", campaign, "err", err)
		return nil
	}
	return SplitNumbers(raw)
}

// SplitNumbers flattens raw DID fields into individual numbers, keeping
// the first occurrence of each.
func SplitNumbers(raw []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, field := range raw {
		for _, n := range strings.Split(field, numberSeparator) {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
