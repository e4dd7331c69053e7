package cti

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Descriptor is the raw session payload handed over by the CTI
// integration layer when a screen-pop arrives. All fields are optional;
// key names are fixed by the integration contract and case-sensitive.
type Descriptor struct {
	Guid         string `json:"Guid"`
	Screen       string `json:"Screen"`
	Form         string `json:"Form"`
	Campaign     string `json:"Campaign"`
	Callerid     string `json:"Callerid"`
	ParAndValues string `json:"ParAndValues"`
	Beep         string `json:"Beep"`
	Answer       string `json:"Answer"`
}

// ClientContext is the normalized per-interaction record seeded from a
// Descriptor. It is built once at session start; only Guid is later
// overwritten (with the correlation id returned by the dialer).
type ClientContext struct {
	// Guid correlates the interaction across CTI, dialer and disposition
	// records.
	Guid string

	// Phone is the caller/destination number from the CTI Callerid field.
	Phone string

	// Campaign is the campaign tag supplied by the dialer, if any.
	Campaign string

	// AutoAnswer asks the gateway to bridge the agent leg without
	// ringing, from the descriptor's Answer flag.
	AutoAnswer bool

	// Params holds the decoded ParAndValues key=value blob.
	Params map[string]string
}

// Empty reports whether the context carries no CTI data at all
// (manual-mode session).
func (c ClientContext) Empty() bool {
	return c.Guid == "" && c.Phone == "" && c.Campaign == "" && len(c.Params) == 0
}

// ParseError indicates a malformed descriptor. The caller is expected to
// fall back to manual mode and surface the reason to the agent.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cti: malformed descriptor: %s", e.Reason)
}

// Parse decodes a raw CTI descriptor into a ClientContext.
//
// An empty raw string is not an error: it yields an empty context and the
// session runs in manual mode. Malformed JSON yields a *ParseError.
// ParAndValues pairs that are blank, missing '=' or have an empty key or
// value are skipped silently; a garbage blob simply produces no params.
func Parse(raw string) (ClientContext, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ClientContext{Params: map[string]string{}}, nil
	}

	var d Descriptor
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return ClientContext{}, &ParseError{Reason: err.Error()}
	}

	return ClientContext{
		Guid:       d.Guid,
		Phone:      d.Callerid,
		Campaign:   d.Campaign,
		AutoAnswer: flag(d.Answer),
		Params:     parseParams(d.ParAndValues),
	}, nil
}

// flag interprets the loosely typed boolean fields of a Descriptor.
func flag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// parseParams splits a ':'-delimited key=value blob.
func parseParams(blob string) map[string]string {
	out := map[string]string{}
	if strings.TrimSpace(blob) == "" {
		return out
	}
	for _, pair := range strings.Split(blob, ":") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		eq := strings.Index(pair, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(pair[:eq])
		value := strings.TrimSpace(pair[eq+1:])
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}
