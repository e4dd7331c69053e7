package session

import "agentdesk/internal/disposition"

// Snapshot is the read-only view of a session the presentation layer
// renders from.
type Snapshot struct {
	ID                 string `json:"id"`
	Agent              string `json:"agent"`
	State              string `json:"state"`
	HasExternalContext bool   `json:"has_external_context"`

	Guid     string            `json:"guid,omitempty"`
	Phone    string            `json:"phone,omitempty"`
	Params   map[string]string `json:"params,omitempty"`
	Notes    string            `json:"notes,omitempty"`

	Campaigns []string `json:"campaigns"`
	Campaign  Campaign `json:"campaign"`

	Selection    disposition.Selection `json:"selection"`
	LevelOptions [][]string            `json:"level_options"`

	PromptPending  bool     `json:"prompt_pending"`
	PromptOptions  []string `json:"prompt_options,omitempty"`
	PromptSelected string   `json:"prompt_selected,omitempty"`
}

// Snapshot captures the current session state under the lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:                 s.id,
		Agent:              s.agent,
		State:              s.state.String(),
		HasExternalContext: s.hasExternalContext,
		Guid:               s.client.Guid,
		Phone:              s.client.Phone,
		Params:             s.client.Params,
		Notes:              s.notes,
		Campaigns:          append([]string(nil), s.campaigns...),
		Campaign: Campaign{
			Name:    s.campaign.Name,
			Numbers: append([]string(nil), s.campaign.Numbers...),
		},
		Selection: s.selection,
		LevelOptions: [][]string{
			s.levelOptions(0),
			s.levelOptions(1),
			s.levelOptions(2),
		},
	}
	if s.prompt != nil {
		snap.PromptPending = true
		snap.PromptOptions = append([]string(nil), s.prompt.options...)
		snap.PromptSelected = s.prompt.selected
	}
	return snap
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
