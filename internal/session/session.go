package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"agentdesk/internal/audit"
	"agentdesk/internal/cti"
	"agentdesk/internal/directory"
	"agentdesk/internal/disposition"
	"agentdesk/internal/notify"
	"agentdesk/internal/telephony"
)

// NoAgent is the sentinel identity used when no agent account code is
// available from the context provider. Never fatal.
const NoAgent = "noAgent"

// Campaign is the currently selected campaign and its dial-out numbers.
// Numbers are never mutated once loaded; changing campaign replaces the
// whole value.
type Campaign struct {
	Name    string   `json:"name"`
	Numbers []string `json:"numbers"`
}

// Deps are the collaborators a session calls into. Directory,
// Dispositions, Dialer, Recorder and Notifier are required; the rest are
// optional.
type Deps struct {
	Directory    *directory.Service
	Dispositions *disposition.Service

	Dialer   telephony.Dialer
	Recorder telephony.DispositionRecorder
	Closer   telephony.SessionCloser
	Contacts telephony.ContactRemover

	Notifier notify.Notifier
	Audit    *audit.Service
	Guard    CallGuard

	Channel Channel
	Log     *slog.Logger
}

// Session is the workflow state machine for one client interaction.
//
// Every operation owns the session lock for itself; the only suspension
// point that releases it is the wait on the number selection prompt, so
// session fields are never mutated concurrently mid-step.
type Session struct {
	id    string
	agent string
	deps  Deps

	mu sync.Mutex

	state              State
	hasExternalContext bool

	client    cti.ClientContext
	campaigns []string
	campaign  Campaign
	catalog   disposition.Catalog
	selection disposition.Selection
	notes     string

	prompt *numberPrompt
}

func newSession(id, agent string, deps Deps) *Session {
	if agent == "" {
		agent = NoAgent
	}
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	return &Session{
		id:    id,
		agent: agent,
		deps:  deps,
		state: StateIdle,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Agent returns the operator account code.
func (s *Session) Agent() string { return s.agent }

// start runs the Idle -> Loading -> (AwaitingCampaign|Ready) sequence.
// rawCTI is the optional descriptor from the integration layer; a parse
// failure degrades to manual mode and is surfaced via the notifier.
func (s *Session) start(ctx context.Context, rawCTI string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.transition(StateLoading); err != nil {
		return err
	}

	s.campaigns = s.deps.Directory.ListCampaigns(ctx, s.agent, s.deps.Channel.Name)

	client, err := cti.Parse(rawCTI)
	if err != nil {
		s.notify(ctx, notify.Danger("Error", "Error parsing CTI data: "+err.Error()))
		client = cti.ClientContext{Params: map[string]string{}}
	} else if rawCTI != "" {
		s.hasExternalContext = true
	}
	s.client = client

	s.auditLog(ctx, audit.EventTypeSessionStarted, "")

	if s.client.Campaign == "" {
		return s.transition(StateAwaitingCampaign)
	}

	s.campaigns = directory.EnsureIncluded(s.campaigns, s.client.Campaign)
	s.applyCampaign(ctx, s.client.Campaign)
	return s.transition(StateReady)
}

// SelectCampaign switches the session to a campaign the agent may
// handle: numbers reload, the disposition selection resets and the
// catalog reloads.
func (s *Session) SelectCampaign(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingCampaign && s.state != StateReady {
		return ErrBadState
	}
	if name == "" {
		return ErrNoCampaign
	}
	if !contains(s.campaigns, name) {
		return ErrUnknownCampaign
	}

	s.applyCampaign(ctx, name)
	s.auditLog(ctx, audit.EventTypeCampaignSelected, "")
	return s.transition(StateReady)
}

// applyCampaign loads numbers and dispositions for a campaign and resets
// the selection. The selection reset happens before any load completes.
func (s *Session) applyCampaign(ctx context.Context, name string) {
	s.selection.Reset()
	s.campaign = Campaign{
		Name:    name,
		Numbers: s.deps.Directory.LoadNumbers(ctx, name),
	}
	if catalog, ok := s.deps.Dispositions.LoadForCampaign(ctx, name); ok {
		s.catalog = catalog
	}
}

// SetDisposition stores the outcome value for a level, clearing every
// deeper slot. The value must be one of the options derived for that
// level, and all shallower levels must already be chosen.
func (s *Session) SetDisposition(level int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady && s.state != StateCallActive {
		return ErrBadState
	}
	if level < 0 || level >= disposition.Levels {
		return ErrBadOption
	}

	// Clearing a slot is always allowed.
	if value == "" {
		s.selection.Set(level, "")
		return nil
	}

	if level > 0 && s.selection[level-1] == "" {
		return ErrBadOption
	}
	if !contains(s.levelOptions(level), value) {
		return ErrBadOption
	}
	s.selection.Set(level, value)
	return nil
}

func (s *Session) levelOptions(level int) []string {
	switch level {
	case 0:
		return s.catalog.Level1Options()
	case 1:
		return s.catalog.Level2Options(s.selection[0])
	case 2:
		return s.catalog.Level3Options(s.selection[0], s.selection[1])
	default:
		return nil
	}
}

// SetNotes replaces the free-form notes text.
func (s *Session) SetNotes(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateFinishing || s.state == StateIdle || s.state == StateLoading {
		return ErrBadState
	}
	s.notes = text
	return nil
}

// PlaceCall dials the client. With several campaign numbers the call
// suspends on the number selection prompt until the agent confirms or
// cancels from another request; with exactly one it dials directly.
//
// Guards (each a rejection, no state change): a destination phone, a
// selected campaign and at least one campaign number must exist, no call
// may be active and no prompt may be pending.
func (s *Session) PlaceCall(ctx context.Context) error {
	s.mu.Lock()

	if s.state == StateCallActive || s.state == StateFinishing {
		s.notify(ctx, notify.Warning("Warning", "A call is already in progress."))
		s.mu.Unlock()
		return ErrCallActive
	}
	if s.state != StateReady {
		s.mu.Unlock()
		return ErrBadState
	}
	if s.prompt != nil {
		s.mu.Unlock()
		return ErrPromptPending
	}
	phone := s.client.Phone
	if phone == "" {
		s.notify(ctx, notify.Warning("Warning", "No phone number available"))
		s.mu.Unlock()
		return ErrNoPhone
	}
	if s.campaign.Name == "" {
		s.notify(ctx, notify.Warning("Warning", "Please select a campaign before making a call."))
		s.mu.Unlock()
		return ErrNoCampaign
	}
	if len(s.campaign.Numbers) == 0 {
		s.notify(ctx, notify.Warning("Warning", "No phone numbers available for this campaign"))
		s.mu.Unlock()
		return ErrNoNumbers
	}

	campaignName := s.campaign.Name
	source := s.campaign.Numbers[0]

	if len(s.campaign.Numbers) > 1 {
		prompt := newNumberPrompt(s.campaign.Numbers)
		s.prompt = prompt
		s.mu.Unlock()

		var chosen string
		select {
		case chosen = <-prompt.done:
		case <-ctx.Done():
			chosen = ""
		}

		s.mu.Lock()
		s.prompt = nil
		if chosen == "" {
			s.mu.Unlock()
			return ErrPromptCancelled
		}
		// The session may have moved on while suspended; a campaign
		// change or finish invalidates the pick.
		if s.state != StateReady || s.campaign.Name != campaignName {
			s.mu.Unlock()
			return ErrPromptCancelled
		}
		source = chosen
	}
	defer s.mu.Unlock()

	if s.deps.Guard != nil {
		ok, err := s.deps.Guard.Acquire(ctx, s.agent)
		if err != nil {
			s.deps.Log.Error("call guard acquire failed", "agent", s.agent, "err", err)
		} else if !ok {
			s.notify(ctx, notify.Warning("Warning", "A call is already in progress."))
			return ErrCallActive
		}
	}

	correlationID, err := s.deps.Dialer.PlaceCall(ctx, telephony.OriginateRequest{
		Campaign:    campaignName,
		Source:      source,
		Destination: phone,
		AutoAnswer:  s.client.AutoAnswer,
	})
	if err != nil {
		s.releaseGuard(ctx)
		s.notify(ctx, notify.Danger("Error", "Error making call: "+err.Error()))
		return fmt.Errorf("place call: %w", err)
	}

	s.client.Guid = correlationID
	s.auditLog(ctx, audit.EventTypeCallPlaced, correlationID)
	return s.transition(StateCallActive)
}

// SelectNumber stores the agent's pick while the prompt is open.
func (s *Session) SelectNumber(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prompt == nil {
		return ErrNoPrompt
	}
	if !s.prompt.has(number) {
		return ErrBadOption
	}
	s.prompt.selected = number
	return nil
}

// ConfirmNumber resolves the pending prompt with the selected number.
// Confirming without a selection is rejected.
func (s *Session) ConfirmNumber(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prompt == nil {
		return ErrNoPrompt
	}
	if !s.prompt.confirm() {
		s.notify(ctx, notify.Warning("Warning", "Please select a number"))
		return ErrNothingSelected
	}
	return nil
}

// CancelNumber resolves the pending prompt with no number; the suspended
// place-call attempt returns with no state change.
func (s *Session) CancelNumber() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prompt == nil {
		return ErrNoPrompt
	}
	s.prompt.cancel()
	return nil
}

// Finish persists the disposition and releases the interaction.
//
// Persistence failure aborts the transition: state falls back to where
// it was (still call-active if it was) so the agent can retry. On
// success a CTI-driven session signals the integration layer to close
// the form; a manual session clears the campaign and returns to
// awaiting-campaign.
func (s *Session) Finish(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateFinishing {
		return ErrFinishInProgress
	}
	if s.state != StateReady && s.state != StateCallActive {
		return ErrBadState
	}
	if !s.selection.Complete() {
		s.notify(ctx, notify.Warning("Warning", "Please select a disposition before finishing."))
		return ErrNoDisposition
	}

	prev := s.state
	if err := s.transition(StateFinishing); err != nil {
		return err
	}

	err := s.deps.Recorder.Record(ctx, telephony.DispositionReport{
		Campaign:      s.campaign.Name,
		Destination:   s.client.Phone,
		CorrelationID: s.client.Guid,
		Level1:        s.selection[0],
		Level2:        s.selection[1],
		Level3:        s.selection[2],
		Notes:         s.notes,
	})
	if err != nil {
		// Abort: back to the previous state so finish can be retried.
		s.state = prev
		s.notify(ctx, notify.Danger("Error", "Error saving data: "+err.Error()))
		return fmt.Errorf("save disposition: %w", err)
	}
	s.auditLog(ctx, audit.EventTypeDispositionSaved, s.client.Guid)

	if s.deps.Channel.DeleteOnFinish && s.deps.Contacts != nil {
		contact := s.client.Phone
		if s.deps.Channel.ContactField != "" {
			if v := s.client.Params[s.deps.Channel.ContactField]; v != "" {
				contact = v
			}
		}
		if err := s.deps.Contacts.DeleteContact(ctx, s.campaign.Name, contact); err != nil {
			s.deps.Log.Error("contact cleanup failed", "campaign", s.campaign.Name, "err", err)
		}
	}

	s.releaseGuard(ctx)
	s.selection.Reset()
	s.notes = ""
	s.auditLog(ctx, audit.EventTypeSessionFinished, s.client.Guid)

	if s.hasExternalContext {
		if s.deps.Closer != nil {
			if err := s.deps.Closer.CloseForm(ctx, s.client.Guid); err != nil {
				s.deps.Log.Error("close form failed", "session", s.id, "err", err)
			}
		}
		s.notify(ctx, notify.Success("Success", "Client processed successfully!"))
		return s.transition(StateReady)
	}

	s.campaign = Campaign{}
	s.notify(ctx, notify.Success("Success", "Client processed successfully!"))
	return s.transition(StateAwaitingCampaign)
}

func (s *Session) releaseGuard(ctx context.Context) {
	if s.deps.Guard == nil {
		return
	}
	if err := s.deps.Guard.Release(ctx, s.agent); err != nil {
		s.deps.Log.Error("call guard release failed", "agent", s.agent, "err", err)
	}
}

// transition moves the state machine, rejecting moves the lifecycle does
// not allow. Callers hold the lock.
func (s *Session) transition(next State) error {
	if !s.state.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrBadState, s.state, next)
	}
	s.state = next
	return nil
}

func (s *Session) notify(ctx context.Context, n notify.Notice) {
	if s.deps.Notifier == nil {
		return
	}
	s.deps.Notifier.Notify(ctx, n)
}

func (s *Session) auditLog(ctx context.Context, typ audit.EventType, callID string) {
	if s.deps.Audit == nil {
		return
	}
	if err := s.deps.Audit.LogSession(ctx, typ, s.agent, s.id, s.campaign.Name, callID, ""); err != nil {
		s.deps.Log.Error("audit append failed", "type", typ, "err", err)
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
