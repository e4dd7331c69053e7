package session

import (
	"errors"
	"fmt"
)

// ErrRejected is the base of every validation rejection: a guarded no-op
// that leaves session state untouched and surfaces a warning to the
// agent. Collaborator failures (dial, persist) are wrapped separately.
var ErrRejected = errors.New("session: rejected")

var (
	ErrBadState         = fmt.Errorf("%w: operation not allowed in current state", ErrRejected)
	ErrNoPhone          = fmt.Errorf("%w: no phone number available", ErrRejected)
	ErrNoCampaign       = fmt.Errorf("%w: no campaign selected", ErrRejected)
	ErrUnknownCampaign  = fmt.Errorf("%w: campaign not available to this agent", ErrRejected)
	ErrNoNumbers        = fmt.Errorf("%w: no dial-out numbers for this campaign", ErrRejected)
	ErrCallActive       = fmt.Errorf("%w: a call is already active", ErrRejected)
	ErrPromptPending    = fmt.Errorf("%w: a number selection is already pending", ErrRejected)
	ErrNoPrompt         = fmt.Errorf("%w: no number selection pending", ErrRejected)
	ErrNothingSelected  = fmt.Errorf("%w: no number selected", ErrRejected)
	ErrBadOption        = fmt.Errorf("%w: value is not an available option", ErrRejected)
	ErrNoDisposition    = fmt.Errorf("%w: a level-1 disposition is required", ErrRejected)
	ErrFinishInProgress = fmt.Errorf("%w: finish already in progress", ErrRejected)
)

// ErrPromptCancelled reports that the agent dismissed the number
// selection; the place-call attempt ends with no state change and no
// user-visible error.
var ErrPromptCancelled = errors.New("session: number selection cancelled")

// IsRejection reports whether err is a validation rejection rather than
// a collaborator failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrRejected)
}
