package session

// numberPrompt is the single-slot completion handle behind the number
// selection sub-flow. PlaceCall parks on the done channel; exactly one of
// confirm/cancel resolves it. At most one prompt is outstanding per
// session (enforced by Session, which owns the slot).
type numberPrompt struct {
	options  []string
	selected string

	// done receives the chosen number, or "" on cancel. Buffered so the
	// resolving side never blocks.
	done chan string
}

func newNumberPrompt(options []string) *numberPrompt {
	return &numberPrompt{
		options: options,
		done:    make(chan string, 1),
	}
}

func (p *numberPrompt) has(number string) bool {
	for _, n := range p.options {
		if n == number {
			return true
		}
	}
	return false
}

func (p *numberPrompt) confirm() bool {
	if p.selected == "" {
		return false
	}
	p.done <- p.selected
	return true
}

func (p *numberPrompt) cancel() {
	p.done <- ""
}
