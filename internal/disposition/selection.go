package disposition

// Levels is the fixed depth of the outcome-code tree.
const Levels = 3

// Selection holds the agent's chosen outcome code, one slot per level.
// Slot i is only meaningful when every slot before it is non-empty.
type Selection [Levels]string

// Set stores value at the given level and clears every deeper slot.
// Out-of-range levels are ignored.
func (s *Selection) Set(level int, value string) {
	if level < 0 || level >= Levels {
		return
	}
	s[level] = value
	for i := level + 1; i < Levels; i++ {
		s[i] = ""
	}
}

// Reset clears all slots.
func (s *Selection) Reset() {
	*s = Selection{}
}

// Complete reports whether the selection is savable: level 1 must be
// chosen; levels 2 and 3 are optional refinements.
func (s Selection) Complete() bool {
	return s[0] != ""
}
