package langram

import "errors"

// Sentinel errors returned (wrapped) by Fit implementations. Callers
// distinguish them with errors.Is.
var (
	// ErrNotContextFree is returned when a production's left-hand side is
	// not a declared non-terminal.
	ErrNotContextFree = errors.New("langram: grammar is not context-free: a rule's left-hand side is not a non-terminal")

	// ErrNotLR1 is returned when the canonical LR(1) automaton for a
	// grammar has a shift/reduce or reduce/reduce conflict.
	ErrNotLR1 = errors.New("langram: grammar is not LR(1): conflicting action table entry")
)
