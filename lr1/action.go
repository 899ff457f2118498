package lr1

import (
	"fmt"

	"github.com/XDLoLiK/langram/grammar"
)

// ActionKind tags the variant of an Action.
type ActionKind int

const (
	// None means no transition is defined: encountering it causes
	// rejection.
	None ActionKind = iota
	// Shift means consume the current symbol and move to Target — this
	// variant does double duty for both a terminal shift and a
	// non-terminal GOTO after a reduction (see driver.go).
	Shift
	// Reduce means pop RHSLen states and re-feed LHS as the next symbol.
	Reduce
	// Accept means the augmented start production has been reduced on
	// lookahead END: the input is recognized.
	Accept
)

// Action is the tagged union stored at an ACTION-table cell.
type Action struct {
	Kind   ActionKind
	Target int           // valid for Shift: the target state id
	RHSLen int           // valid for Reduce: number of symbols to pop
	LHS    grammar.Symbol // valid for Reduce: the symbol to push back
}

func shiftAction(target int) Action { return Action{Kind: Shift, Target: target} }
func reduceAction(rhsLen int, lhs grammar.Symbol) Action {
	return Action{Kind: Reduce, RHSLen: rhsLen, LHS: lhs}
}
func acceptAction() Action { return Action{Kind: Accept} }

// cellKey identifies one ACTION-table cell: a state and a symbol.
type cellKey struct {
	state  int
	symbol grammar.Symbol
}

// table is a sparse (state, symbol) -> Action map, in the spirit of the
// teacher's sparse.IntMatrix (explicit null-value cell, Set is idempotent
// for an equal re-write) but carrying a typed Action instead of a bare
// int32, since a Reduce action needs to carry both a length and a symbol.
type table struct {
	cells map[cellKey]Action
}

func newTable() *table {
	return &table{cells: make(map[cellKey]Action)}
}

// get returns the action at (state, symbol), or the zero Action (Kind
// None) if the cell is unset.
func (t *table) get(state int, symbol grammar.Symbol) Action {
	return t.cells[cellKey{state, symbol}]
}

// set writes a into (state, symbol). Writing the same value twice is
// idempotent; writing a differing value over an already-set, non-None
// cell is a conflict and returns an error (a genuine action conflict, not a duplicate write).
func (t *table) set(state int, symbol grammar.Symbol, a Action) error {
	key := cellKey{state, symbol}
	if existing, ok := t.cells[key]; ok && existing.Kind != None {
		if existing != a {
			return fmt.Errorf("conflict at state %d on symbol %s: %s vs %s",
				state, symbol, existing, a)
		}
		return nil
	}
	t.cells[key] = a
	return nil
}

// String renders an action for diagnostics and conflict messages.
func (a Action) String() string {
	switch a.Kind {
	case None:
		return "<none>"
	case Shift:
		return fmt.Sprintf("shift(%d)", a.Target)
	case Reduce:
		return fmt.Sprintf("reduce(%d, %s)", a.RHSLen, a.LHS)
	case Accept:
		return "accept"
	default:
		return "<invalid>"
	}
}
