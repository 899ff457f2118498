package lr1

import (
	"fmt"

	"github.com/XDLoLiK/langram/grammar"
)

// Item is an LR(1) item: an Earley-style dotted production plus a single
// terminal of lookahead. Items are totally ordered (Less) so item sets can
// be canonicalized into a stable, sorted slice — the shape a state's
// identity (and its hash key, see build.go) is computed from.
type Item struct {
	Rule      grammar.CFRule
	Dot       int
	Lookahead grammar.Symbol
}

// NewItem creates an item with the dot at position 0.
func NewItem(rule grammar.CFRule, lookahead grammar.Symbol) Item {
	return Item{Rule: rule, Dot: 0, Lookahead: lookahead}
}

// PeekSymbol returns the symbol immediately after the dot, or nil if the
// item is complete.
func (it Item) PeekSymbol() *grammar.Symbol {
	syms := it.Rule.Symbols()
	if it.Dot >= len(syms) {
		return nil
	}
	s := syms[it.Dot]
	return &s
}

// Suffix returns the symbols of the right-hand side strictly after the
// dot — the β in CLOSURE's "FIRST(βa)" lookahead computation.
func (it Item) Suffix() []grammar.Symbol {
	syms := it.Rule.Symbols()
	if it.Dot+1 >= len(syms) {
		return nil
	}
	return syms[it.Dot+1:]
}

// IsComplete reports whether the dot has reached the end of the
// right-hand side.
func (it Item) IsComplete() bool {
	return it.Dot >= it.Rule.Len()
}

// Advance returns a copy of it with the dot moved one position to the
// right, lookahead unchanged.
func (it Item) Advance() Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// Less imposes a total order over items: by left-hand side, then
// right-hand side text, then dot position, then lookahead. Used to sort an
// item set into its canonical representation.
func (it Item) Less(other Item) bool {
	if it.Rule.LHS != other.Rule.LHS {
		return it.Rule.LHS < other.Rule.LHS
	}
	if it.Rule.RHS != other.Rule.RHS {
		return it.Rule.RHS < other.Rule.RHS
	}
	if it.Dot != other.Dot {
		return it.Dot < other.Dot
	}
	return it.Lookahead < other.Lookahead
}

// String renders an item as "[A -> α•β, lookahead]".
func (it Item) String() string {
	rhs := []rune(it.Rule.RHSString())
	dotted := string(rhs[:it.Dot]) + "•" + string(rhs[it.Dot:])
	return fmt.Sprintf("[%s -> %s, %s]", it.Rule.LHS, dotted, it.Lookahead)
}
