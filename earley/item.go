package earley

import (
	"fmt"

	"github.com/XDLoLiK/langram/grammar"
)

// Item is an Earley item (situation): a production, a dot position marking
// how much of the right-hand side has been recognized, and the chart
// position ("origin") at which this item was first predicted. Items are
// value-equal and hashable by all three fields, making them suitable
// elements of an iteratable.Set.
type Item struct {
	Rule   grammar.CFRule
	Dot    int
	Origin int
}

// NewItem creates an item with the dot at position 0, i.e. freshly
// predicted at chart position origin.
func NewItem(rule grammar.CFRule, origin int) Item {
	return Item{Rule: rule, Dot: 0, Origin: origin}
}

// PeekSymbol returns the symbol immediately after the dot, or nil if the
// dot is at the end of the right-hand side (the item is "complete").
func (it Item) PeekSymbol() *grammar.Symbol {
	syms := it.Rule.Symbols()
	if it.Dot >= len(syms) {
		return nil
	}
	s := syms[it.Dot]
	return &s
}

// IsComplete reports whether the dot has reached the end of the
// right-hand side.
func (it Item) IsComplete() bool {
	return it.Dot >= it.Rule.Len()
}

// Advance returns a copy of it with the dot moved one position to the
// right. Callers must not call Advance on a complete item.
func (it Item) Advance() Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1, Origin: it.Origin}
}

// String renders an item as "[A -> α•β, origin]".
func (it Item) String() string {
	rhs := []rune(it.Rule.RHSString())
	dotted := string(rhs[:it.Dot]) + "•" + string(rhs[it.Dot:])
	return fmt.Sprintf("[%s -> %s, %d]", it.Rule.LHS, dotted, it.Origin)
}
