package lr1

import (
	"fmt"

	"github.com/XDLoLiK/langram"
	"github.com/XDLoLiK/langram/grammar"
)

// Recognizer is a table-driven LR(1) recognizer. Create one with
// NewRecognizer, Fit it once against a grammar — which builds the
// canonical LR(1) automaton and its action table, failing if the grammar
// is not LR(1) — then call Recognize any number of times.
type Recognizer struct {
	table      *table
	startState int
	fit        bool
}

// NewRecognizer creates an unfit LR(1) recognizer.
func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// Fit validates the grammar, builds its canonical LR(1) automaton, and
// emits the action table. It fails with langram.ErrNotContextFree if a
// rule's left-hand side is not a non-terminal, or with langram.ErrNotLR1
// if the automaton has a shift/reduce or reduce/reduce conflict.
func (r *Recognizer) Fit(g *grammar.Grammar) error {
	r.fit = false
	if err := g.Validate(); err != nil {
		tracer().Errorf("lr1: fit failed: %v", err)
		return fmt.Errorf("lr1: %w: %v", langram.ErrNotContextFree, err)
	}

	a := build(g)
	t, err := emit(a)
	if err != nil {
		tracer().Errorf("lr1: fit failed to build a conflict-free table: %v", err)
		return err
	}

	r.table = t
	r.startState = 0
	r.fit = true
	return nil
}

// Recognize returns whether word belongs to the language generated by the
// fitted grammar. It returns false unconditionally if the recognizer has
// not been fitted yet.
func (r *Recognizer) Recognize(word string) bool {
	if !r.fit {
		tracer().Errorf("lr1: recognize called before a successful fit")
		return false
	}
	p := &parser{table: r.table, startState: r.startState}
	accept := p.run(word)
	tracer().Infof("lr1: recognize(%q) = %v", word, accept)
	return accept
}
