package earley

import (
	"fmt"

	"github.com/XDLoLiK/langram"
	"github.com/XDLoLiK/langram/grammar"
	"github.com/XDLoLiK/langram/lr/iteratable"
)

// Recognizer is an Earley recognizer. Create one with NewRecognizer, then
// Fit it once against a grammar before calling Recognize any number of
// times.
type Recognizer struct {
	g *grammar.Grammar
}

// NewRecognizer creates an unfit Earley recognizer.
func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// Fit validates the grammar (every rule's left-hand side must be a
// non-terminal) and stores it for later Recognize calls. For the Earley
// engine this is essentially a clone: no table needs to be precomputed.
func (r *Recognizer) Fit(g *grammar.Grammar) error {
	r.g = nil
	if err := g.Validate(); err != nil {
		tracer().Errorf("earley: fit failed: %v", err)
		return fmt.Errorf("earley: %w: %v", langram.ErrNotContextFree, err)
	}
	r.g = g
	return nil
}

// Recognize returns whether word belongs to the language generated by the
// fitted grammar. It is safe to call repeatedly, and returns false
// unconditionally if the recognizer has not been fitted yet.
func (r *Recognizer) Recognize(word string) bool {
	if r.g == nil {
		tracer().Errorf("earley: recognize called before a successful fit")
		return false
	}
	runes := []rune(word)
	chart := make([]*iteratable.Set[Item], len(runes)+1)
	for i := range chart {
		chart[i] = iteratable.NewSet[Item](i)
	}

	startRule := r.g.StartRule()
	chart[0].Add(NewItem(startRule, 0))
	closePosition(r.g, chart, 0)

	for k := 1; k <= len(runes); k++ {
		scan(chart, k-1, runes[k-1])
		closePosition(r.g, chart, k)
	}

	accept := chart[len(runes)].Contains(Item{Rule: startRule, Dot: startRule.Len(), Origin: 0})
	tracer().Infof("earley: recognize(%q) = %v", word, accept)
	return accept
}

// closePosition runs the predict/complete fixpoint over chart[k]: repeat a
// full predict pass followed by a full complete pass until the set's size
// stops changing.
func closePosition(g *grammar.Grammar, chart []*iteratable.Set[Item], k int) {
	S := chart[k]
	for {
		before := S.Size()
		predict(g, chart, k)
		complete(chart, k)
		if S.Size() == before {
			break
		}
	}
	dumpState(S, k)
}

// predict: for every item (A -> α•Bβ, j) in S[k] where B is a
// non-terminal, add (B -> •γ, k) to S[k] for every production B -> γ.
func predict(g *grammar.Grammar, chart []*iteratable.Set[Item], k int) {
	S := chart[k]
	S.IterateOnce()
	for S.Next() {
		item := S.Item()
		B := item.PeekSymbol()
		if B == nil || !g.IsNonTerminal(*B) {
			continue
		}
		for _, rule := range g.Rules(*B) {
			S.Add(NewItem(rule, k))
		}
	}
}

// scan: for every item (A -> α•aβ, j) in S[k] with a equal to the k-th
// input character, add (A -> αa•β, j) to S[k+1].
func scan(chart []*iteratable.Set[Item], k int, a rune) {
	S := chart[k]
	S1 := chart[k+1]
	S.IterateOnce()
	for S.Next() {
		item := S.Item()
		sym := item.PeekSymbol()
		if sym != nil && rune(*sym) == a {
			S1.Add(item.Advance())
		}
	}
}

// complete: for every item (B -> γ•, j) in S[k], add (A -> αB•β, i) to
// S[k] for every item (A -> α•Bβ, i) in S[j].
func complete(chart []*iteratable.Set[Item], k int) {
	S := chart[k]
	S.IterateOnce()
	for S.Next() {
		item := S.Item()
		if !item.IsComplete() {
			continue
		}
		B := item.Rule.LHS
		j := item.Origin
		Sj := chart[j]
		Sj.Each(func(jtem Item) {
			sym := jtem.PeekSymbol()
			if sym != nil && *sym == B {
				S.Add(jtem.Advance())
			}
		})
	}
}

func dumpState(S *iteratable.Set[Item], k int) {
	tracer().Debugf("--- earley state %04d (%d items) ---", k, S.Size())
	n := 1
	S.Each(func(item Item) {
		tracer().Debugf("[%2d] %s", n, item)
		n++
	})
}
