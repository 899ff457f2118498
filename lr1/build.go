package lr1

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/XDLoLiK/langram"
	"github.com/XDLoLiK/langram/grammar"
)

// itemComparator imposes Item's total order on a gods treeset, so a state's
// items always come out of the set in the same, canonical sequence — the
// sequence the state's dedupe hash (see stateKey) is computed over.
func itemComparator(a, b interface{}) int {
	x, y := a.(Item), b.(Item)
	switch {
	case x == y:
		return 0
	case x.Less(y):
		return -1
	default:
		return 1
	}
}

// canonicalItems sorts a slice of items into their canonical order and
// drops duplicates, returning a plain []Item.
func canonicalItems(items []Item) []Item {
	set := treeset.NewWith(itemComparator)
	for _, it := range items {
		set.Add(it)
	}
	out := make([]Item, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(Item))
	}
	return out
}

// stateKey computes an O(1)-comparable dedupe key for a canonical item
// slice, via a cryptographic-strength hash of its structure. This replaces
// both ancestors' approach of scanning every previously built state for
// set equality when deciding whether a GOTO target is a new state.
func stateKey(items []Item) string {
	h, err := structhash.Hash(items, 1)
	if err != nil {
		// structhash only fails on types it cannot reflect over; Item is a
		// plain struct of two runes, a string and an int, so this cannot
		// happen in practice.
		panic(fmt.Sprintf("lr1: failed to hash item set: %v", err))
	}
	return h
}

// closure computes the CLOSURE of a kernel item set: repeatedly, for every
// item (A -> α.Bβ, a) already in the set where B is a non-terminal, add
// (B -> .γ, b) for every production B -> γ and every b in FIRST(βa) — until
// no further item is added.
func closure(g *grammar.Grammar, kernel []Item) []Item {
	S := make(map[Item]struct{})
	var order []Item
	add := func(it Item) bool {
		if _, ok := S[it]; ok {
			return false
		}
		S[it] = struct{}{}
		order = append(order, it)
		return true
	}
	for _, it := range kernel {
		add(it)
	}

	for {
		grew := false
		for _, it := range order {
			B := it.PeekSymbol()
			if B == nil || !g.IsNonTerminal(*B) {
				continue
			}
			lookaheads := first(g, append(it.Suffix(), it.Lookahead))
			for _, rule := range g.Rules(*B) {
				for a := range lookaheads {
					if add(NewItem(rule, a)) {
						grew = true
					}
				}
			}
		}
		if !grew {
			break
		}
	}
	return canonicalItems(order)
}

// gotoSet computes GOTO(items, X): advance every item whose next symbol is
// X, then close the result.
func gotoSet(g *grammar.Grammar, items []Item, X grammar.Symbol) []Item {
	var kernel []Item
	for _, it := range items {
		sym := it.PeekSymbol()
		if sym != nil && *sym == X {
			kernel = append(kernel, it.Advance())
		}
	}
	if len(kernel) == 0 {
		return nil
	}
	return closure(g, kernel)
}

// automaton holds the enumerated canonical LR(1) states and the transitions
// discovered between them, ready for action.go to turn into an action
// table.
type automaton struct {
	states      [][]Item
	transitions map[int]map[grammar.Symbol]int
}

// build enumerates the canonical collection of LR(1) item sets, starting
// from the kernel {START -> .u, END}. State 0 is always this initial
// state, so the start state is identified by construction rather than by
// a later search.
func build(g *grammar.Grammar) *automaton {
	startKernel := []Item{NewItem(g.StartRule(), grammar.End)}
	start := closure(g, startKernel)

	a := &automaton{
		transitions: make(map[int]map[grammar.Symbol]int),
	}
	seen := map[string]int{stateKey(start): 0}
	a.states = append(a.states, start)

	symbols := append(append([]grammar.Symbol{}, g.Terminals()...), g.NonTerminals()...)

	worklist := []int{0}
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		items := a.states[id]

		for _, X := range symbols {
			target := gotoSet(g, items, X)
			if len(target) == 0 {
				continue
			}
			key := stateKey(target)
			targetID, ok := seen[key]
			if !ok {
				targetID = len(a.states)
				seen[key] = targetID
				a.states = append(a.states, target)
				worklist = append(worklist, targetID)
			}
			if a.transitions[id] == nil {
				a.transitions[id] = make(map[grammar.Symbol]int)
			}
			a.transitions[id][X] = targetID
		}
	}

	tracer().Infof("lr1: build enumerated %d states", len(a.states))
	return a
}

// emit turns an enumerated automaton into an action table: a terminal
// transition out of a state becomes a Shift; a complete item whose rule is
// not the augmented start production becomes a Reduce on its lookahead;
// the complete augmented start item becomes Accept on END. A non-terminal
// transition is also recorded as a Shift — the driver reads it back out of
// the same table a reduction consults to find its GOTO target, so one
// table and one action kind serve both purposes.
func emit(a *automaton) (*table, error) {
	t := newTable()
	for id, items := range a.states {
		for sym, target := range a.transitions[id] {
			if err := t.set(id, sym, shiftAction(target)); err != nil {
				return nil, fmt.Errorf("%w: %v", langram.ErrNotLR1, err)
			}
		}
		for _, it := range items {
			if !it.IsComplete() {
				continue
			}
			if it.Rule.LHS == grammar.Start {
				if it.Lookahead != grammar.End {
					continue
				}
				if err := t.set(id, grammar.End, acceptAction()); err != nil {
					return nil, fmt.Errorf("%w: %v", langram.ErrNotLR1, err)
				}
				continue
			}
			if err := t.set(id, it.Lookahead, reduceAction(it.Rule.Len(), it.Rule.LHS)); err != nil {
				return nil, fmt.Errorf("%w: %v", langram.ErrNotLR1, err)
			}
		}
	}
	return t, nil
}
