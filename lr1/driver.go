package lr1

import "github.com/XDLoLiK/langram/grammar"

// parser drives the shift/reduce/accept action table against one input
// word: a stack of state ids (Q, back = top) and a queue of symbols still
// to be consumed (R, back = next), built once as [END, c_n, ..., c_1] so
// that popping from the back yields the input left to right and exposes
// END only once the word is exhausted.
type parser struct {
	table      *table
	startState int
}

// run interprets word against the table, returning whether it was
// accepted.
func (p *parser) run(word string) bool {
	runes := []rune(word)

	R := make([]grammar.Symbol, 0, len(runes)+1)
	R = append(R, grammar.End)
	for i := len(runes) - 1; i >= 0; i-- {
		R = append(R, grammar.Symbol(runes[i]))
	}

	Q := []int{p.startState}

	for {
		state := Q[len(Q)-1]
		symbol := R[len(R)-1]
		action := p.table.get(state, symbol)

		tracer().Debugf("lr1: state %d, symbol %s -> %s", state, symbol, action)

		switch action.Kind {
		case Shift:
			Q = append(Q, action.Target)
			R = R[:len(R)-1]

		case Reduce:
			Q = Q[:len(Q)-action.RHSLen]
			R = append(R, action.LHS)

		case Accept:
			return true

		case None:
			return false
		}
	}
}
