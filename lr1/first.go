package lr1

import "github.com/XDLoLiK/langram/grammar"

// first computes FIRST(β) for a string of symbols β, as used when
// computing CLOSURE's lookahead set: walk β left to right; a terminal
// symbol immediately yields the singleton {symbol}; a non-terminal is
// expanded by recursing into every one of its productions and unioning
// the results; if that union is non-empty, it is returned and the walk
// stops there. Only if every production of the current
// symbol's expansion contributes nothing does the walk advance to the
// next symbol of β.
//
// This intentionally does not propagate epsilon across concatenation: a
// nullable non-terminal simply contributes whatever its own FIRST is, and
// the walk never considers "and also look past it" unless its FIRST set
// was entirely empty (which cannot happen for any grammar without epsilon
// productions).
//
// visited tracks which productions (by rule identity) have already been
// expanded during this call, preventing infinite recursion on
// left-recursive grammars.
func first(g *grammar.Grammar, beta []grammar.Symbol) map[grammar.Symbol]struct{} {
	return firstDFS(g, make(map[grammar.CFRule]bool), beta)
}

func firstDFS(g *grammar.Grammar, visited map[grammar.CFRule]bool, beta []grammar.Symbol) map[grammar.Symbol]struct{} {
	for _, sym := range beta {
		if g.IsTerminal(sym) {
			return map[grammar.Symbol]struct{}{sym: {}}
		}
		found := make(map[grammar.Symbol]struct{})
		for _, rule := range g.Rules(sym) {
			if visited[rule] {
				continue
			}
			visited[rule] = true
			for s := range firstDFS(g, visited, rule.Symbols()) {
				found[s] = struct{}{}
			}
		}
		if len(found) > 0 {
			return found
		}
	}
	return map[grammar.Symbol]struct{}{}
}
