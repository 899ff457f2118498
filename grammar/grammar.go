package grammar

import (
	"fmt"
	"sort"
)

// CFRule is a single production: a left-hand side non-terminal and the
// (possibly multi-symbol) right-hand side it expands to.
//
// RHS is kept as a plain string (not a []Symbol slice) so that CFRule, and
// every Item built on top of it, stays comparable — both engines store
// items as map/set keys, which requires the Go comparable constraint.
type CFRule struct {
	LHS Symbol
	RHS string
}

// String renders a rule as "A -> bc", matching the textual rule format
// grammars are loaded from.
func (r CFRule) String() string {
	return fmt.Sprintf("%s -> %s", r.LHS, r.RHS)
}

// RHSString returns the right-hand side as the textual string it was built
// from.
func (r CFRule) RHSString() string {
	return r.RHS
}

// Symbols decodes the right-hand side into a slice of Symbol, one per
// rune, suitable for indexing by dot position.
func (r CFRule) Symbols() []Symbol {
	return symbolString(r.RHS)
}

// Len returns the number of symbols in the right-hand side.
func (r CFRule) Len() int {
	return len([]rune(r.RHS))
}

// Grammar is an immutable, augmented context-free grammar: a finite set of
// terminals, a finite set of non-terminals, a multi-map from non-terminal
// to its ordered list of productions, and the single augmented start
// production START -> u.
//
// Grammar values are created once, with New, and shared (by reference)
// between a recognizer's Fit call and any number of subsequent Recognize
// calls; nothing in this package mutates a Grammar after construction.
type Grammar struct {
	terminals    map[Symbol]struct{}
	nonTerminals map[Symbol]struct{}
	rules        map[Symbol][]CFRule // LHS -> ordered productions
	order        []Symbol            // LHS order (sorted by symbol, START last), for stable Dump output
}

// New constructs the augmented grammar from a caller-supplied alphabet and
// rule set. It inserts END and EPS into terminals, START into
// non-terminals, and adds the production START -> userStart.
//
// New does not itself validate that terminals and non-terminals are
// disjoint, or that every rule's left-hand side is a non-terminal. The
// loader and each recognizer's Fit check the left-hand sides (see
// Grammar.Validate); disjointness is not checked by this package, the
// loader, or either Fit.
func New(terminals, nonTerminals []Symbol, rules map[Symbol][]string, userStart Symbol) *Grammar {
	g := &Grammar{
		terminals:    make(map[Symbol]struct{}, len(terminals)+2),
		nonTerminals: make(map[Symbol]struct{}, len(nonTerminals)+1),
		rules:        make(map[Symbol][]CFRule, len(rules)+1),
	}
	for _, t := range terminals {
		g.terminals[t] = struct{}{}
	}
	g.terminals[End] = struct{}{}
	g.terminals[Eps] = struct{}{}

	for _, n := range nonTerminals {
		g.nonTerminals[n] = struct{}{}
	}
	g.nonTerminals[Start] = struct{}{}

	lhss := make([]Symbol, 0, len(rules))
	for lhs := range rules {
		lhss = append(lhss, lhs)
	}
	sort.Slice(lhss, func(i, j int) bool { return lhss[i] < lhss[j] })
	for _, lhs := range lhss {
		g.order = append(g.order, lhs)
		for _, rhs := range rules[lhs] {
			g.rules[lhs] = append(g.rules[lhs], CFRule{LHS: lhs, RHS: rhs})
		}
	}
	g.order = append(g.order, Start)
	g.rules[Start] = []CFRule{{LHS: Start, RHS: string(rune(userStart))}}

	tracer().Debugf("grammar: built %d non-terminals, %d terminals, %d rule groups",
		len(g.nonTerminals), len(g.terminals), len(g.rules))
	return g
}

// IsTerminal reports whether s is a declared terminal symbol (including
// the reserved END and EPS).
func (g *Grammar) IsTerminal(s Symbol) bool {
	_, ok := g.terminals[s]
	return ok
}

// IsNonTerminal reports whether s is a declared non-terminal symbol
// (including the reserved START).
func (g *Grammar) IsNonTerminal(s Symbol) bool {
	_, ok := g.nonTerminals[s]
	return ok
}

// Rules returns the ordered productions for a given left-hand side
// non-terminal, or nil if it has none.
func (g *Grammar) Rules(lhs Symbol) []CFRule {
	return g.rules[lhs]
}

// StartRule returns the unique augmented production START -> u.
func (g *Grammar) StartRule() CFRule {
	rules := g.rules[Start]
	if len(rules) != 1 {
		panic("grammar: invariant violated, START must have exactly one production")
	}
	return rules[0]
}

// NonTerminals returns every declared non-terminal: first those that have
// productions, in New's rule-group order (sorted by symbol, START last),
// then any declared non-terminal without productions, in unspecified order.
func (g *Grammar) NonTerminals() []Symbol {
	out := make([]Symbol, 0, len(g.nonTerminals))
	seen := make(map[Symbol]struct{}, len(g.nonTerminals))
	for _, lhs := range g.order {
		if _, ok := seen[lhs]; !ok && g.IsNonTerminal(lhs) {
			seen[lhs] = struct{}{}
			out = append(out, lhs)
		}
	}
	for s := range g.nonTerminals {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// Terminals returns every declared terminal symbol, order unspecified.
func (g *Grammar) Terminals() []Symbol {
	out := make([]Symbol, 0, len(g.terminals))
	for s := range g.terminals {
		out = append(out, s)
	}
	return out
}

// AllRules returns every production in the grammar, ordered by left-hand
// side (sorted by symbol, START last) and then by insertion order within
// that left-hand side. Used by Validate and by Dump.
func (g *Grammar) AllRules() []CFRule {
	var out []CFRule
	seen := make(map[Symbol]struct{})
	for _, lhs := range g.order {
		if _, ok := seen[lhs]; ok {
			continue
		}
		seen[lhs] = struct{}{}
		out = append(out, g.rules[lhs]...)
	}
	return out
}

// Validate checks the context-freeness invariant: every production's
// left-hand side must be a declared non-terminal. It does not check
// LR(1)-ness; that is the LR(1) builder's job.
func (g *Grammar) Validate() error {
	for _, r := range g.AllRules() {
		if !g.IsNonTerminal(r.LHS) {
			tracer().Errorf("grammar: %s has non-non-terminal left-hand side", r)
			return fmt.Errorf("rule %q: left-hand side %q is not a non-terminal", r, r.LHS)
		}
	}
	return nil
}

// Dump renders the grammar's productions, one per line, in AllRules order
// — useful for debugging and for the seed-scenario tests.
func (g *Grammar) Dump() string {
	s := ""
	for i, r := range g.AllRules() {
		if i > 0 {
			s += "\n"
		}
		s += r.String()
	}
	return s
}
