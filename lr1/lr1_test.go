package lr1

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/XDLoLiK/langram/grammar"
	"github.com/XDLoLiK/langram/loader"
)

// g1 is the arithmetic-expression grammar from the canonical worked examples:
//
//	S -> N
//	N -> T+N | T
//	T -> F*T | F
//	F -> (N) | a
func g1(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := loader.Parse("STFN\na+*()\nS->N\nN->T+N\nN->T\nT->F*T\nT->F\nF->(N)\nF->a\nS")
	if err != nil {
		t.Fatalf("failed to load g1: %v", err)
	}
	return g
}

// g2 is an LR(1)-friendly grammar: S -> CC, C -> cC | d.
func g2(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := loader.Parse("SC\ncd\nS->CC\nC->cC\nC->d\nS")
	if err != nil {
		t.Fatalf("failed to load g2: %v", err)
	}
	return g
}

func mustFit(t *testing.T, g *grammar.Grammar) *Recognizer {
	t.Helper()
	t.Cleanup(gotestingadapter.QuickConfig(t, "langram"))
	r := NewRecognizer()
	if err := r.Fit(g); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	return r
}

func TestG2AcceptsAndRejects(t *testing.T) {
	r := mustFit(t, g2(t))
	if !r.Recognize("cdd") {
		t.Errorf(`Recognize("cdd") = false, want true`)
	}
	if r.Recognize("ddd") {
		t.Errorf(`Recognize("ddd") = true, want false`)
	}
}

func TestG1AcceptsAndRejects(t *testing.T) {
	r := mustFit(t, g1(t))
	if !r.Recognize("(a+a)") {
		t.Errorf(`Recognize("(a+a)") = false, want true`)
	}
	if r.Recognize("(a+a*a())") {
		t.Errorf(`Recognize("(a+a*a())") = true, want false`)
	}
}

func TestRoundTripAgreementWithG1(t *testing.T) {
	r := mustFit(t, g1(t))
	inputs := []struct {
		word   string
		accept bool
	}{
		{"a", true},
		{"a+a", true},
		{"(a)", true},
		{"a*a", true},
		{"a+a+a", true},
		{"", false},
		{"+a", false},
		{"(a", false},
	}
	for _, tc := range inputs {
		if got := r.Recognize(tc.word); got != tc.accept {
			t.Errorf("Recognize(%q) = %v, want %v", tc.word, got, tc.accept)
		}
	}
}

func TestRecognizeIsIdempotent(t *testing.T) {
	r := mustFit(t, g2(t))
	first := r.Recognize("cdd")
	second := r.Recognize("cdd")
	if first != second {
		t.Errorf("two calls with the same input disagreed: %v vs %v", first, second)
	}
}

func TestUnknownCharacterRejected(t *testing.T) {
	r := mustFit(t, g2(t))
	if r.Recognize("cdx") {
		t.Errorf(`Recognize("cdx") = true, want false: 'x' is not in the alphabet`)
	}
}

func TestRecognizeBeforeFitReturnsFalse(t *testing.T) {
	r := NewRecognizer()
	if r.Recognize("d") {
		t.Errorf("an unfitted recognizer must return false, not panic or accept")
	}
}

func TestFitRejectsTerminalOnLHS(t *testing.T) {
	terminals := []grammar.Symbol{'a', 'b'}
	nonTerminals := []grammar.Symbol{'S'}
	rules := map[grammar.Symbol][]string{
		'S': {"a"},
		'b': {"a"}, // 'b' is a terminal: not context-free
	}
	g := grammar.New(terminals, nonTerminals, rules, 'S')
	r := NewRecognizer()
	if err := r.Fit(g); err == nil {
		t.Errorf("expected fit to fail for a terminal on the left-hand side")
	}
}

// TestAmbiguousGrammarRejected exercises a genuinely ambiguous grammar: two
// distinct non-terminals both expand to the same terminal, so after
// shifting 'a' the resulting state contains two complete items under the
// identical lookahead END — an unavoidable reduce/reduce conflict.
func TestAmbiguousGrammarRejected(t *testing.T) {
	g, err := loader.Parse("SAB\na\nS->A\nS->B\nA->a\nB->a\nS")
	if err != nil {
		t.Fatalf("failed to load the conflicting grammar: %v", err)
	}
	r := NewRecognizer()
	if err := r.Fit(g); err == nil {
		t.Errorf("expected fit to reject an LR(1)-conflicting grammar")
	}
}
