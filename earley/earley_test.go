package earley

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

func mustFit(t *testing.T, g *grammar.Grammar) *Recognizer {
	t.Helper()
	t.Cleanup(gotestingadapter.QuickConfig(t, "langram"))
	r := NewRecognizer()
	if err := r.Fit(g); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	return r
}

func TestArithmeticGrammarAcceptsAndRejects(t *testing.T) {
	r := mustFit(t, g1(t))
	if !r.Recognize("(a+a)") {
		t.Errorf(`Recognize("(a+a)") = false, want true`)
	}
	if r.Recognize("(a+a*a())") {
		t.Errorf(`Recognize("(a+a*a())") = true, want false`)
	}
}

func TestRecognizeIsIdempotent(t *testing.T) {
	r := mustFit(t, g1(t))
	first := r.Recognize("(a+a)")
	second := r.Recognize("(a+a)")
	if first != second {
		t.Errorf("two calls with the same input disagreed: %v vs %v", first, second)
	}
}

func TestRoundTripAgreementStrings(t *testing.T) {
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

func TestEmptyInputRejectedWhenLanguageHasNoEmptyWord(t *testing.T) {
	r := mustFit(t, g1(t))
	if r.Recognize("") {
		t.Errorf(`Recognize("") = true, want false (grammar has no epsilon production)`)
	}
}

func TestUnknownCharacterRejected(t *testing.T) {
	r := mustFit(t, g1(t))
	if r.Recognize("a#a") {
		t.Errorf(`Recognize("a#a") = true, want false: '#' is not in the alphabet`)
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

func TestRecognizeBeforeFitReturnsFalse(t *testing.T) {
	r := NewRecognizer()
	if r.Recognize("a") {
		t.Errorf("an unfitted recognizer must return false, not panic or accept")
	}
}

func TestLeftRecursiveGrammarG3(t *testing.T) {
	// S -> Sa | a  (left recursive, every "a"-run of length >= 1 is accepted)
	g, err := loader.Parse("S\na\nS->Sa\nS->a\nS")
	if err != nil {
		t.Fatalf("failed to load g3: %v", err)
	}
	r := mustFit(t, g)
	if !r.Recognize("aaa") {
		t.Errorf(`Recognize("aaa") = false, want true`)
	}
	if r.Recognize("aab") {
		t.Errorf(`Recognize("aab") = true, want false`)
	}
}
