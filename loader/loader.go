package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/XDLoLiK/langram/grammar"
)

// ErrMalformedGrammar is wrapped by every error Parse returns.
var ErrMalformedGrammar = errors.New("loader: malformed grammar text")

// Parse deserializes a grammar.Grammar from its textual format: one line
// of non-terminals, one line of terminals, one or more rule lines of the
// form "A->bc", and a final line naming the start symbol. Validation
// proceeds in four steps: line count, one "->" per rule line, a
// single-character left-hand side that is already a declared non-terminal,
// and a single-character start line.
func Parse(s string) (*grammar.Grammar, error) {
	lines := splitLines(s)
	if err := checkLines(lines); err != nil {
		return nil, err
	}

	nonTerminals := toSymbols(lines[0])
	terminals := toSymbols(lines[1])
	declaredNT := make(map[grammar.Symbol]struct{}, len(nonTerminals))
	for _, n := range nonTerminals {
		declaredNT[n] = struct{}{}
	}

	rules := make(map[grammar.Symbol][]string)
	for i := 2; i < len(lines)-1; i++ {
		parts, err := checkParts(lines[i])
		if err != nil {
			return nil, err
		}
		key, err := checkKey(parts[0])
		if err != nil {
			return nil, err
		}
		if _, ok := declaredNT[key]; !ok {
			tracer().Errorf("loader: %q is not among declared non-terminals", key)
			return nil, fmt.Errorf("%w: only non-terminals can appear on the left-hand side, got %q", ErrMalformedGrammar, key)
		}
		rules[key] = append(rules[key], parts[1])
	}

	start, err := checkStart(lines[len(lines)-1])
	if err != nil {
		return nil, err
	}

	g := grammar.New(terminals, nonTerminals, rules, start)
	tracer().Infof("loader: parsed grammar with %d lines", len(lines))
	return g, nil
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func checkLines(lines []string) error {
	if len(lines) < 4 {
		return fmt.Errorf("%w: need at least 4 lines, got %d", ErrMalformedGrammar, len(lines))
	}
	return nil
}

func checkParts(line string) ([]string, error) {
	parts := strings.Split(line, "->")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: rule line %q must contain exactly one \"->\"", ErrMalformedGrammar, line)
	}
	return []string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}, nil
}

func checkKey(key string) (grammar.Symbol, error) {
	runes := []rune(key)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: left-hand side must be exactly one character, got %q", ErrMalformedGrammar, key)
	}
	return grammar.Symbol(runes[0]), nil
}

func checkStart(line string) (grammar.Symbol, error) {
	runes := []rune(strings.TrimSpace(line))
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: start symbol must be exactly one character, got %q", ErrMalformedGrammar, line)
	}
	return grammar.Symbol(runes[0]), nil
}

func toSymbols(line string) []grammar.Symbol {
	runes := []rune(line)
	syms := make([]grammar.Symbol, len(runes))
	for i, r := range runes {
		syms[i] = grammar.Symbol(r)
	}
	return syms
}
