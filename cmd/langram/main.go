/*
Langram recognizes whether a word belongs to the language generated by a
context-free grammar.

Usage:

	langram [flags] WORD

The flags are:

	-g, --grammar FILE
		Read the grammar from FILE, in the textual format described by the
		langram/loader package. Defaults to a small built-in demo grammar
		when omitted.

	-e, --engine earley|lr1
		Which recognizer to fit and run. Defaults to "earley".

	-v, --verbose
		Trace recognizer internals (chart/state construction, action
		table lookups) to stderr.

Langram exits 0 and prints "true" if WORD is recognized, exits 1 and
prints "false" if it is not, and exits 2 on a grammar or flag error.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"

	"github.com/XDLoLiK/langram/earley"
	"github.com/XDLoLiK/langram/grammar"
	"github.com/XDLoLiK/langram/loader"
	"github.com/XDLoLiK/langram/lr1"
)

const (
	// ExitAccepted indicates WORD was recognized.
	ExitAccepted = iota
	// ExitRejected indicates WORD was not recognized.
	ExitRejected
	// ExitUsageError indicates a flag, grammar, or fit error.
	ExitUsageError
)

// demoGrammar is used when no --grammar file is given: the left-recursive
// "a"-run grammar S -> Sa | a.
const demoGrammar = "S\na\nS->Sa\nS->a\nS"

const demoWord = "aaa"

var (
	grammarFile = pflag.StringP("grammar", "g", "", "path to a grammar text file; defaults to a small built-in demo grammar")
	engine      = pflag.StringP("engine", "e", "earley", `which recognizer to use: "earley" or "lr1"`)
	verbose     = pflag.BoolP("verbose", "v", false, "trace recognizer internals to stderr")
)

func main() {
	returnCode := ExitUsageError
	defer func() { os.Exit(returnCode) }()

	pflag.Parse()

	if *verbose {
		tracing.Select("langram").SetTraceLevel(tracing.LevelDebug)
	}

	text := demoGrammar
	if *grammarFile != "" {
		raw, err := os.ReadFile(*grammarFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			return
		}
		text = string(raw)
	}

	word := demoWord
	if pflag.NArg() > 0 {
		word = pflag.Arg(0)
	}

	g, err := loader.Parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return
	}

	r, err := newRecognizer(*engine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return
	}

	if err := r.Fit(g); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return
	}

	accepted := r.Recognize(word)
	fmt.Println(accepted)
	if accepted {
		returnCode = ExitAccepted
	} else {
		returnCode = ExitRejected
	}
}

// recognizer is the common contract cmd/langram drives both engines
// through; it matches the root package's Recognizer interface.
type recognizer interface {
	Fit(g *grammar.Grammar) error
	Recognize(word string) bool
}

func newRecognizer(name string) (recognizer, error) {
	switch name {
	case "earley":
		return earley.NewRecognizer(), nil
	case "lr1":
		return lr1.NewRecognizer(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q: must be \"earley\" or \"lr1\"", name)
	}
}
