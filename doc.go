/*
Package langram implements two classical recognizers for context-free
grammars over a single-character alphabet: a chart-based Earley recognizer
(package earley) accepting any context-free grammar, and a table-driven
LR(1) recognizer (package lr1) accepting the subset of grammars whose
canonical LR(1) automaton has no shift/reduce or reduce/reduce conflicts.

Both recognizers share a common grammar representation (package grammar)
and implement the Recognizer contract defined in this package: Fit once
against a grammar, then Recognize any number of input words.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package langram

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/XDLoLiK/langram/grammar"
)

// tracer traces with key 'langram'.
func tracer() tracing.Trace {
	return tracing.Select("langram")
}

// Recognizer is the contract shared by the Earley and LR(1) engines.
//
// Fit validates a grammar and performs any preprocessing the concrete
// engine needs (the Earley recognizer essentially clones the grammar; the
// LR(1) recognizer builds its full action table). Recognize may then be
// called any number of times, each call answering whether the given word
// belongs to the grammar's language. Recognize never panics and never
// returns an error: on an unfit or failed recognizer it returns false.
type Recognizer interface {
	Fit(g *grammar.Grammar) error
	Recognize(word string) bool
}
