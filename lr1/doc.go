/*
Package lr1 provides a table-driven LR(1) recognizer.

Package lr1 can only handle LR(1) grammars: grammars whose canonical LR(1)
automaton has no shift/reduce or reduce/reduce conflict. All LR(1)
languages are deterministic, recognized in time linear in the length of
the input, at the cost of a build phase (Fit) that enumerates the
automaton's states and is exponential in the worst case (though fixed for
a given grammar).

Building a recognizer is two phases:

  - Fit enumerates the canonical LR(1) item sets (CLOSURE/GOTO), assigns
    each a state id, and emits a shift/reduce/accept action table,
    surfacing any conflict as an error.
  - Recognize interprets that table against an input word using a state
    stack and a symbol queue, exactly the way a conventional LR driver
    does, except the queue also carries reduced non-terminals back in for
    the GOTO lookup — unifying shift and goto into one table access.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'langram'.
func tracer() tracing.Trace {
	return tracing.Select("langram")
}
