/*
Package earley provides an Earley recognizer for arbitrary context-free
grammars.

Earley's algorithm for parsing ambiguous grammars has been known since
1968. Unlike table-driven bottom-up parsers, it places no restriction on
the grammar: any context-free grammar can be fitted and recognized against,
at the cost of a higher (though still polynomial) worst-case running time
than a conflict-free LR(1) table lookup.

The recognizer builds a chart: an array of item sets indexed 0..=len(word),
where position k holds the items that could consume the length-k prefix of
the input. Three operations — scan, predict and complete — are applied at
each position until a full predict+complete pass leaves the item set
unchanged (the fixpoint), after scanning in the next input character from
the previous position.

A thorough introduction to Earley-parsing may be found in "Parsing
Techniques" by Dick Grune and Ceriel J.H. Jacobs, section 7.2.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'langram'.
func tracer() tracing.Trace {
	return tracing.Select("langram")
}
