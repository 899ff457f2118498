/*
Package loader deserializes a grammar.Grammar from a line-structured
textual format:

	Line 1:        non-terminal alphabet, concatenated
	Line 2:        terminal alphabet, concatenated
	Lines 3..N-1:  productions, one per line, "LHS -> RHS"
	Line N:        the start non-terminal

At least four lines are required. Loader errors are deliberately narrow:
this package's only contract is to produce a valid grammar.Grammar or an
error; it performs no further analysis (that is each recognizer's Fit).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'langram'.
func tracer() tracing.Trace {
	return tracing.Select("langram")
}
