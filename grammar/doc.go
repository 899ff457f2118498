/*
Package grammar implements the shared grammar representation for the
Earley and LR(1) recognizers: a single-character alphabet of terminal and
non-terminal symbols, a multi-map of productions, and the START/END/EPS
augmentation both engines rely on.

A Grammar is immutable once constructed with New. The augmentation adds a
fresh start symbol START, an end-of-input terminal END and a reserved
(currently unused) epsilon terminal EPS, together with the single
production START -> u, where u names the caller's original start
non-terminal. Both engines use this augmented production as their
unambiguous acceptance criterion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'langram'.
func tracer() tracing.Trace {
	return tracing.Select("langram")
}
