/*
Package iteratable implements an iteratable container data structure.

Set is a special purpose set type, suitable mainly for implementing
algorithms around scanners, parsers, chart and automaton construction.
These kinds of algorithms are often more straightforward to describe as
set constructions and set operations applied while iterating a worklist.

Unusually, Union and Subset are destructive — they mutate the receiver in
place and return it; Copy is the way to get an independent snapshot before
mutating. Difference is the exception: it returns a new set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
