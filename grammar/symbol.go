package grammar

// Symbol is a single character drawn from a grammar's alphabet: either a
// terminal or a non-terminal.
type Symbol rune

// Reserved sentinels, distinct from any user symbol. They occupy control
// code points U+0001, U+0002 and U+0003, which no user grammar is expected
// to use.
const (
	// Start is the augmented start non-terminal, inserted by New.
	Start Symbol = '\x01'
	// End is the end-of-input terminal, consulted by the LR(1) builder and
	// driver. The Earley engine does not use it.
	End Symbol = '\x02'
	// Eps is reserved for future epsilon handling; it is declared for
	// symmetry with the original design but is never produced by either
	// engine (see DESIGN.md, "Epsilon").
	Eps Symbol = '\x03'
)

// IsReserved reports whether s is one of Start, End or Eps.
func IsReserved(s Symbol) bool {
	return s == Start || s == End || s == Eps
}

// String renders a symbol for diagnostics, spelling out the sentinels.
func (s Symbol) String() string {
	switch s {
	case Start:
		return "START"
	case End:
		return "END"
	case Eps:
		return "EPS"
	default:
		return string(rune(s))
	}
}

// symbolString turns a rune string into a slice of Symbol, the shape every
// production's right-hand side is stored in.
func symbolString(s string) []Symbol {
	runes := []rune(s)
	syms := make([]Symbol, len(runes))
	for i, r := range runes {
		syms[i] = Symbol(r)
	}
	return syms
}
