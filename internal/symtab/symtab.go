// Package symtab interns symbol strings into compact integer labels.
//
// Multi-character tokens ("kw", "a:", "tsin") are treated as opaque atomic
// symbols, never as runs of bytes: the label assigned to "kw" has no relation
// to the labels assigned to "k" or "w". Label 0 is reserved for epsilon and
// is never returned by Intern for a non-empty symbol.
package symtab

// Epsilon is the reserved label for the empty symbol.
const Epsilon int32 = 0

// Table interns symbol strings to stable int32 labels for the duration of a
// single compilation.
type Table struct {
	bySymbol map[string]int32
	byLabel  []string
}

// New returns an empty interning table with label 0 reserved for epsilon.
func New() *Table {
	return &Table{
		bySymbol: map[string]int32{"": Epsilon},
		byLabel:  []string{""},
	}
}

// Intern returns the label for sym, assigning a fresh one if sym has not
// been seen before. Interning "" always returns Epsilon.
func (t *Table) Intern(sym string) int32 {
	if sym == "" {
		return Epsilon
	}
	if label, ok := t.bySymbol[sym]; ok {
		return label
	}
	label := int32(len(t.byLabel))
	t.bySymbol[sym] = label
	t.byLabel = append(t.byLabel, sym)
	return label
}

// Symbol returns the symbol string for label, or "" if label is unknown.
func (t *Table) Symbol(label int32) string {
	if label < 0 || int(label) >= len(t.byLabel) {
		return ""
	}
	return t.byLabel[label]
}

// Len returns the number of distinct non-epsilon symbols interned so far.
func (t *Table) Len() int {
	return len(t.byLabel) - 1
}
