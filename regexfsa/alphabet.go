package regexfsa

import (
	"sort"
	"strings"
)

// reservedMeta holds every character with special meaning in the regex
// grammar; an alphabet class name may not collide with one of these, since
// the scanner would never be able to tell the class reference from the
// operator.
const reservedMeta = "()[].?*+"

// Alphabet maps a phone-class name (a single rune, the key the regex
// scanner matches against) to the literal symbols that class expands to.
// Symbols may be multi-character tokens ("kw", "a:", "tsin").
type Alphabet map[rune][]string

// validate rejects an alphabet whose class names collide with regex
// metacharacters. It does not check for emptiness; the parser rejects an
// empty alphabet when it meets sigma.
func (alpha Alphabet) validate() error {
	for class := range alpha {
		if strings.ContainsRune(reservedMeta, class) {
			return ErrReservedClassName
		}
	}
	return nil
}

// allSymbols returns every distinct symbol across every class, for sigma
// expansion. Epsilon is never a member: classes only ever list literal
// surface/underlying symbols.
func (alpha Alphabet) allSymbols() []string {
	seen := make(map[string]bool)
	var out []string
	for _, syms := range alpha {
		for _, s := range syms {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	return out
}
