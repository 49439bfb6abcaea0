package codetable

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// Table maps single source runes to Arabic code point sequences.
//
// A Table is total only over its keys: Lookup reports false for every rune
// outside the key set, and callers decide what to do with those (usually
// pass them through unchanged). The zero Table is empty and usable.
type Table struct {
	entries map[rune]string
	keys    []rune // sorted
	maxLen  int    // longest value in bytes
}

// New creates a table from entries. The map is copied; later changes to
// entries do not affect the table. Entries with an empty value are ignored.
func New(entries map[rune]string) *Table {
	t := &Table{
		entries: make(map[rune]string, len(entries)),
		keys:    make([]rune, 0, len(entries)),
	}
	for k, v := range entries {
		if v == "" {
			continue
		}
		t.entries[k] = v
		t.keys = append(t.keys, k)
		t.maxLen = max(t.maxLen, len(v))
	}
	slices.Sort(t.keys)
	return t
}

// Lookup returns the code point sequence mapped to r.
func (t *Table) Lookup(r rune) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[r]
	return v, ok
}

// Len returns the number of keys in t.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the keys of t in ascending order. The returned slice is a copy.
func (t *Table) Keys() []rune {
	if t == nil {
		return nil
	}
	return slices.Clone(t.keys)
}

// All iterates over the entries of t in ascending key order.
func (t *Table) All() iter.Seq2[rune, string] {
	return func(yield func(rune, string) bool) {
		if t == nil {
			return
		}
		for _, k := range t.keys {
			if !yield(k, t.entries[k]) {
				return
			}
		}
	}
}

// MaxExpansion returns the length in bytes of the longest value in t.
func (t *Table) MaxExpansion() int {
	if t == nil {
		return 0
	}
	return t.maxLen
}

// Lookup looks up r in the default Buckwalter table.
func Lookup(r rune) (string, bool) {
	return buckwalter.Lookup(r)
}

// Default returns the Buckwalter table.
func Default() *Table {
	return buckwalter
}

// Describe returns the Unicode character names of the code points in value,
// separated by " + ".
func Describe(value string) string {
	names := make([]string, 0, utf8.RuneCountInString(value))
	for _, r := range value {
		names = append(names, runenames.Name(r))
	}
	return strings.Join(names, " + ")
}

// FormatCodePoints lists the code points of value in U+XXXX notation,
// separated by blanks.
func FormatCodePoints(value string) string {
	cps := make([]string, 0, utf8.RuneCountInString(value))
	for _, r := range value {
		cps = append(cps, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(cps, " ")
}

var buckwalter = New(map[rune]string{
	'A':  Alef,
	'|':  AlefWithMadda,
	'{':  AlefWaslah,
	'`':  SuperscriptAlef,
	'b':  Beh,
	'p':  TehMarbuta,
	't':  Teh,
	'v':  Theh,
	'j':  Jeem,
	'H':  Hah,
	'x':  Khah,
	'd':  Dal,
	'*':  Thal,
	'r':  Reh,
	'z':  Zain,
	's':  Seen,
	'$':  Sheen,
	'S':  Sad,
	'D':  Dad,
	'T':  Tah,
	'Z':  Zah,
	'E':  Ain,
	'g':  Ghain,
	'f':  Feh,
	'q':  Qaf,
	'k':  Kaf,
	'l':  Lam,
	'm':  Meem,
	'n':  Noon,
	'h':  Heh,
	'w':  Waw,
	'Y':  AlefMaksura,
	'y':  Yeh,
	'F':  Fathatan,
	'N':  Dammatan,
	'K':  Kasratan,
	'a':  Fatha,
	'u':  Damma,
	'i':  Kasra,
	'~':  Shadda,
	'o':  Sukoon,
	'\'': Hamza,
	'>':  AlefWithHamzaAbove,
	'<':  AlefWithHamzaBelow,
	'}':  YehWithHamzaAbove,
	'&':  WawWithHamza,
	'_':  Tatweel,

	',': ArabicComma,
})
