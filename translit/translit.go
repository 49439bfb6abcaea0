package translit

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/buckwalter/codetable"
	"golang.org/x/text/unicode/norm"
)

// Transliterator converts marked text using a code table.
//
// The zero value uses the default Buckwalter table and does not normalize
// its output. A Transliterator is immutable and may be copied and shared
// freely.
type Transliterator struct {
	table     *codetable.Table
	form      norm.Form
	normalize bool
}

// Option configures a Transliterator.
type Option func(*Transliterator)

// WithNormalization makes the transliterator normalize its output to the
// given Unicode normalization form.
func WithNormalization(form norm.Form) Option {
	return func(t *Transliterator) {
		t.form = form
		t.normalize = true
	}
}

// New creates a transliterator for table. If table is nil, the default
// Buckwalter table is used.
func New(table *codetable.Table, opts ...Option) Transliterator {
	t := Transliterator{table: table}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func (t Transliterator) codeTable() *codetable.Table {
	if t.table == nil {
		return codetable.Default()
	}
	return t.table
}

// Transform converts input if it is a transliteration request and returns it
// unchanged otherwise.
func (t Transliterator) Transform(input string) string {
	req := Classify(input)
	if req.Kind != Buckwalter {
		return input
	}
	out := t.TransformPayload(req.Payload)
	tracer().Debugf("transliterated %q => %q", input, out)
	return out
}

// TransformPayload converts s without looking for a marker. Code points
// without a table entry, as well as bytes which are not valid UTF-8, are
// copied unchanged.
func (t Transliterator) TransformPayload(s string) string {
	table := t.codeTable()
	var b strings.Builder
	b.Grow(len(s) * max(table.MaxExpansion(), 1))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if v, ok := table.Lookup(r); ok && size == utf8.RuneLen(r) {
			b.WriteString(v)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	if t.normalize {
		return t.form.String(b.String())
	}
	return b.String()
}

var std = Transliterator{}

// Transform converts input with the default Buckwalter table.
// See [Transliterator.Transform].
func Transform(input string) string {
	return std.Transform(input)
}

// TransformOptional is like [Transform], but accepts an absent input, for
// which it returns the empty string.
func TransformOptional(input *string) string {
	if input == nil {
		return ""
	}
	return std.Transform(*input)
}
