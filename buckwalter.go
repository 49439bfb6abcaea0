/*
Package buckwalter converts Buckwalter transliteration to Arabic script.

Buckwalter transliteration is a one-to-one ASCII encoding of Arabic letters and
vowel marks, historically used in corpora lacking Unicode support. Notes
written in Latin script may embed Arabic words this way. Text explicitly tagged
with the prefix "b/" is converted, everything else is left alone:

	buckwalter.Transform("b/ktAb")       // "كتاب"
	buckwalter.Transform("plain text")   // "plain text"

This package is a convenience layer. The building blocks live in sub-packages:

▪︎ codetable: the fixed mapping of Buckwalter symbols to Arabic code points.

▪︎ translit: marker detection and the string, streaming and x/text transformer
APIs.

▪︎ scanner: finds tagged text in rendered HTML (inline code and internal
links) and replaces it in place.

# Status

Conversion back to Latin script is not supported. Malformed input is never
rejected: characters without a Buckwalter meaning are passed through.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package buckwalter

import (
	"context"
	"io"

	"github.com/npillmayer/buckwalter/scanner"
	"github.com/npillmayer/buckwalter/translit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'buckwalter'
func tracer() tracing.Trace {
	return tracing.Select("buckwalter")
}

// Transform converts s if it starts with the marker "b/" and returns it
// unchanged otherwise.
func Transform(s string) string {
	return translit.Transform(s)
}

// TransformHTML reads a complete HTML document from r, converts tagged inline
// code and internal link texts, and writes the resulting document to w.
//
// This is a convenience API for the most common use-case. Clients who need
// more control, e.g. other link classes or additional render hooks, should
// use package scanner directly.
func TransformHTML(r io.Reader, w io.Writer) error {
	stats, err := scanner.ProcessHTML(r, w, scanner.New(translit.New(nil)))
	if err != nil {
		return err
	}
	tracer().Debugf("transformed HTML document, %d text values transliterated", stats.Transliterated)
	return nil
}

// TransformHTMLFragment is like TransformHTML, but for a fragment of HTML as
// it appears within a document body.
func TransformHTMLFragment(fragment string) (string, error) {
	p := scanner.NewPipeline()
	(&scanner.Plugin{}).OnLoad(p)
	return scanner.ProcessFragment(context.Background(), fragment, p)
}
