/*
Package scanner applies Buckwalter transliteration to rendered HTML documents.

A host renders a note to HTML and runs a [Pipeline] of post-processors over
the result. The [Plugin] registers a [Scanner] with such a pipeline. For every
render the scanner visits

  - inline code elements (`code` not nested in `pre`), and
  - the direct text children of internal links (`a` elements carrying the
    class "internal-link"),

hands each text value to the transliterator and replaces just that text.
Surrounding markup is left as it is. Text without the "b/" marker comes out
unchanged, so a document without tagged spans is not modified at all.
*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'buckwalter.scanner'
func tracer() tracing.Trace {
	return tracing.Select("buckwalter.scanner")
}
