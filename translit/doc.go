/*
Package translit converts Buckwalter transliteration into Arabic script.

Only text tagged with the marker prefix "b/" is converted:

	translit.Transform("b/Alm")   // "الم"
	translit.Transform("Alm")     // "Alm", untagged text is left alone

After stripping the marker, the remaining text is processed code point by code
point. Code points found in the code table are replaced by their Arabic
counterparts, all others are copied unchanged. Nothing is ever dropped and no
input is rejected.

Besides the string API, a [Transliterator] offers a streaming interface
([Transliterator.Stream]) and a [golang.org/x/text/transform.Transformer]
for payload text, which composes with other transformers from x/text.

All functions of this package are pure and safe for concurrent use.
*/
package translit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'buckwalter.translit'
func tracer() tracing.Trace {
	return tracing.Select("buckwalter.translit")
}
