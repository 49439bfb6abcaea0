package translit

import (
	"unicode/utf8"

	"github.com/npillmayer/buckwalter/codetable"
	"golang.org/x/text/transform"
)

// Transformer returns a transformer converting payload text, i.e. text
// without the marker prefix. If t normalizes its output, the normalization
// is chained behind the conversion.
func (t Transliterator) Transformer() transform.Transformer {
	pt := payloadTransformer{table: t.codeTable()}
	if t.normalize {
		return transform.Chain(pt, t.form)
	}
	return pt
}

type payloadTransformer struct {
	transform.NopResetter
	table *codetable.Table
}

// Transform implements transform.Transformer. Invalid UTF-8 is copied
// through byte by byte.
func (pt payloadTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				break
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		var n int
		if v, ok := pt.table.Lookup(r); ok && size == utf8.RuneLen(r) {
			if nDst+len(v) > len(dst) {
				err = transform.ErrShortDst
				break
			}
			n = copy(dst[nDst:], v)
		} else {
			if nDst+size > len(dst) {
				err = transform.ErrShortDst
				break
			}
			n = copy(dst[nDst:], src[nSrc:nSrc+size])
		}
		nDst += n
		nSrc += size
	}
	return nDst, nSrc, err
}
