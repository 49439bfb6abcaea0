package buckwalter

import (
	"strings"
	"testing"

	"github.com/npillmayer/buckwalter/codetable"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "buckwalter")
	defer teardown()
	//
	want := codetable.Beh + codetable.Kasra + codetable.Seen + codetable.Sukoon +
		codetable.Meem + codetable.Kasra
	assert.Equal(t, want, Transform("b/bisomi"))
	assert.Equal(t, "bisomi", Transform("bisomi"))
}

func TestTransformHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "buckwalter")
	defer teardown()
	//
	var sb strings.Builder
	err := TransformHTML(strings.NewReader(`<p><code>b/Alm</code></p>`), &sb)
	require.NoError(t, err)
	assert.Contains(t, sb.String(), codetable.Alef+codetable.Lam+codetable.Meem)
}

func TestTransformHTMLFragment(t *testing.T) {
	got, err := TransformHTMLFragment(`<a class="internal-link" href="x">b/, b</a>`)
	require.NoError(t, err)
	assert.Equal(t, `<a class="internal-link" href="x">`+codetable.ArabicComma+` `+codetable.Beh+`</a>`, got)
}
