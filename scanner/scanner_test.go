package scanner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/buckwalter/codetable"
	"github.com/npillmayer/buckwalter/translit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const alm = codetable.Alef + codetable.Lam + codetable.Meem

func pluginPipeline(opts ...Option) *Pipeline {
	p := NewPipeline()
	plugin := &Plugin{Scanner: New(translit.New(nil), opts...)}
	plugin.OnLoad(p)
	return p
}

func TestScanFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "buckwalter.scanner")
	defer teardown()
	//
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "inline code",
			input: `<p>Read <code>b/Alm</code> now</p>`,
			want:  `<p>Read <code>` + alm + `</code> now</p>`,
		},
		{
			name:  "untagged inline code",
			input: `<p><code>Alm</code></p>`,
			want:  `<p><code>Alm</code></p>`,
		},
		{
			name:  "code block is not inline code",
			input: `<pre><code>b/Alm</code></pre>`,
			want:  `<pre><code>b/Alm</code></pre>`,
		},
		{
			name:  "nested markup in inline code",
			input: `<code>b/A<em>lm</em></code>`,
			want:  `<code>` + alm + `</code>`,
		},
		{
			name:  "internal link text",
			input: `<a class="internal-link" href="note">b/Alm<span>b/Alm</span> b/b</a>`,
			want:  `<a class="internal-link" href="note">` + alm + `<span>b/Alm</span> b/b</a>`,
		},
		{
			name:  "internal link among other classes",
			input: `<a class="x internal-link y" href="n">b/, b</a>`,
			want:  `<a class="x internal-link y" href="n">` + codetable.ArabicComma + ` ` + codetable.Beh + `</a>`,
		},
		{
			name:  "external link",
			input: `<a class="external-link" href="https://example.org">b/Alm</a>`,
			want:  `<a class="external-link" href="https://example.org">b/Alm</a>`,
		},
		{
			name:  "plain paragraph",
			input: `<p>b/Alm</p>`,
			want:  `<p>b/Alm</p>`,
		},
		{
			name:  "escaped text",
			input: `<code>b/a&lt;b</code>`,
			want:  `<code>` + codetable.Fatha + codetable.AlefWithHamzaBelow + codetable.Beh + `</code>`,
		},
	}
	p := pluginPipeline()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProcessFragment(context.Background(), tt.input, p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanOptions(t *testing.T) {
	input := `<code>b/b</code><a class="wikilink">b/b</a><a class="internal-link">b/b</a>`
	p := pluginPipeline(WithInlineCode(false), WithLinkClass("wikilink"))
	got, err := ProcessFragment(context.Background(), input, p)
	require.NoError(t, err)
	assert.Equal(t, `<code>b/b</code><a class="wikilink">`+codetable.Beh+`</a><a class="internal-link">b/b</a>`, got)

	p = pluginPipeline(WithInternalLinks(false))
	got, err = ProcessFragment(context.Background(), input, p)
	require.NoError(t, err)
	assert.Equal(t, `<code>`+codetable.Beh+`</code><a class="wikilink">b/b</a><a class="internal-link">b/b</a>`, got)
}

func TestScanStats(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body>
		<code>b/A</code><code>A</code>
		<a class="internal-link">b/A<b>x</b>tail</a>
		<pre><code>b/A</code></pre>
	</body></html>`))
	require.NoError(t, err)
	stats := New(translit.New(nil)).Scan(doc)
	assert.Equal(t, Stats{CodeElements: 2, LinkTexts: 2, Transliterated: 2}, stats)

	var total Stats
	total.Add(stats)
	total.Add(stats)
	assert.Equal(t, 4, total.Transliterated)
	assert.Equal(t, Stats{}, New(translit.New(nil)).Scan(nil))
}

func TestProcessHTML(t *testing.T) {
	var out strings.Builder
	stats, err := ProcessHTML(strings.NewReader(`<p><code>b/Alm</code></p>`), &out, New(translit.New(nil)))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Transliterated)
	assert.Equal(t, `<html><head></head><body><p><code>`+alm+`</code></p></body></html>`, out.String())
}

func TestPipelineRunsHooksOncePerRender(t *testing.T) {
	p := NewPipeline()
	var calls []string
	p.RegisterPostProcessor(PostProcessorFunc(func(_ context.Context, _ *html.Node, rc RenderContext) error {
		calls = append(calls, "first:"+rc.SourcePath)
		return nil
	}))
	p.RegisterPostProcessor(nil)
	p.RegisterPostProcessor(PostProcessorFunc(func(_ context.Context, _ *html.Node, rc RenderContext) error {
		calls = append(calls, "second:"+rc.SourcePath)
		return nil
	}))
	require.Equal(t, 2, p.Len())
	doc := &html.Node{Type: html.DocumentNode}
	require.NoError(t, p.Render(context.Background(), doc, RenderContext{SourcePath: "a.md"}))
	require.NoError(t, p.Render(context.Background(), doc, RenderContext{SourcePath: "b.md"}))
	assert.Equal(t, []string{"first:a.md", "second:a.md", "first:b.md", "second:b.md"}, calls)
}

func TestPipelineErrors(t *testing.T) {
	p := NewPipeline()
	errHook := errors.New("hook failed")
	called := false
	p.RegisterPostProcessor(PostProcessorFunc(func(context.Context, *html.Node, RenderContext) error {
		return errHook
	}))
	p.RegisterPostProcessor(PostProcessorFunc(func(context.Context, *html.Node, RenderContext) error {
		called = true
		return nil
	}))
	doc := &html.Node{Type: html.DocumentNode}
	err := p.Render(context.Background(), doc, RenderContext{SourcePath: "notes/x.md"})
	assert.ErrorIs(t, err, errHook)
	assert.Contains(t, err.Error(), "x.md")
	assert.False(t, called, "hooks after a failing hook must not run")

	assert.ErrorIs(t, p.Render(context.Background(), nil, RenderContext{}), ErrNilDocument)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Render(ctx, doc, RenderContext{}), context.Canceled)
}

func TestPluginDefaultScanner(t *testing.T) {
	p := NewPipeline()
	plugin := &Plugin{}
	plugin.OnLoad(p)
	require.NotNil(t, plugin.Scanner)
	got, err := ProcessFragment(context.Background(), `<code>b/Alm</code>`, p)
	require.NoError(t, err)
	assert.Equal(t, `<code>`+alm+`</code>`, got)
}
