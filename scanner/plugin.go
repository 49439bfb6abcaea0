package scanner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/buckwalter/translit"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Plugin connects Buckwalter transliteration to a host pipeline.
type Plugin struct {
	Scanner *Scanner // if nil, a default scanner is used
}

// OnLoad registers the plugin's scanner as a render hook of p.
func (pl *Plugin) OnLoad(p *Pipeline) {
	if pl.Scanner == nil {
		pl.Scanner = New(translit.New(nil))
	}
	p.RegisterPostProcessor(pl.Scanner)
	tracer().Debugf("Buckwalter plugin loaded, %d render hooks", p.Len())
}

// ProcessHTML parses a complete HTML document from r, transliterates it with
// s and writes the result to w.
func ProcessHTML(r io.Reader, w io.Writer, s *Scanner) (Stats, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Stats{}, fmt.Errorf("scanner: parsing HTML: %w", err)
	}
	stats := s.Scan(doc)
	if err := html.Render(w, doc); err != nil {
		return stats, fmt.Errorf("scanner: rendering HTML: %w", err)
	}
	return stats, nil
}

// ProcessFragment transliterates an HTML fragment in body context, e.g. the
// rendered output of a single paragraph.
func ProcessFragment(ctx context.Context, fragment string, p *Pipeline) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("scanner: parsing HTML fragment: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	if err := p.Render(ctx, body, RenderContext{}); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("scanner: rendering HTML fragment: %w", err)
		}
	}
	return buf.String(), nil
}
