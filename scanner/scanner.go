package scanner

import (
	"context"
	"slices"
	"strings"

	"github.com/npillmayer/buckwalter/translit"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultLinkClass is the CSS class identifying internal links.
const DefaultLinkClass = "internal-link"

// Scanner locates transliteration candidates in an HTML tree and replaces
// their text content.
type Scanner struct {
	tr            translit.Transliterator
	linkClass     string
	inlineCode    bool
	internalLinks bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLinkClass sets the CSS class identifying internal links.
func WithLinkClass(class string) Option {
	return func(s *Scanner) {
		s.linkClass = class
	}
}

// WithInlineCode switches scanning of inline code elements on or off.
func WithInlineCode(on bool) Option {
	return func(s *Scanner) {
		s.inlineCode = on
	}
}

// WithInternalLinks switches scanning of internal links on or off.
func WithInternalLinks(on bool) Option {
	return func(s *Scanner) {
		s.internalLinks = on
	}
}

// New creates a scanner using tr for text conversion. By default, both
// inline code and internal links are scanned.
func New(tr translit.Transliterator, opts ...Option) *Scanner {
	s := &Scanner{
		tr:            tr,
		linkClass:     DefaultLinkClass,
		inlineCode:    true,
		internalLinks: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats counts the work done by one scan.
type Stats struct {
	CodeElements   int // inline code elements visited
	LinkTexts      int // link text nodes visited
	Transliterated int // text values actually rewritten
}

// Add adds other to st.
func (st *Stats) Add(other Stats) {
	st.CodeElements += other.CodeElements
	st.LinkTexts += other.LinkTexts
	st.Transliterated += other.Transliterated
}

// Scan rewrites all transliteration candidates below doc.
func (s *Scanner) Scan(doc *html.Node) Stats {
	var stats Stats
	if doc == nil {
		return stats
	}
	codes, links := s.collect(doc)
	for _, code := range codes {
		stats.CodeElements++
		if s.replaceCodeText(code) {
			stats.Transliterated++
		}
	}
	for _, link := range links {
		for c := link.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.TextNode {
				continue
			}
			stats.LinkTexts++
			if out := s.tr.Transform(c.Data); out != c.Data {
				c.Data = out
				stats.Transliterated++
			}
		}
	}
	tracer().Debugf("scanned %d code elements and %d link texts, %d transliterated",
		stats.CodeElements, stats.LinkTexts, stats.Transliterated)
	return stats
}

// PostProcess lets a Scanner act as a render hook of a Pipeline.
func (s *Scanner) PostProcess(_ context.Context, doc *html.Node, rc RenderContext) error {
	stats := s.Scan(doc)
	if stats.Transliterated > 0 {
		tracer().Infof("%s: transliterated %d text values", rc.name(), stats.Transliterated)
	}
	return nil
}

// collect enumerates targets before any of them is modified.
func (s *Scanner) collect(doc *html.Node) (codes, links []*html.Node) {
	var walk func(n *html.Node, inPre bool)
	walk = func(n *html.Node, inPre bool) {
		if n.Type == html.ElementNode {
			switch {
			case n.DataAtom == atom.Pre:
				inPre = true
			case n.DataAtom == atom.Code && !inPre:
				if s.inlineCode {
					codes = append(codes, n)
				}
				return
			case n.DataAtom == atom.A && s.internalLinks && hasClass(n, s.linkClass):
				links = append(links, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inPre)
		}
	}
	walk(doc, false)
	return
}

// replaceCodeText converts the complete text content of a code element.
// Elements whose text is not a transliteration request are left untouched.
func (s *Scanner) replaceCodeText(code *html.Node) bool {
	text := textContent(code)
	if !translit.IsTransliterationRequest(text) {
		return false
	}
	for c := code.FirstChild; c != nil; {
		next := c.NextSibling
		code.RemoveChild(c)
		c = next
	}
	code.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: s.tr.Transform(text),
	})
	return true
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "class" {
			return slices.Contains(strings.Fields(attr.Val), class)
		}
	}
	return false
}
