// Package docload reads, converts and writes HTML documents in batches.
package docload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/buckwalter/scanner"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// tracer traces with key 'buckwalter.docload'
func tracer() tracing.Trace {
	return tracing.Select("buckwalter.docload")
}

// ErrDuplicateTarget is returned by ProcessFiles if two input files would be
// written to the same output file.
var ErrDuplicateTarget = errors.New("docload: duplicate output file")

// Document is a parsed HTML document together with its origin.
type Document struct {
	Name string
	Path string // empty for documents parsed from memory
	Root *html.Node
}

// LoadHTMLDocument loads an HTML document from a file.
func LoadHTMLDocument(path string) (*Document, error) {
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseHTMLDocument(filepath.Base(path), bytez)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// ParseHTMLDocument parses an HTML document from memory.
func ParseHTMLDocument(name string, bytez []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(bytez))
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML document %s: %w", name, err)
	}
	tracer().Debugf("parsed HTML document %s", name)
	return &Document{Name: name, Root: root}, nil
}

// Render writes doc as HTML to w.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.Root)
}

// Result reports the outcome for one processed file.
type Result struct {
	Source string
	Target string
	Stats  scanner.Stats
}

// ProcessFiles runs every file in paths through a render pipeline holding
// the scanner sc and writes the results to outDir, keeping file names.
// Up to workers files are processed concurrently. The first failure cancels
// all remaining work. Results are returned in the order of paths.
//
// Input files sharing a base name would overwrite each other's output; in
// this case ProcessFiles fails with ErrDuplicateTarget before touching any
// file.
func ProcessFiles(ctx context.Context, paths []string, outDir string, workers int, sc *scanner.Scanner) ([]Result, error) {
	targets, err := outputTargets(paths, outDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, path := range paths {
		g.Go(func() error {
			res, err := processFile(ctx, path, targets[i], sc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// outputTargets maps every input path to its output file in outDir.
func outputTargets(paths []string, outDir string) ([]string, error) {
	targets := make([]string, len(paths))
	seen := make(map[string]string, len(paths))
	for i, path := range paths {
		targets[i] = filepath.Join(outDir, filepath.Base(path))
		if other, ok := seen[targets[i]]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrDuplicateTarget, other, path, targets[i])
		}
		seen[targets[i]] = path
	}
	return targets, nil
}

func processFile(ctx context.Context, path, target string, sc *scanner.Scanner) (Result, error) {
	res := Result{Source: path, Target: target}
	doc, err := LoadHTMLDocument(path)
	if err != nil {
		return res, err
	}
	pipeline := scanner.NewPipeline()
	pipeline.RegisterPostProcessor(scanner.PostProcessorFunc(
		func(_ context.Context, root *html.Node, _ scanner.RenderContext) error {
			res.Stats = sc.Scan(root)
			return nil
		}))
	if err := pipeline.Render(ctx, doc.Root, scanner.RenderContext{SourcePath: path}); err != nil {
		return res, err
	}
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return res, fmt.Errorf("cannot render %s: %w", path, err)
	}
	if err := os.WriteFile(res.Target, buf.Bytes(), 0o644); err != nil {
		return res, err
	}
	tracer().Infof("%s => %s (%d transliterated)", path, res.Target, res.Stats.Transliterated)
	return res, nil
}
