package scanner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/net/html"
)

// ErrNilDocument indicates that a render was requested without a document.
var ErrNilDocument = errors.New("scanner: nil document")

// RenderContext describes the document being rendered.
type RenderContext struct {
	SourcePath string // path of the source note, may be empty
}

func (rc RenderContext) name() string {
	if rc.SourcePath == "" {
		return "<document>"
	}
	return filepath.Base(rc.SourcePath)
}

// PostProcessor is a render hook. It is called once for every rendered
// document and may modify the document tree in place.
type PostProcessor interface {
	PostProcess(ctx context.Context, doc *html.Node, rc RenderContext) error
}

// PostProcessorFunc adapts a function to a PostProcessor.
type PostProcessorFunc func(ctx context.Context, doc *html.Node, rc RenderContext) error

// PostProcess calls f.
func (f PostProcessorFunc) PostProcess(ctx context.Context, doc *html.Node, rc RenderContext) error {
	return f(ctx, doc, rc)
}

// Pipeline is the host side of rendering: it holds the registered render
// hooks and runs them over every rendered document.
//
// Registration and rendering may happen from different goroutines.
type Pipeline struct {
	mu         sync.RWMutex
	processors []PostProcessor
}

// NewPipeline creates a pipeline without any hooks.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// RegisterPostProcessor adds pp to the hooks run by [Pipeline.Render].
// Nil hooks are ignored.
func (p *Pipeline) RegisterPostProcessor(pp PostProcessor) {
	if pp == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processors = append(p.processors, pp)
}

// Len returns the number of registered hooks.
func (p *Pipeline) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.processors)
}

// Render runs every registered hook once over doc, in registration order.
// It stops at the first failing hook or when ctx is done.
func (p *Pipeline) Render(ctx context.Context, doc *html.Node, rc RenderContext) error {
	if doc == nil {
		return ErrNilDocument
	}
	p.mu.RLock()
	processors := append([]PostProcessor(nil), p.processors...)
	p.mu.RUnlock()
	for i, pp := range processors {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := pp.PostProcess(ctx, doc, rc); err != nil {
			return fmt.Errorf("scanner: render hook #%d for %s: %w", i, rc.name(), err)
		}
	}
	return nil
}
