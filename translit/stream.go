package translit

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNilRuneSource indicates that the stream input source is nil.
	ErrNilRuneSource = errors.New("translit: nil rune source")
	// ErrNilSink indicates that the stream output sink is nil.
	ErrNilSink = errors.New("translit: nil sink")
)

// RuneSource provides payload runes for streaming transliteration.
// [strings.Reader] and [bufio.Reader] are suitable sources.
type RuneSource interface {
	io.RuneReader
}

// Sink receives transliterated text. [strings.Builder] and [bufio.Writer]
// are suitable sinks.
type Sink interface {
	io.StringWriter
}

// Stream transliterates payload runes from src into sink until src is
// exhausted. No marker is expected in the input. Malformed UTF-8 in src is
// reported by the source as U+FFFD and copied as such.
//
// Returns nil on success, or an error for invalid arguments or a failing
// source or sink.
func (t Transliterator) Stream(src RuneSource, sink Sink) (err error) {
	if src == nil {
		return ErrNilRuneSource
	}
	if sink == nil {
		return ErrNilSink
	}
	var out Sink = sink
	if t.normalize {
		nw := t.form.Writer(sinkWriter{sink})
		defer func() {
			if cerr := nw.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("translit: writing sink: %w", cerr)
			}
		}()
		out = stringWriter{nw}
	}
	table := t.codeTable()
	count := 0
	for {
		r, _, rerr := src.ReadRune()
		if rerr == io.EOF {
			break
		} else if rerr != nil {
			return fmt.Errorf("translit: reading source: %w", rerr)
		}
		var werr error
		if v, ok := table.Lookup(r); ok {
			_, werr = out.WriteString(v)
		} else {
			_, werr = out.WriteString(string(r))
		}
		if werr != nil {
			return fmt.Errorf("translit: writing sink: %w", werr)
		}
		count++
	}
	tracer().Debugf("streamed %d code points", count)
	return nil
}

// sinkWriter adapts a Sink to io.Writer.
type sinkWriter struct {
	sink Sink
}

func (w sinkWriter) Write(p []byte) (int, error) {
	return w.sink.WriteString(string(p))
}

// stringWriter adapts an io.Writer to Sink.
type stringWriter struct {
	w io.Writer
}

func (w stringWriter) WriteString(s string) (int, error) {
	return io.WriteString(w.w, s)
}
