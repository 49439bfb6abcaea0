package translit

import "strings"

// Marker is the prefix tagging a string as Buckwalter-encoded.
const Marker = "b/"

// Kind tells how a string is to be treated by the transliterator.
type Kind int8

const (
	// Plain text is never rewritten.
	Plain Kind = iota
	// Buckwalter text carries the marker prefix.
	Buckwalter
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Buckwalter:
		return "buckwalter"
	}
	return "unknown"
}

// Request is a classified input string. For Buckwalter requests, Payload
// holds the text following the marker; for plain requests it holds the
// complete input.
type Request struct {
	Kind    Kind
	Payload string
}

// IsTransliterationRequest reports whether s starts with [Marker].
func IsTransliterationRequest(s string) bool {
	return strings.HasPrefix(s, Marker)
}

// Classify splits s into kind and payload. The marker is never part of the
// payload.
func Classify(s string) Request {
	if IsTransliterationRequest(s) {
		return Request{Kind: Buckwalter, Payload: s[len(Marker):]}
	}
	return Request{Kind: Plain, Payload: s}
}
