package main

import (
	"github.com/npillmayer/buckwalter/codetable"
	"golang.org/x/text/unicode/bidi"
)

// displayValue puts combining marks on a dotted circle, otherwise they
// would attach to the table border.
func displayValue(value string) string {
	if p, _ := bidi.LookupString(value); p.Class() == bidi.NSM {
		return codetable.Placeholder + value
	}
	return value
}

func formatBidiClass(value string) string {
	p, _ := bidi.LookupString(value)
	switch p.Class() {
	case bidi.AL:
		return "AL"
	case bidi.NSM:
		return "NSM"
	case bidi.CS:
		return "CS"
	case bidi.ON:
		return "ON"
	case bidi.L:
		return "L"
	case bidi.R:
		return "R"
	}
	return "?"
}
