package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/buckwalter/codetable"
	"github.com/pterm/pterm"
)

func tableOp(intp *Intp, op *Op) (error, bool) {
	table := codetable.Default()
	tracer().Infof("code table has %d entries", table.Len())
	data := [][]string{
		{"Key", "Arabic", "Code Points", "Bidi", "Name"},
	}
	for key, value := range table.All() {
		data = append(data, tableRow(key, value))
	}
	return renderTable(data), false
}

func mapOp(intp *Intp, op *Op) (err error, stop bool) {
	key, size := utf8.DecodeRuneInString(op.arg)
	if size == 0 || size != len(op.arg) {
		return fmt.Errorf("map expects exactly one character, got %q", op.arg), false
	}
	value, ok := codetable.Lookup(key)
	if !ok {
		pterm.Printf("%q has no entry and passes through unchanged\n", key)
		return nil, false
	}
	data := [][]string{
		{"Key", "Arabic", "Code Points", "Bidi", "Name"},
		tableRow(key, value),
	}
	return renderTable(data), false
}

func tableRow(key rune, value string) []string {
	return []string{
		string(key),
		displayValue(value),
		codetable.FormatCodePoints(value),
		formatBidiClass(value),
		codetable.Describe(value),
	}
}

func renderTable(data [][]string) error {
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return fmt.Errorf("cannot print table: %w", err)
	}
	return nil
}
