package main

import (
	"testing"

	"github.com/npillmayer/buckwalter/codetable"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "buckwalter")
	defer teardown()
	//
	intp := &Intp{}
	tests := []struct {
		line string
		code int
		arg  string
	}{
		{"quit", QUIT, ""},
		{"help:marker", HELP, "marker"},
		{"Table", TABLE, ""},
		{"map:~", MAP, "~"},
		{"trace:Debug", TRACE, "Debug"},
		{"history", HISTORY, ""},
		{"ktAb", TRANSLIT, "ktAb"},
		{"b/table", TRANSLIT, "b/table"},
		{"b/map:~", TRANSLIT, "b/map:~"},
		{"foo:bar", TRANSLIT, "foo:bar"},
	}
	for _, tc := range tests {
		op, err := intp.parseCommand(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.code, op.code, tc.line)
		assert.Equal(t, tc.arg, op.arg, tc.line)
	}
}

func TestTranslitOpKeepsHistory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "buckwalter")
	defer teardown()
	//
	intp := &Intp{}
	err, stop := translitOp(intp, &Op{code: TRANSLIT, arg: "Alm"})
	require.NoError(t, err)
	assert.False(t, stop)
	err, _ = translitOp(intp, &Op{code: TRANSLIT, arg: "b/b"})
	require.NoError(t, err)
	assert.Equal(t, []string{codetable.Alef + codetable.Lam + codetable.Meem, codetable.Beh}, intp.history)
}

func TestMapOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "buckwalter")
	defer teardown()
	//
	err, _ := mapOp(&Intp{}, &Op{code: MAP, arg: "~"})
	assert.NoError(t, err)
	err, _ = mapOp(&Intp{}, &Op{code: MAP, arg: "1"})
	assert.NoError(t, err, "unmapped characters are reported, not rejected")
	err, _ = mapOp(&Intp{}, &Op{code: MAP, arg: "ab"})
	assert.Error(t, err)
	err, _ = mapOp(&Intp{}, &Op{code: MAP})
	assert.Error(t, err)
}

func TestTableRow(t *testing.T) {
	row := tableRow('~', codetable.Shadda)
	assert.Equal(t, []string{
		"~",
		codetable.Placeholder + codetable.Shadda,
		"U+0651",
		"NSM",
		"ARABIC SHADDA",
	}, row)
	assert.Equal(t, "AL", formatBidiClass(codetable.Beh))
	assert.Equal(t, "CS", formatBidiClass(codetable.ArabicComma))
	assert.Equal(t, codetable.Beh, displayValue(codetable.Beh))
}

func TestTableOpRendersTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "buckwalter")
	defer teardown()
	//
	err, stop := tableOp(&Intp{}, &Op{code: TABLE})
	assert.NoError(t, err)
	assert.False(t, stop)
	assert.NoError(t, renderTable([][]string{{"Key", "Arabic"}, {"b", codetable.Beh}}))
}
