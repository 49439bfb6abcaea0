package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buckwalter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Info", cfg.TraceLevel)
	assert.Equal(t, "none", cfg.Normalize)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "internal-link", cfg.LinkClass)
	assert.True(t, cfg.InlineCode)
	assert.True(t, cfg.InternalLinks)
}

func TestLoadFileAndEnv(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "buckwalter.config")
	defer teardown()
	//
	path := writeConfig(t, `
trace_level: Debug
normalize: nfc
workers: 2
link_class: wikilink
inline_code: false
`)
	t.Setenv("BUCKWALTER_WORKERS", "8")
	t.Setenv("BUCKWALTER_OUTPUT_DIR", "arabic")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Debug", cfg.TraceLevel)
	assert.Equal(t, "nfc", cfg.Normalize)
	assert.Equal(t, 8, cfg.Workers, "env must override the config file")
	assert.Equal(t, "arabic", cfg.OutputDir)
	assert.Equal(t, "wikilink", cfg.LinkClass)
	assert.False(t, cfg.InlineCode)
	assert.True(t, cfg.InternalLinks)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	path := writeConfig(t, "normalize: nfkc\nworkers: 0\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nfkc")
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		errSubstr string
	}{
		{"valid", Config{TraceLevel: "error", Normalize: "NFD", Workers: 1, LinkClass: "x"}, ""},
		{"bad level", Config{TraceLevel: "Verbose", Workers: 1, LinkClass: "x"}, "trace level"},
		{"bad workers", Config{TraceLevel: "Info", Workers: -1, LinkClass: "x"}, "workers"},
		{"empty link class", Config{TraceLevel: "Info", Workers: 1, LinkClass: " "}, "link_class"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
			}
		})
	}
}

func TestParseNormalization(t *testing.T) {
	form, ok, err := ParseNormalization("nfd")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, norm.NFD, form)
	_, ok, err = ParseNormalization("")
	require.NoError(t, err)
	assert.False(t, ok)
	_, _, err = ParseNormalization("nfkd")
	assert.Error(t, err)
}

func TestSetTraceLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "buckwalter.config")
	defer teardown()
	//
	trace := tracing.Select("buckwalter.config")
	level := trace.GetTraceLevel()
	defer trace.SetTraceLevel(level)
	require.NoError(t, SetTraceLevel("DEBUG", trace))
	assert.Equal(t, tracing.LevelDebug, trace.GetTraceLevel())
	assert.Error(t, SetTraceLevel("loud", trace))
}

func TestConfiguredComponents(t *testing.T) {
	cfg := &Config{TraceLevel: "Info", Normalize: "nfc", Workers: 1, LinkClass: "internal-link", InlineCode: true}
	tr := cfg.Transliterator()
	assert.Equal(t, "\u0627", tr.Transform("b/A"))
	assert.NotNil(t, cfg.Scanner())
}
