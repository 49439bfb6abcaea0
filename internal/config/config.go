// Package config loads settings for the Buckwalter command line tools.
//
// Settings are layered, later layers overriding earlier ones:
// built-in defaults, the YAML config file, and BUCKWALTER_* environment
// variables. Command line flags are applied by the tools themselves.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/npillmayer/buckwalter/scanner"
	"github.com/npillmayer/buckwalter/translit"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'buckwalter.config'
func tracer() tracing.Trace {
	return tracing.Select("buckwalter.config")
}

// DefaultFile is the config file looked for in the working directory.
const DefaultFile = "buckwalter.yaml"

// EnvPrefix prefixes environment variables holding settings.
const EnvPrefix = "BUCKWALTER_"

// Config holds the settings of the tools.
type Config struct {
	TraceLevel    string `koanf:"trace_level"`    // Debug, Info or Error
	Normalize     string `koanf:"normalize"`      // none, nfc or nfd
	Workers       int    `koanf:"workers"`        // concurrent documents in batch mode
	OutputDir     string `koanf:"output_dir"`     // target folder for processed documents
	LinkClass     string `koanf:"link_class"`     // CSS class of internal links
	InlineCode    bool   `koanf:"inline_code"`    // scan inline code
	InternalLinks bool   `koanf:"internal_links"` // scan internal links
}

// Defaults returns the built-in settings.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"trace_level":    "Info",
		"normalize":      "none",
		"workers":        4,
		"output_dir":     "out",
		"link_class":     scanner.DefaultLinkClass,
		"inline_code":    true,
		"internal_links": true,
	}
}

// Load reads the configuration. If cfgFile is empty, DefaultFile is used if
// it exists; an explicitly named file must exist.
func Load(cfgFile string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgFile = DefaultFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
		tracer().Debugf("loaded config file %s", cfgFile)
	}
	// BUCKWALTER_OUTPUT_DIR -> output_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	var errs []error
	if !validTraceLevel(c.TraceLevel) {
		errs = append(errs, fmt.Errorf("invalid trace level %q, expected Debug, Info or Error", c.TraceLevel))
	}
	if _, _, err := ParseNormalization(c.Normalize); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, is %d", c.Workers))
	}
	if strings.TrimSpace(c.LinkClass) == "" {
		errs = append(errs, errors.New("link_class must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// SetTraceLevel sets the trace level called name for all traces. Level
// names are case insensitive.
func SetTraceLevel(name string, traces ...tracing.Trace) error {
	if !validTraceLevel(name) {
		return fmt.Errorf("invalid trace level %q, expected Debug, Info or Error", name)
	}
	for _, t := range traces {
		switch strings.ToLower(name) {
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		default:
			t.SetTraceLevel(tracing.LevelError)
		}
	}
	return nil
}

func validTraceLevel(name string) bool {
	switch strings.ToLower(name) {
	case "debug", "info", "error":
		return true
	}
	return false
}

// ParseNormalization maps a normalization name to a Unicode normalization
// form. enabled is false for "none".
func ParseNormalization(name string) (form norm.Form, enabled bool, err error) {
	switch strings.ToLower(name) {
	case "", "none":
		return norm.NFC, false, nil
	case "nfc":
		return norm.NFC, true, nil
	case "nfd":
		return norm.NFD, true, nil
	}
	return norm.NFC, false, fmt.Errorf("invalid normalization %q, expected none, nfc or nfd", name)
}

// Transliterator creates a transliterator for the Buckwalter table
// according to c.
func (c *Config) Transliterator() translit.Transliterator {
	if form, ok, _ := ParseNormalization(c.Normalize); ok {
		return translit.New(nil, translit.WithNormalization(form))
	}
	return translit.New(nil)
}

// Scanner creates a document scanner according to c.
func (c *Config) Scanner() *scanner.Scanner {
	return scanner.New(c.Transliterator(),
		scanner.WithLinkClass(c.LinkClass),
		scanner.WithInlineCode(c.InlineCode),
		scanner.WithInternalLinks(c.InternalLinks),
	)
}
