package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/buckwalter/internal/config"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'buckwalter'
func tracer() tracing.Trace {
	return tracing.Select("buckwalter")
}

var traceKeys = []string{
	"buckwalter",
	"buckwalter.translit",
	"buckwalter.scanner",
	"buckwalter.docload",
	"buckwalter.config",
}

func main() {
	commando.
		SetExecutableName("bw-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for converting Buckwalter transliteration to Arabic script.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("translit").
		SetDescription("Convert Buckwalter text to Arabic. Text given as argument must carry the b/ marker to be converted; text read from stdin is always converted.").
		SetShortDescription("convert text").
		AddArgument("text", "text to convert, e.g. b/ktAb", "").
		AddFlag("stdin,i", "read text from standard input", commando.Bool, nil).
		AddFlag("normalize,n", "output normalization: none|nfc|nfd", commando.String, "-").
		AddFlag("config,c", "config file", commando.String, "-").
		AddFlag("verbose,V", "trace with level Debug", commando.Bool, nil).
		SetAction(runTranslitCommand)

	commando.
		Register("html").
		SetDescription("Convert tagged inline code and internal links of rendered HTML documents.").
		SetShortDescription("convert HTML documents").
		AddArgument("files...", "HTML files (comma separated when given as one argument)", "").
		AddFlag("out,o", "output folder", commando.String, "-").
		AddFlag("workers,w", "documents processed concurrently (0 uses config)", commando.Int, 0).
		AddFlag("config,c", "config file", commando.String, "-").
		AddFlag("verbose,V", "trace with level Debug", commando.Bool, nil).
		SetAction(runHTMLCommand)

	commando.
		Register("table").
		SetDescription("Print the Buckwalter code table.").
		SetShortDescription("print code table").
		AddFlag("names,N", "print Unicode character names", commando.Bool, nil).
		SetAction(runTableCommand)

	commando.Parse(nil)
}

// setup loads the configuration and configures tracing from it.
func setup(flags map[string]commando.FlagValue) *config.Config {
	cfgFile := optString(flags["config"], "config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fatalf("%v", err)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = cfg.TraceLevel
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	level := cfg.TraceLevel
	if verbose, err := flags["verbose"].GetBool(); err == nil && verbose {
		level = "Debug"
	}
	traces := make([]tracing.Trace, 0, len(traceKeys))
	for _, key := range traceKeys {
		traces = append(traces, tracing.Select(key))
	}
	if err := config.SetTraceLevel(level, traces...); err != nil {
		fatalf("%v", err)
	}
	return cfg
}

// optString returns the value of a string flag, with "-" meaning unset.
func optString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func splitFileList(list string) []string {
	var files []string
	for _, f := range strings.Split(list, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "bw-tools: "+format+"\n", args...)
	os.Exit(1)
}
