package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/buckwalter/internal/config"
	"github.com/npillmayer/buckwalter/translit"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'buckwalter'
func tracer() tracing.Trace {
	return tracing.Select("buckwalter")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		"trace.buckwalter":          "Info",
		"trace.buckwalter.translit": "Error",
		"trace.buckwalter.config":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error], overrides config")
	cfgfile := flag.String("config", "", "Config file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the Buckwalter CLI")
	//
	// load configuration
	cfg, err := config.Load(*cfgfile)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	//
	// set up REPL
	repl, err := readline.New("bw > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, tr: cfg.Transliterator()}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	level := cfg.TraceLevel
	if *tlevel != "" {
		level = *tlevel
	}
	if err := config.SetTraceLevel(level, tracer(), tracing.Select("buckwalter.translit")); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", level)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	tr      translit.Transliterator
	history []string // Arabic output of previous conversions
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	TABLE
	MAP
	TRACE
	HISTORY
	TRANSLIT
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"table":   TABLE,
	"map":     MAP,
	"trace":   TRACE,
	"history": HISTORY,
}

var opNames = []string{
	"quit",
	"help",
	"table",
	"map",
	"trace",
	"history",
	"translit",
}

// parseCommand splits a line into an op-code and its argument.
// Lines which are not commands, including all lines carrying the
// transliteration marker, are converted.
func (intp *Intp) parseCommand(line string) (*Op, error) {
	op := &Op{code: TRANSLIT, arg: line}
	if translit.IsTransliterationRequest(line) {
		return op, nil
	}
	c := strings.SplitN(line, ":", 2) // e.g.  "map:~" or "help:marker" or "table"
	code, ok := opMap[strings.ToLower(c[0])]
	if !ok {
		return op, nil
	}
	op.code = code
	op.arg = getOptArg(c, 1)
	if op.arg == "" {
		tracer().Debugf("%s", opNames[op.code])
	} else {
		tracer().Debugf("%s: looking for '%s'", opNames[op.code], op.arg)
	}
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	TABLE:    tableOp,
	MAP:      mapOp,
	TRACE:    traceOp,
	HISTORY:  historyOp,
	TRANSLIT: translitOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	err, stop = f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func traceOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		pterm.Printf("Trace level is %v\n", tracer().GetTraceLevel())
		return nil, false
	}
	err := config.SetTraceLevel(op.arg, tracer(), tracing.Select("buckwalter.translit"))
	return err, false
}

// translitOp converts the argument, adding the marker if it is missing.
func translitOp(intp *Intp, op *Op) (error, bool) {
	text := op.arg
	if !translit.IsTransliterationRequest(text) {
		text = translit.Marker + text
	}
	out := intp.tr.Transform(text)
	intp.history = append(intp.history, out)
	pterm.Println(out)
	return nil, false
}

func historyOp(intp *Intp, op *Op) (error, bool) {
	if len(intp.history) == 0 {
		pterm.Println("no conversions yet")
		return nil, false
	}
	for i, out := range intp.history {
		pterm.Printf("%3d  %s\n", i+1, out)
	}
	return nil, false
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
