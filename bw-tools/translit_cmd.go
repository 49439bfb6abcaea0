package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/buckwalter/translit"
	"github.com/thatisuday/commando"
	"golang.org/x/text/transform"
)

func runTranslitCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	cfg := setup(flags)
	if n := optString(flags["normalize"], "normalize"); n != "" {
		cfg.Normalize = n
		if err := cfg.Validate(); err != nil {
			fatalf("%v", err)
		}
	}
	tr := cfg.Transliterator()
	if mustFlagBool(flags["stdin"], "stdin") {
		if err := streamText(os.Stdin, os.Stdout, tr); err != nil {
			fatalf("%v", err)
		}
		return
	}
	text := args["text"].Value
	if text == "" {
		fatalf("text argument or --stdin is required")
	}
	fmt.Println(tr.Transform(text))
}

// streamText converts everything from r as Buckwalter payload.
func streamText(r io.Reader, w io.Writer, tr translit.Transliterator) error {
	out := bufio.NewWriter(w)
	if _, err := io.Copy(out, transform.NewReader(r, tr.Transformer())); err != nil {
		return fmt.Errorf("converting input: %w", err)
	}
	return out.Flush()
}
