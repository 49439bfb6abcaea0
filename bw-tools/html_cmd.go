package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/npillmayer/buckwalter/internal/docload"
	"github.com/npillmayer/buckwalter/scanner"
	"github.com/thatisuday/commando"
)

func runHTMLCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	cfg := setup(flags)
	files := splitFileList(args["files"].Value)
	if len(files) == 0 {
		fatalf("at least one HTML file is required")
	}
	outDir := cfg.OutputDir
	if o := optString(flags["out"], "out"); o != "" {
		outDir = o
	}
	workers := cfg.Workers
	if w := mustFlagInt(flags["workers"], "workers"); w > 0 {
		workers = w
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	tracer().Debugf("processing %d files with %d workers", len(files), workers)
	results, err := docload.ProcessFiles(ctx, files, outDir, workers, cfg.Scanner())
	if err != nil {
		fatalf("%v", err)
	}
	for _, res := range results {
		fmt.Printf("%s => %s: %d code, %d link texts, %d transliterated\n",
			res.Source, res.Target, res.Stats.CodeElements, res.Stats.LinkTexts, res.Stats.Transliterated)
	}
	total := totalStats(results)
	fmt.Printf("Documents: %d, code elements: %d, link texts: %d, transliterated text values: %d\n",
		len(results), total.CodeElements, total.LinkTexts, total.Transliterated)
}

func totalStats(results []docload.Result) scanner.Stats {
	var total scanner.Stats
	for _, res := range results {
		total.Add(res.Stats)
	}
	return total
}
