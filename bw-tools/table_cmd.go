package main

import (
	"fmt"

	"github.com/npillmayer/buckwalter/codetable"
	"github.com/thatisuday/commando"
)

func runTableCommand(_ map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	names := mustFlagBool(flags["names"], "names")
	table := codetable.Default()
	fmt.Printf("Buckwalter code table (%d entries)\n", table.Len())
	for key, value := range table.All() {
		fmt.Printf("%c\t%s\t%s", key, value, codetable.FormatCodePoints(value))
		if names {
			fmt.Printf("\t%s", codetable.Describe(value))
		}
		fmt.Println()
	}
}
