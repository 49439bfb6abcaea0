package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "marker", "b/":
		pterm.Info.Println("Marker")
		pterm.Println(`
	Text is converted only if it starts with the marker "b/".
	In documents, untagged code and links are never touched:

	    b/ktAb     =>  Arabic
	    ktAb       =>  ktAb

	In this CLI, every line which is not a command is converted, and the
	marker is added if it is missing. Use the marker to convert a word
	which happens to be a command name, e.g. "b/table".
	`)
	case "table", "map":
		pterm.Info.Println("Code Table")
		pterm.Println(`
	The code table maps one Latin character to one Arabic code point:
	    A b t v j ...   letters
	    a u i o ~       vowels, sukoon, shadda
	    F N K           tanween
	    ,               Arabic comma
	Characters without an entry (digits, spaces, ...) are kept as they are.
	"table" prints all entries, "map:<char>" a single one.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	quit            leave the CLI
	help[:topic]    help, topics are "marker" and "table"
	table           print the code table
	map:<char>      print the entry for one character
	trace[:level]   show or set the trace level (Debug, Info, Error)
	history         print previous conversions
	<text>          convert text
	`)
	}
}
