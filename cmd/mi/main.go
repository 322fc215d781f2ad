// Command mi runs monkeyislang scripts, or drops into an interactive
// REPL when no script is given.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/cthulahoops/monkeyislang/engine"
	"github.com/cthulahoops/monkeyislang/trace"
)

func main() {
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob, e.g., 'use' or 'look*')")
	flag.Parse()

	var filters []string
	if *traceFilter != "" {
		filters = strings.Split(*traceFilter, ",")
		for i := range filters {
			filters[i] = strings.TrimSpace(filters[i])
		}
	}
	tracer := trace.New(*traceEnabled, filters, os.Stderr)

	args := flag.Args()
	if len(args) == 0 {
		engine.RunREPL(os.Stdin, os.Stdout, "mi> ", tracer)
		return
	}

	f, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("opening %s: %v", args[0], err)
	}
	defer f.Close()

	if err := engine.RunFile(f, os.Stdout, tracer); err != nil {
		log.Fatalf("%v", err)
	}
}
