// Package engine wires the parser, item runtime, and an inventory together
// into the two driving loops the CLI offers: running a whole file, and an
// interactive REPL (§6 External Interfaces).
package engine

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cthulahoops/monkeyislang/item"
	"github.com/cthulahoops/monkeyislang/parser"
)

// RunFile executes every command read from r against a fresh default
// inventory, writing `look at` output to out. The first uncaught error
// aborts the run and is returned to the caller (§6.2 file mode).
func RunFile(r io.Reader, out io.Writer, tracer item.Tracer) error {
	inv := item.DefaultInventory()
	reader := parser.NewLineReader(bufio.NewScanner(r))
	ctx := &item.Context{Out: out, Tracer: tracer}
	return run(inv, reader, ctx)
}

func run(inv *item.Inventory, reader parser.Reader, ctx *item.Context) error {
	for {
		cmd, ok, err := reader.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := item.ExecCommand(cmd, inv, reader, ctx); err != nil {
			return err
		}
	}
}

// RunREPL drives an interactive session against a single fresh default
// inventory. Unlike RunFile, an error on one command is printed and the
// session continues rather than aborting (§9 "REPL per-command error
// recovery"). The same Reader persists across the whole session so that a
// block opened on one line is closed on a later one.
func RunREPL(in io.Reader, out io.Writer, prompt string, tracer item.Tracer) {
	inv := item.DefaultInventory()
	reader := parser.NewLineReader(bufio.NewScanner(in))
	ctx := &item.Context{Out: out, Tracer: tracer}

	fmt.Fprint(out, prompt)
	for {
		cmd, ok, err := reader.Next()
		if !ok {
			return
		}
		if err != nil {
			fmt.Fprintln(out, err)
			fmt.Fprint(out, prompt)
			continue
		}
		if _, err := item.ExecCommand(cmd, inv, reader, ctx); err != nil {
			fmt.Fprintln(out, err)
		}
		fmt.Fprint(out, prompt)
	}
}
