package item

import (
	"fmt"

	"github.com/cthulahoops/monkeyislang/diag"
	"github.com/cthulahoops/monkeyislang/parser"
)

// ExecCommand is exec_command: it resolves a parsed Command against inv
// and runs whatever verb behaviour applies (§4.2, §5). reader is the
// cursor `open` reads block bodies from — it is whatever stream is
// currently driving execution, top-level or a block replay.
func ExecCommand(cmd parser.Command, inv *Inventory, reader parser.Reader, ctx *Context) (Outcome, error) {
	if ctx != nil && ctx.Tracer != nil {
		ctx.Tracer.Trace(cmd.Verb, cmd.Direct, cmd.Indirect)
	}

	if cmd.Verb == "open" {
		commands, err := captureBlock(cmd.Direct, reader)
		if err != nil {
			return NotApplicable, err
		}
		inv.Append(NewProgramBlock(cmd.Direct, commands, inv))
		return Completed, nil
	}

	direct, err := inv.Lookup(cmd.Direct)
	if err != nil {
		return NotApplicable, err
	}

	var indirect Item
	if cmd.HasIndirect {
		indirect, err = inv.Lookup(cmd.Indirect)
		if err != nil {
			return NotApplicable, err
		}
	}

	switch cmd.Verb {
	case "use":
		if indirect == nil {
			return NotApplicable, diag.Parse("use what with %s?", cmd.Direct)
		}
		return UseItems(direct, indirect, inv, ctx)
	case "look at":
		return Completed, lookAt(direct, ctx)
	default:
		// Verbs like push, pull, walk to, give, turn on/off parse and
		// resolve their operands but carry no runtime behaviour (§9
		// "Unused verbs").
		return Completed, nil
	}
}

// captureBlock consumes commands from reader until a matching `close name`,
// which it swallows rather than returning. Reaching end of stream first is
// a parse error: every `open` must be closed.
func captureBlock(name string, reader parser.Reader) ([]parser.Command, error) {
	var commands []parser.Command
	for {
		cmd, ok, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, diag.Parse("unexpected end of input while defining %q", name)
		}
		if cmd.Verb == "close" && cmd.Direct == name {
			return commands, nil
		}
		commands = append(commands, cmd)
	}
}

// UseItems implements the bimodal `use` dispatch of §4.5: try the direct
// object's Use first, then the indirect object's, in either order falling
// through on NotApplicable but stopping immediately on any error. Neither
// side applying is itself an error.
func UseItems(direct, indirect Item, inv *Inventory, ctx *Context) (Outcome, error) {
	if d, ok := direct.(User); ok {
		outcome, err := d.Use(indirect, inv, ctx)
		if err != nil {
			return outcome, err
		}
		if outcome != NotApplicable {
			return outcome, nil
		}
	}
	if i, ok := indirect.(User); ok {
		outcome, err := i.Use(direct, inv, ctx)
		if err != nil {
			return outcome, err
		}
		if outcome != NotApplicable {
			return outcome, nil
		}
	}
	return NotApplicable, diag.Incompatible(direct.Name(), indirect.Name())
}

func lookAt(direct Item, ctx *Context) error {
	if la, ok := direct.(LookAtter); ok {
		fmt.Fprintln(ctx.Out, la.LookAt())
		return nil
	}
	fmt.Fprintf(ctx.Out, "It's a %s\n", Description(direct))
	return nil
}
