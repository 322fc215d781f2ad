package item

import (
	"errors"

	"github.com/cthulahoops/monkeyislang/parser"
)

// ProgramBlock is both a conditional and a callable closure, distinguished
// at use-time by whether the other operand has a truthy reading (§4.7).
// Its command body and defining inventory are fixed at construction and
// never mutated afterwards.
type ProgramBlock struct {
	Base
	name         string
	commands     []parser.Command
	defInventory *Inventory
}

func NewProgramBlock(name string, commands []parser.Command, defInventory *Inventory) *ProgramBlock {
	return &ProgramBlock{name: name, commands: commands, defInventory: defInventory}
}

func (b *ProgramBlock) Name() string { return b.name }
func (b *ProgramBlock) Copy() Item   { return b }
func (b *ProgramBlock) Unwrap() Item { return b }

// Use is bimodal: a truthy other runs the block's body in the caller's own
// scope (conditional mode); anything else treats other as a call argument
// (call mode).
func (b *ProgramBlock) Use(other Item, callerInv *Inventory, ctx *Context) (Outcome, error) {
	if truthy, ok := other.Truthy(); ok {
		if !truthy {
			return Completed, nil
		}
		return b.execute(callerInv, ctx)
	}
	return b.call(callerInv, other, ctx)
}

// execute replays the block's captured commands in inv through a fresh
// SliceReader, so a nested `open` inside the block consumes from the
// block's own body rather than the enclosing stream (§4.3, §4.7).
func (b *ProgramBlock) execute(inv *Inventory, ctx *Context) (Outcome, error) {
	reader := parser.NewSliceReader(b.commands)
	for {
		cmd, ok, err := reader.Next()
		if err != nil {
			return NotApplicable, err
		}
		if !ok {
			break
		}
		if _, err := ExecCommand(cmd, inv, reader, ctx); err != nil {
			return NotApplicable, err
		}
	}
	return Completed, nil
}

// call builds a fresh child scope, removes the argument from the caller,
// aliases a copy of its fully-unwrapped value as "mysterious object", and
// seeds it with a pieces o' eight, a bottle o' grog and a shovel before
// running the block body (§4.7). A ReturnSignal raised inside the body is
// caught here: its value replaces the argument (preserving any wrapper
// structure the argument itself had, via Replace) and is pushed back into
// the caller's scope. A body that runs to completion without raising one
// produces no return value.
func (b *ProgramBlock) call(callerInv *Inventory, argument Item, ctx *Context) (Outcome, error) {
	frame := b.defInventory.CreateChild()
	callerInv.Remove(argument)

	frame.Append(NewAliasingWrapper(argument.Unwrap().Copy(), "mysterious object"))
	frame.Append(NewPiecesOEight(1))
	frame.Append(NewBottlesOGrog(1))
	frame.Append(&Shovel{})

	_, err := b.execute(frame, ctx)

	var signal *ReturnSignal
	if errors.As(err, &signal) {
		value := signal.Value.Unwrap()
		if argument.Replace(value) {
			callerInv.Append(argument)
		} else {
			callerInv.Append(value)
		}
		return Completed, nil
	}
	if err != nil {
		return NotApplicable, err
	}
	return Completed, nil
}
