// Package item implements the monkeyislang runtime: the Item variant type
// with its capability table, the nested Inventory (lexical environment),
// the builtin items, and the exec_command dispatcher that ties verb
// resolution, `use` dispatch, and ProgramBlock calls together.
//
// Rather than probing attributes at runtime (as the source does), each
// capability is a small, uniformly-shaped method every Item implements:
// presence is signalled by a trailing bool, absence is a cheap stub
// (embed Base to get them for free). Wrappers override just the
// capabilities they forward. See DESIGN.md for the rationale.
package item

import "io"

// Outcome distinguishes "the use completed" from "this pairing doesn't
// apply, try the other operand" (§4.5). It is meaningless once an error is
// returned; the error always takes priority.
type Outcome int

const (
	Completed Outcome = iota
	NotApplicable
)

// Item is the universe of values the interpreter manipulates. Every kind
// implements the full capability surface; kinds that don't have a given
// capability embed Base to answer "absent" uniformly.
type Item interface {
	Name() string
	Copy() Item
	Unwrap() Item
	CoinValue() (value int, ok bool)
	Count() (count int, ok bool)
	SetCount(n int) (ok bool)
	Truthy() (truthy bool, ok bool)
	SetTruthy(t bool) (ok bool)
	Replace(n Item) (ok bool)
}

// Describer overrides the default "<name>" rendering with something
// richer, e.g. "<count> <name>" for coins.
type Describer interface {
	Description() string
}

// User marks an item that participates in `use` dispatch.
type User interface {
	Use(other Item, inv *Inventory, ctx *Context) (Outcome, error)
}

// LookAtter overrides the default "It's a <description>" rendering of
// `look at`. Only Inventory implements this.
type LookAtter interface {
	LookAt() string
}

// Colorer marks a ColorWrapper specifically: RootBeer requires it, and it
// exposes the immediately-wrapped value (one layer, not fully unwrapped).
type Colorer interface {
	Color() string
	Inner() Item
}

// Tracer receives one event per dispatched command. Defined here (rather
// than imported from the trace package) so item has no dependency on it;
// trace.Tracer satisfies this structurally.
type Tracer interface {
	Trace(verb, direct, indirect string)
}

// Context carries the collaborators exec_command and ProgramBlock need
// beyond the inventory: the sink `look at` writes to, and an optional
// tracer. It is not an Item and never appears in an inventory.
type Context struct {
	Out    io.Writer
	Tracer Tracer
}

// Base gives a concrete Item type no-op implementations of every optional
// capability. Embed it, then override just the methods that apply.
type Base struct{}

func (Base) CoinValue() (int, bool)  { return 0, false }
func (Base) Count() (int, bool)      { return 0, false }
func (Base) SetCount(int) bool       { return false }
func (Base) Truthy() (bool, bool)    { return false, false }
func (Base) SetTruthy(bool) bool     { return false }
func (Base) Replace(Item) bool       { return false }

// Description renders an item's Describer if it has one, else falls back
// to its name (§3 Capabilities).
func Description(it Item) string {
	if d, ok := it.(Describer); ok {
		return d.Description()
	}
	return it.Name()
}
