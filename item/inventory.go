package item

import (
	"strings"

	"github.com/cthulahoops/monkeyislang/diag"
)

// Inventory is a nested lexical scope: a flat ordered list of items plus a
// link to a parent scope. Lookup resolves the nearest binding first,
// falling back to parent scopes only on a local miss (§3 Data Model).
//
// Inventory is itself an Item — the literal name "inventory" always
// resolves to the current scope, independent of anything it contains
// (§4.2, §9 "the inventory names itself").
type Inventory struct {
	Base
	items  []Item
	parent *Inventory
}

func NewInventory(parent *Inventory) *Inventory {
	return &Inventory{parent: parent}
}

// CreateChild returns a fresh scope with inv as its parent, used for
// ProgramBlock call frames (§4.7).
func (inv *Inventory) CreateChild() *Inventory {
	return NewInventory(inv)
}

// Append adds it to the end of the local item list.
func (inv *Inventory) Append(it Item) {
	inv.items = append(inv.items, it)
}

// Remove drops it from the local list by identity. It is a no-op if it is
// not present locally — Remove never reaches into a parent scope.
func (inv *Inventory) Remove(it Item) {
	for i, cur := range inv.items {
		if cur == it {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return
		}
	}
}

// Lookup resolves name in inv, then inv.parent, then its parent, and so on.
// "inventory" always resolves to inv itself, before any item is consulted.
func (inv *Inventory) Lookup(name string) (Item, error) {
	if name == "inventory" {
		return inv, nil
	}
	for cur := inv; cur != nil; cur = cur.parent {
		for _, it := range cur.items {
			if it.Name() == name {
				return it, nil
			}
		}
	}
	return nil, diag.Lookup(name)
}

// Items returns the local item list. Callers must not mutate the slice.
func (inv *Inventory) Items() []Item {
	return inv.items
}

func (inv *Inventory) Name() string { return "inventory" }

func (inv *Inventory) Copy() Item { return inv }

func (inv *Inventory) Unwrap() Item { return inv }

// Describe renders the scope the way `look at inventory` does.
func (inv *Inventory) Describe() string {
	if len(inv.items) == 0 {
		return "I'm not carrying anything."
	}
	parts := make([]string, len(inv.items))
	for i, it := range inv.items {
		parts[i] = Description(it)
	}
	return "I'm carrying " + strings.Join(parts, ", ") + "."
}

func (inv *Inventory) LookAt() string { return inv.Describe() }
