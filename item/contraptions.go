package item

import "github.com/cthulahoops/monkeyislang/diag"

// ChromaticTriplicator removes the item it's used with and replaces it
// with three independently-counted copies, wrapped red, green and blue
// (§4.6). It has no state of its own.
type ChromaticTriplicator struct{ Base }

func (t *ChromaticTriplicator) Name() string { return "chromatic triplicator" }
func (t *ChromaticTriplicator) Copy() Item   { return t }
func (t *ChromaticTriplicator) Unwrap() Item { return t }

func (t *ChromaticTriplicator) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	inv.Remove(other)
	for _, color := range []string{"red", "green", "blue"} {
		inv.Append(NewColorWrapper(other.Copy(), color))
	}
	return Completed, nil
}

// DuplicatingContraption doubles another item's count in place. Used with
// something that has no count at all, it's a hard type error rather than
// a silent fallthrough (§4.6).
type DuplicatingContraption struct{ Base }

func (d *DuplicatingContraption) Name() string { return "duplicating contraption" }
func (d *DuplicatingContraption) Copy() Item   { return d }
func (d *DuplicatingContraption) Unwrap() Item { return d }

func (d *DuplicatingContraption) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	count, ok := other.Count()
	if !ok {
		return NotApplicable, diag.TypeMismatch("The %s has nothing to duplicate", other.Name())
	}
	other.SetCount(count * 2)
	return Completed, nil
}

// NLicatorCreator forges an n-licator whose multiplying factor is fixed
// at the coin value of whatever it's used with (§4.6).
type NLicatorCreator struct{ Base }

func (n *NLicatorCreator) Name() string { return "n-licator creator" }
func (n *NLicatorCreator) Copy() Item   { return n }
func (n *NLicatorCreator) Unwrap() Item { return n }

func (n *NLicatorCreator) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	value, ok := other.CoinValue()
	if !ok {
		return NotApplicable, nil
	}
	inv.Append(NewMultiplyingContraption(value))
	return Completed, nil
}

// MultiplyingContraption multiplies another coin's count by its fixed
// factor in place (§4.6).
type MultiplyingContraption struct {
	Base
	factor int
}

func NewMultiplyingContraption(factor int) *MultiplyingContraption {
	return &MultiplyingContraption{factor: factor}
}

func (m *MultiplyingContraption) Name() string { return "n-licator" }
func (m *MultiplyingContraption) Copy() Item   { return NewMultiplyingContraption(m.factor) }
func (m *MultiplyingContraption) Unwrap() Item { return m }

func (m *MultiplyingContraption) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	if _, ok := other.CoinValue(); !ok {
		return NotApplicable, nil
	}
	count, _ := other.Count()
	other.SetCount(count * m.factor)
	return Completed, nil
}

// RootBeer strips one color layer from a ColorWrapper, exposing whatever
// was wrapped underneath. Used on anything that isn't a ColorWrapper,
// it's a type error (§4.6).
type RootBeer struct{ Base }

func (r *RootBeer) Name() string { return "root beer" }
func (r *RootBeer) Copy() Item   { return r }
func (r *RootBeer) Unwrap() Item { return r }

func (r *RootBeer) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	c, ok := other.(Colorer)
	if !ok {
		return NotApplicable, diag.TypeMismatch("Root beer won't clean that")
	}
	inv.Remove(other)
	inv.Append(c.Inner())
	return Completed, nil
}

// VendingMachine consumes one coin value from whatever it's used with in
// exchange for a bottle o' grog, reusing an existing one in scope if there
// is one rather than always minting a fresh bottle (§4.6, §9 "VendingMachine
// name lookup").
type VendingMachine struct{ Base }

func (v *VendingMachine) Name() string { return "vending machine" }
func (v *VendingMachine) Copy() Item   { return v }
func (v *VendingMachine) Unwrap() Item { return v }

func (v *VendingMachine) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	value, ok := other.CoinValue()
	if !ok || value == 0 {
		return NotApplicable, diag.TypeMismatch("The vending machine needs coins")
	}
	count, _ := other.Count()
	other.SetCount(count - 1)

	if grog, err := inv.Lookup("bottles o' grog"); err == nil {
		grogCount, _ := grog.Count()
		grog.SetCount(grogCount + 1)
	} else {
		inv.Append(NewBottlesOGrog(1))
	}
	return Completed, nil
}
