package item

import "fmt"

// PiecesOEight is a positive-valued coin: using one against another coin
// nets their values, saturating at zero rather than going negative (§4.4,
// the "saturating arithmetic" invariant).
type PiecesOEight struct {
	Base
	count int
}

func NewPiecesOEight(count int) *PiecesOEight {
	return &PiecesOEight{count: count}
}

func (p *PiecesOEight) Name() string        { return "pieces o' eight" }
func (p *PiecesOEight) Description() string { return fmt.Sprintf("%d %s", p.count, p.Name()) }
func (p *PiecesOEight) Copy() Item          { return NewPiecesOEight(p.count) }
func (p *PiecesOEight) Unwrap() Item        { return p }

func (p *PiecesOEight) CoinValue() (int, bool) { return p.count, true }
func (p *PiecesOEight) Count() (int, bool)     { return p.count, true }
func (p *PiecesOEight) SetCount(n int) bool    { p.count = n; return true }

// Use nets p and other's coin values into whichever of the two can hold
// the (non-negative) result, zeroing the other. Two pieces o' eight or a
// piece o' eight and a bottle o' grog both qualify, since both have a
// coin value (§4.4).
func (p *PiecesOEight) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	otherValue, ok := other.CoinValue()
	if !ok {
		return NotApplicable, nil
	}
	sum := p.count + otherValue
	if sum <= 0 {
		other.SetCount(-sum)
		p.count = 0
	} else {
		p.count = sum
		other.SetCount(0)
	}
	return Completed, nil
}

// BottlesOGrog is a negative-valued coin: it has no use behaviour of its
// own, it only participates when something else uses it (§4.4).
type BottlesOGrog struct {
	Base
	count int
}

func NewBottlesOGrog(count int) *BottlesOGrog {
	return &BottlesOGrog{count: count}
}

func (b *BottlesOGrog) Name() string        { return "bottles o' grog" }
func (b *BottlesOGrog) Description() string { return fmt.Sprintf("%d %s", b.count, b.Name()) }
func (b *BottlesOGrog) Copy() Item          { return NewBottlesOGrog(b.count) }
func (b *BottlesOGrog) Unwrap() Item        { return b }

func (b *BottlesOGrog) CoinValue() (int, bool) { return -b.count, true }
func (b *BottlesOGrog) Count() (int, bool)     { return b.count, true }
func (b *BottlesOGrog) SetCount(n int) bool    { b.count = n; return true }
