package item

// Scales holds a truthy reading set by whatever coin was last weighed on
// them: zero coin value reads false, anything else reads true (§4.6). It
// carries no count, so per the capability rule (§3) it has no custom
// description and falls back to its name.
type Scales struct {
	Base
	truthy bool
}

func NewScales() *Scales { return &Scales{} }

func (s *Scales) Name() string { return "scales" }
func (s *Scales) Copy() Item   { c := *s; return &c }
func (s *Scales) Unwrap() Item { return s }

func (s *Scales) Truthy() (bool, bool)  { return s.truthy, true }
func (s *Scales) SetTruthy(t bool) bool { s.truthy = t; return true }

func (s *Scales) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	value, ok := other.CoinValue()
	if !ok {
		return NotApplicable, nil
	}
	s.truthy = value != 0
	return Completed, nil
}

// DishonestShopkeeper flips the truthy reading of whatever it's used with
// (§4.6). It has no state of its own.
type DishonestShopkeeper struct{ Base }

func (d *DishonestShopkeeper) Name() string { return "dishonest shopkeeper" }
func (d *DishonestShopkeeper) Copy() Item   { return d }
func (d *DishonestShopkeeper) Unwrap() Item { return d }

func (d *DishonestShopkeeper) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	truthy, ok := other.Truthy()
	if !ok {
		return NotApplicable, nil
	}
	other.SetTruthy(!truthy)
	return Completed, nil
}
