package item

import "fmt"

// ColorWrapper gives an item a dynamic, color-prefixed name and
// description, forwarding every other capability to the item it wraps
// (§4.6 ChromaticTriplicator, §9 Wrapper items).
type ColorWrapper struct {
	Base
	wrapped Item
	color   string
}

func NewColorWrapper(wrapped Item, color string) *ColorWrapper {
	return &ColorWrapper{wrapped: wrapped, color: color}
}

func (w *ColorWrapper) Name() string        { return w.color + " " + w.wrapped.Name() }
func (w *ColorWrapper) Description() string { return w.color + " " + Description(w.wrapped) }
func (w *ColorWrapper) Color() string       { return w.color }
func (w *ColorWrapper) Inner() Item         { return w.wrapped }

func (w *ColorWrapper) Copy() Item   { return NewColorWrapper(w.wrapped.Copy(), w.color) }
func (w *ColorWrapper) Unwrap() Item { return w.wrapped.Unwrap() }

func (w *ColorWrapper) CoinValue() (int, bool)  { return w.wrapped.CoinValue() }
func (w *ColorWrapper) Count() (int, bool)      { return w.wrapped.Count() }
func (w *ColorWrapper) SetCount(n int) bool     { return w.wrapped.SetCount(n) }
func (w *ColorWrapper) Truthy() (bool, bool)    { return w.wrapped.Truthy() }
func (w *ColorWrapper) SetTruthy(t bool) bool   { return w.wrapped.SetTruthy(t) }

// Replace delegates to the wrapped item if it too accepts replacement
// (chaining down to the innermost wrapper layer); otherwise it swaps its
// own wrapped reference. Either way it reports success, since a
// ColorWrapper always has something to replace.
func (w *ColorWrapper) Replace(n Item) bool {
	if w.wrapped.Replace(n) {
		return true
	}
	w.wrapped = n
	return true
}

func (w *ColorWrapper) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	if u, ok := w.wrapped.(User); ok {
		return u.Use(other, inv, ctx)
	}
	return NotApplicable, nil
}

// AliasingWrapper gives an item a fixed display name (unrelated to the
// wrapped item's own name) while forwarding every capability, the way the
// "mysterious object" alias in a call-mode frame does (§4.7).
type AliasingWrapper struct {
	Base
	wrapped Item
	name    string
}

func NewAliasingWrapper(wrapped Item, name string) *AliasingWrapper {
	return &AliasingWrapper{wrapped: wrapped, name: name}
}

func (w *AliasingWrapper) Name() string { return w.name }
func (w *AliasingWrapper) Description() string {
	return fmt.Sprintf("%s which appears to be %s", w.name, Description(w.wrapped))
}

func (w *AliasingWrapper) Copy() Item   { return NewAliasingWrapper(w.wrapped.Copy(), w.name) }
func (w *AliasingWrapper) Unwrap() Item { return w.wrapped.Unwrap() }

func (w *AliasingWrapper) CoinValue() (int, bool)  { return w.wrapped.CoinValue() }
func (w *AliasingWrapper) Count() (int, bool)      { return w.wrapped.Count() }
func (w *AliasingWrapper) SetCount(n int) bool     { return w.wrapped.SetCount(n) }
func (w *AliasingWrapper) Truthy() (bool, bool)    { return w.wrapped.Truthy() }
func (w *AliasingWrapper) SetTruthy(t bool) bool   { return w.wrapped.SetTruthy(t) }

func (w *AliasingWrapper) Replace(n Item) bool {
	if w.wrapped.Replace(n) {
		return true
	}
	w.wrapped = n
	return true
}

func (w *AliasingWrapper) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	if u, ok := w.wrapped.(User); ok {
		return u.Use(other, inv, ctx)
	}
	return NotApplicable, nil
}
