package item

// ReturnSignal is raised by a Shovel to unwind out of the innermost
// enclosing call-mode frame with a value (§4.7, §4.8). It is an error so
// it propagates through the ordinary Go error-return path; ProgramBlock's
// call mode is the only place that catches it, via errors.As. A
// ReturnSignal that escapes every enclosing frame surfaces as an
// uncaught error at the top level.
type ReturnSignal struct {
	Value Item
}

func (r *ReturnSignal) Error() string { return "used a shovel outside of a call" }

// Shovel always raises a ReturnSignal carrying whatever it's used with,
// regardless of the other operand's type (§4.7).
type Shovel struct{ Base }

func (s *Shovel) Name() string { return "shovel" }
func (s *Shovel) Copy() Item   { return s }
func (s *Shovel) Unwrap() Item { return s }

func (s *Shovel) Use(other Item, inv *Inventory, ctx *Context) (Outcome, error) {
	return NotApplicable, &ReturnSignal{Value: other}
}
