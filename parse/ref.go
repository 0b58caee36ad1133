package parse

import (
	"github.com/dhamidi/rewind/text"
)

// Ref is a deferred binding cell for grammars whose rules refer to each
// other before all of them exist. Declare the cell first, wire it into the
// rules that need it, then Bind it exactly once to the finished rule.
//
// Every Parse through a Ref charges one level of the cursor's recursion
// budget (see text.WithMaxDepth). When the budget is spent the parse fails
// with a NoMatch wrapping ErrTooDeep instead of overflowing the stack.
// Cursors without a budget keep the original unbounded behavior.
type Ref struct {
	step Parser
}

// Bind fixes the cell's target. Binding twice, or binding nil, panics:
// both are construction-time mistakes, not parse failures.
func (r *Ref) Bind(p Parser) {
	if p == nil {
		panic("parse: Ref bound to nil")
	}
	if r.step != nil {
		panic("parse: Ref already bound")
	}
	r.step = p
}

func (r *Ref) Parse(cur *text.Cursor) (Value, error) {
	if r.step == nil {
		panic("parse: Ref not bound")
	}
	if !cur.Descend() {
		return nil, &NoMatch{Pos: cur.Pos(), Err: ErrTooDeep}
	}
	defer cur.Ascend()
	return r.step.Parse(cur)
}
