package board

import "fmt"

// mustValidateChild panics when a generated child breaks an invariant or
// disagrees with a full attack scan. Only reached in abdebug builds.
func (p *Position) mustValidateChild(c *Position) {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("%v\nparent %s\nchild %s (%s)", err, p.FEN(), c.FEN(), c.LastMove()))
	}
	if c.InCheck != c.KingInCheck() {
		panic(fmt.Sprintf("%v: check flag %t after %s from %s",
			ErrInvariantViolated, c.InCheck, c.LastMove(), p.FEN()))
	}
	if !c.IsSafe(SquareBit(c.KingSquare(!c.WhiteToMove)), !c.WhiteToMove) {
		panic(fmt.Sprintf("%v: %s leaves the mover in check from %s",
			ErrInvariantViolated, c.LastMove(), p.FEN()))
	}
}
