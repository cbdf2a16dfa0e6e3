package board

import "fmt"

// ParseMove reads coordinate notation such as "e2e4" or "a7a8q".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q is not coordinate notation", ErrIllegalMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.Promotion = Queen
		case 'r':
			m.Promotion = Rook
		case 'b':
			m.Promotion = Bishop
		case 'n':
			m.Promotion = Knight
		default:
			return Move{}, fmt.Errorf("%w: bad promotion piece in %q", ErrIllegalMove, s)
		}
	}
	return m, nil
}

// Play returns the child of p reached by m. The move must be one the
// generator produces for p.
func (p *Position) Play(m Move) (Position, error) {
	gen := *p
	gen.InitMoveGeneration()
	var c Position
	for gen.NextChild(&c) {
		if c.LastMove() == m {
			return c, nil
		}
	}
	return Position{}, fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, p.FEN())
}

// PlayLine applies a sequence of coordinate-notation moves in order.
func (p *Position) PlayLine(moves ...string) (Position, error) {
	cur := *p
	for _, s := range moves {
		m, err := ParseMove(s)
		if err != nil {
			return Position{}, err
		}
		if cur, err = cur.Play(m); err != nil {
			return Position{}, err
		}
	}
	return cur, nil
}
