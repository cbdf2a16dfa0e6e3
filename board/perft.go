package board

// Perft counts the leaf positions reachable from p in exactly depth plies.
// The caller's position is not modified.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	node := *p
	return perft(&node, depth)
}

func perft(p *Position, depth int) uint64 {
	p.InitMoveGeneration()
	var child Position
	var nodes uint64
	if depth == 1 {
		for p.NextChild(&child) {
			nodes++
		}
		return nodes
	}
	for p.NextChild(&child) {
		nodes += perft(&child, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal move of p, keyed by
// the move in coordinate notation.
func PerftDivide(p *Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, c := range p.Children() {
		c := c
		out[c.LastMove().String()] = Perft(&c, depth-1)
	}
	return out
}

// CountPositions parses fen and returns its perft count at depth.
func CountPositions(fen string, depth int) (uint64, error) {
	p, err := FromFEN(fen)
	if err != nil {
		return 0, err
	}
	return Perft(&p, depth), nil
}
