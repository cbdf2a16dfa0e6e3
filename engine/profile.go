package engine

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"abchess/board"
)

// WriteDivide prints the perft leaf count under every root move of p, sorted
// by move, and returns the total.
func WriteDivide(w io.Writer, p *board.Position, depth int) uint64 {
	div := board.PerftDivide(p, depth)
	moves := maps.Keys(div)
	slices.Sort(moves)
	var total uint64
	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, div[m])
		total += div[m]
	}
	fmt.Fprintf(w, "Total: %d\n", total)
	return total
}

// WriteTree prints the retained search tree size under every root move of
// res, sorted by move, and returns the total node count including the root.
func WriteTree(w io.Writer, res Result) uint64 {
	byMove := make(map[string]RootMove, len(res.RootMoves))
	for _, rm := range res.RootMoves {
		byMove[rm.Move.String()] = rm
	}
	moves := maps.Keys(byMove)
	slices.Sort(moves)
	total := uint64(1)
	for _, m := range moves {
		rm := byMove[m]
		fmt.Fprintf(w, "%s: %d (score %d, depth %d)\n", m, rm.Retained, rm.Score, rm.Depth)
		total += rm.Retained
	}
	fmt.Fprintf(w, "Retained: %d\n", total)
	return total
}
