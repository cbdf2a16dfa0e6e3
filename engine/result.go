package engine

import (
	"strings"
	"time"

	"abchess/board"
)

// Result is the outcome of a search. When the search was aborted the move
// and score come from the last finished iteration and Final is false.
type Result struct {
	ID      string
	Move    board.Move
	HasMove bool
	// Score is from white's point of view.
	Score     int32
	Depth     int
	PV        []board.Move
	Nodes     uint64
	Final     bool
	Stats     Stats
	Elapsed   time.Duration
	RootMoves []RootMove
}

// RootMove summarises one root child after the last finished iteration.
type RootMove struct {
	Move     board.Move
	Score    int32
	Depth    int
	Retained uint64 // tree nodes kept below this move, the move included
}

// PVString renders the principal variation as space separated moves.
func (r Result) PVString() string {
	var sb strings.Builder
	for i, m := range r.PV {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}

// principalVariation follows the front child from first, at most limit moves.
func principalVariation(first *Node, limit int) []board.Move {
	pv := []board.Move{first.Move()}
	for n := first; len(n.Children) > 0 && len(pv) < limit; {
		n = n.Children[0]
		pv = append(pv, n.Move())
	}
	return pv
}
