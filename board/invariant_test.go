package board_test

import (
	"testing"

	"lukechampine.com/frand"

	"abchess/board"
)

// checkTransition verifies the per-ply laws between a parent and one of its
// generated children.
func checkTransition(t *testing.T, parent, child *board.Position) {
	t.Helper()
	move := child.LastMove()
	if err := child.Validate(); err != nil {
		t.Fatalf("%s after %s: %v", parent.FEN(), move, err)
	}
	pawnMove := parent.Pawns&child.From != 0
	if pawnMove || child.Capture {
		if child.HalfmoveClock != 0 {
			t.Fatalf("%s after %s: halfmove clock %d, want reset", parent.FEN(), move, child.HalfmoveClock)
		}
	} else if want := min(parent.HalfmoveClock+1, board.MaxHalfmoveClock); child.HalfmoveClock != want {
		t.Fatalf("%s after %s: halfmove clock %d, want %d", parent.FEN(), move, child.HalfmoveClock, want)
	}
	doublePush := pawnMove && (child.To == child.From<<16 || child.To == child.From>>16)
	if !doublePush && child.EnPassant != 0 {
		t.Fatalf("%s after %s: stale en passant square", parent.FEN(), move)
	}
	if child.Castling&^parent.Castling != 0 {
		t.Fatalf("%s after %s: castling right re-enabled", parent.FEN(), move)
	}
	if child.WhiteToMove == parent.WhiteToMove {
		t.Fatalf("%s after %s: side to move not toggled", parent.FEN(), move)
	}
	if child.InCheck != child.KingInCheck() {
		t.Fatalf("%s after %s: check flag %t disagrees with full scan", parent.FEN(), move, child.InCheck)
	}
	if parent.Kings&child.To != 0 {
		t.Fatalf("%s after %s: captured a king", parent.FEN(), move)
	}
}

func TestRandomWalkInvariants(t *testing.T) {
	plies := 200
	games := 40
	if testing.Short() {
		games = 8
	}
	var seed [32]byte
	copy(seed[:], "abchess invariant walk seed 0001")
	rng := frand.NewCustom(seed[:], 1024, 12)

	for _, fen := range canonicalFENs {
		for g := 0; g < games; g++ {
			p := board.MustFromFEN(fen)
			for ply := 0; ply < plies; ply++ {
				children := p.Children()
				if len(children) == 0 {
					break
				}
				for i := range children {
					checkTransition(t, &p, &children[i])
				}
				p = children[rng.Intn(len(children))]
				back, err := board.FromFEN(p.FEN())
				if err != nil {
					t.Fatalf("walked into unparsable %s: %v", p.FEN(), err)
				}
				if back.FEN() != p.FEN() {
					t.Fatalf("FEN round trip: %s vs %s", back.FEN(), p.FEN())
				}
			}
		}
	}
}

func TestRandomWalkPerftAgreesWithChildren(t *testing.T) {
	var seed [32]byte
	copy(seed[:], "abchess perft walk seed 00000002")
	rng := frand.NewCustom(seed[:], 1024, 12)
	p := board.MustFromFEN(board.FENStartPos)
	for ply := 0; ply < 60; ply++ {
		children := p.Children()
		if len(children) == 0 {
			break
		}
		if got := board.Perft(&p, 1); got != uint64(len(children)) {
			t.Fatalf("%s: perft1 %d but %d children", p.FEN(), got, len(children))
		}
		var sum uint64
		for i := range children {
			sum += board.Perft(&children[i], 1)
		}
		if got := board.Perft(&p, 2); got != sum {
			t.Fatalf("%s: perft2 %d but children sum to %d", p.FEN(), got, sum)
		}
		p = children[rng.Intn(len(children))]
	}
}
