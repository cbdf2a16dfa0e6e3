package board_test

import (
	"testing"

	"abchess/board"
)

func sq(t *testing.T, name string) uint8 {
	t.Helper()
	s, err := board.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%s): %v", name, err)
	}
	return s
}

func TestIsSafeAttackers(t *testing.T) {
	cases := []struct {
		name   string
		fen    string
		square string
		white  bool
		safe   bool
	}{
		{"rook on file", "4r2k/8/8/8/8/8/8/4K3 w - - 0 1", "e1", true, false},
		{"rook blocked", "4r2k/8/8/8/4P3/8/8/4K3 w - - 0 1", "e1", true, true},
		{"bishop diagonal", "7k/8/8/8/1b6/8/8/4K3 w - - 0 1", "e1", true, false},
		{"bishop blocked", "7k/8/8/8/1b6/8/3P4/4K3 w - - 0 1", "e1", true, true},
		{"queen both ways", "7k/8/8/8/8/8/8/q3K3 w - - 0 1", "e1", true, false},
		{"black pawn", "7k/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", true, false},
		{"pawn does not attack forward", "7k/8/8/4p3/4P3/8/8/4K3 w - - 0 1", "e4", true, true},
		{"white pawn", "7k/8/8/3p4/4P3/8/8/4K3 b - - 0 1", "d5", false, false},
		{"knight", "7k/8/8/8/8/5n2/8/4K3 w - - 0 1", "e1", true, false},
		{"king", "8/8/8/8/8/8/3k4/4K3 w - - 0 1", "e1", true, false},
		{"quiet", "7k/8/8/8/8/8/8/4K3 w - - 0 1", "e1", true, true},
	}
	for _, tc := range cases {
		p := board.MustFromFEN(tc.fen)
		if got := p.IsSafe(board.SquareBit(sq(t, tc.square)), tc.white); got != tc.safe {
			t.Fatalf("%s: IsSafe(%s) got %t want %t", tc.name, tc.square, got, tc.safe)
		}
	}
}

func TestIsSafeSquareSet(t *testing.T) {
	// The g2 rook only sees g1 out of the kingside castling squares.
	p := board.MustFromFEN("7k/8/8/8/8/8/6r1/4K2R w K - 0 1")
	path := board.SquareBit(sq(t, "e1")) | board.SquareBit(sq(t, "f1")) | board.SquareBit(sq(t, "g1"))
	if p.IsSafe(path, true) {
		t.Fatalf("castling path reported safe")
	}
	if !p.IsSafe(path&^board.SquareBit(sq(t, "g1")), true) {
		t.Fatalf("e1/f1 reported attacked")
	}
}

func TestSafeFromRevealedCheck(t *testing.T) {
	// The e4 square is empty: the rook on e8 sees the king through it.
	p := board.MustFromFEN("4r2k/8/8/8/8/8/8/4K3 w - - 0 1")
	if p.SafeFromRevealedCheck(sq(t, "e1"), sq(t, "e4"), true) {
		t.Fatalf("vacated e4 should reveal the e8 rook")
	}
	if !p.SafeFromRevealedCheck(sq(t, "e1"), sq(t, "d2"), true) {
		t.Fatalf("d2 is not on a line with an attacker")
	}
	if !p.SafeFromRevealedCheck(sq(t, "e1"), sq(t, "c2"), true) {
		t.Fatalf("c2 is not on a line with the king")
	}
	// A bishop on the file never reveals a check.
	b := board.MustFromFEN("4b2k/8/8/8/8/8/8/4K3 w - - 0 1")
	if !b.SafeFromRevealedCheck(sq(t, "e1"), sq(t, "e4"), true) {
		t.Fatalf("bishop on the e-file cannot give check along it")
	}
	// Descending rays must find the nearest blocker, not the farthest.
	d := board.MustFromFEN("4k3/8/8/8/8/4P3/8/4r2K b - - 0 1")
	if !d.SafeFromRevealedCheck(sq(t, "e8"), sq(t, "e5"), false) {
		t.Fatalf("own rook behind a pawn reported as attacker")
	}
	w := board.MustFromFEN("4k3/8/8/8/8/4p3/8/4R2K b - - 0 1")
	if !w.SafeFromRevealedCheck(sq(t, "e8"), sq(t, "e5"), false) {
		t.Fatalf("blocked rook reported as attacker")
	}
	x := board.MustFromFEN("4k3/8/8/8/8/8/8/4R2K b - - 0 1")
	if x.SafeFromRevealedCheck(sq(t, "e8"), sq(t, "e5"), false) {
		t.Fatalf("open file rook not detected")
	}
}

func TestSafeFromDirectCheck(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		king string
		dest string
		safe bool
	}{
		{"knight", "4k3/8/5N2/8/8/8/8/4K3 b - - 0 1", "e8", "f6", false},
		{"adjacent rook", "4k3/4R3/8/8/8/8/8/4K3 b - - 0 1", "e8", "e7", false},
		{"adjacent bishop", "4k3/3B4/8/8/8/8/8/4K3 b - - 0 1", "e8", "d7", false},
		{"adjacent bishop straight", "4k3/4B3/8/8/8/8/8/4K3 b - - 0 1", "e8", "e7", true},
		{"pawn below", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", "e8", "d7", false},
		{"pawn above", "8/8/8/8/8/8/3p4/4K2k w - - 0 1", "e1", "d2", false},
		{"wrong way pawn", "8/8/8/8/3P4/4k3/8/4K3 b - - 0 1", "e3", "d4", true},
		{"long rook", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", "e8", "e1", false},
		{"long rook blocked", "4k3/8/4p3/8/8/8/8/4R1K1 b - - 0 1", "e8", "e1", true},
		{"long bishop", "4k3/8/8/1B6/8/8/8/6K1 b - - 0 1", "e8", "b5", false},
		{"long bishop on rank", "B3k3/8/8/8/8/8/8/4K3 b - - 0 1", "e8", "a8", true},
		{"own piece", "4k3/4r3/8/8/8/8/8/4K3 b - - 0 1", "e8", "e7", true},
		{"unrelated square", "4k3/8/8/8/8/8/8/R3K3 b - - 0 1", "e8", "a1", true},
	}
	for _, tc := range cases {
		p := board.MustFromFEN(tc.fen)
		_, white := p.PieceAt(sq(t, tc.king))
		if got := p.SafeFromDirectCheck(sq(t, tc.king), sq(t, tc.dest), white); got != tc.safe {
			t.Fatalf("%s: got %t want %t", tc.name, got, tc.safe)
		}
	}
}

func TestKingInCheck(t *testing.T) {
	p := board.MustFromFEN("r1bqkbnr/pppp1Qpp/8/4p3/2BnP3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 1")
	if !p.KingInCheck() || !p.InCheck {
		t.Fatalf("black king should be in check from f7")
	}
	q := board.MustFromFEN(board.FENStartPos)
	if q.KingInCheck() {
		t.Fatalf("start position in check")
	}
}
