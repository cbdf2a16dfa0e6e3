package board_test

import (
	"testing"

	"abchess/board"
)

type perftCase struct {
	name   string
	fen    string
	counts []uint64 // counts[d-1] is the perft count at depth d
}

var perftCases = []perftCase{
	{"initial", board.FENStartPos, []uint64{20, 400, 8902, 197281, 4865609}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		[]uint64{48, 2039, 97862, 4085603}},
	{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		[]uint64{14, 191, 2812, 43238, 674624}},
	{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		[]uint64{6, 264, 9467, 422333, 15833292}},
	{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		[]uint64{44, 1486, 62379, 2103487}},
	{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		[]uint64{46, 2079, 89890, 3894594}},
}

// shortDepth is the deepest level run under -short.
const shortDepth = 3

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p, err := board.FromFEN(tc.fen)
			if err != nil {
				t.Fatalf("FromFEN: %v", err)
			}
			for i, want := range tc.counts {
				depth := i + 1
				if depth > shortDepth && testing.Short() {
					t.Skipf("skipping depth %d in short mode", depth)
				}
				if got := board.Perft(&p, depth); got != want {
					t.Fatalf("perft depth%d: got %d want %d", depth, got, want)
				}
			}
		})
	}
}

func TestCountPositions(t *testing.T) {
	got, err := board.CountPositions(board.FENStartPos, 3)
	if err != nil {
		t.Fatalf("CountPositions: %v", err)
	}
	if got != 8902 {
		t.Fatalf("depth3: got %d want %d", got, 8902)
	}
	if _, err := board.CountPositions("8/8/8 w - - 0 1", 1); err == nil {
		t.Fatalf("malformed FEN accepted")
	}
	if got, _ := board.CountPositions(board.FENStartPos, 0); got != 1 {
		t.Fatalf("depth0: got %d want 1", got)
	}
}

func TestPerftDivide(t *testing.T) {
	p := board.MustFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	div := board.PerftDivide(&p, 2)
	if len(div) != 48 {
		t.Fatalf("divide entries: got %d want 48", len(div))
	}
	var total uint64
	for _, n := range div {
		total += n
	}
	if total != 2039 {
		t.Fatalf("divide total: got %d want 2039", total)
	}
	// Reference split from the kiwipete divide.
	for move, want := range map[string]uint64{"e1g1": 43, "e1c1": 43, "d5e6": 46, "e2a6": 36} {
		if div[move] != want {
			t.Fatalf("divide %s: got %d want %d", move, div[move], want)
		}
	}
	if p.CurrentPiece != 0 || p.MoveID != 0 {
		t.Fatalf("PerftDivide mutated the caller's cursor")
	}
}
