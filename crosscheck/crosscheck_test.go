package crosscheck_test

import (
	"testing"

	"abchess/board"
	"abchess/crosscheck"
)

var fixtures = []struct {
	name  string
	fen   string
	depth int
}{
	{"initial", board.FENStartPos, 3},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
	{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4},
	{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3},
	{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2},
	{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 2},
}

func TestGeneratorsAgree(t *testing.T) {
	for _, tc := range fixtures {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			depth := tc.depth
			if testing.Short() && depth > 2 {
				depth = 2
			}
			d, err := crosscheck.Compare(tc.fen, depth)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if d != nil {
				t.Fatalf("divergence %s", d)
			}
		})
	}
}

func TestOraclePerftMatchesBoard(t *testing.T) {
	for _, tc := range fixtures {
		p := board.MustFromFEN(tc.fen)
		want := board.Perft(&p, 2)
		if got := crosscheck.Perft(tc.fen, 2); got != want {
			t.Fatalf("%s perft 2: oracle %d board %d", tc.name, got, want)
		}
	}
}

func TestCompareRejectsMalformedFEN(t *testing.T) {
	if _, err := crosscheck.Compare("not a fen", 1); err == nil {
		t.Fatalf("Compare accepted a malformed FEN")
	}
}
