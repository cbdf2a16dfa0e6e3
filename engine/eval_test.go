package engine_test

import (
	"testing"

	"abchess/board"
	"abchess/engine"
)

func TestEvaluateTerminalPositions(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want int32
	}{
		{"stalemate", "8/8/8/8/8/3K4/3B4/3k4 b - - 0 1", engine.Stalemate},
		{"white mates", "r1bqkbnr/pppp1Qpp/8/4p3/2BnP3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 1", engine.WhiteCheckmate},
		{"black mates", "8/7P/5n2/1P6/2P2p2/4k3/8/r3K3 w - - 0 1", engine.BlackCheckmate},
	}
	for _, tc := range cases {
		p := board.MustFromFEN(tc.fen)
		if got := engine.Evaluate(&p); got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.name, got, tc.want)
		}
		if !p.GameOver {
			t.Fatalf("%s: GameOver not set", tc.name)
		}
		if p.Score != tc.want || p.ScoreDepth != 0 {
			t.Fatalf("%s: recorded score %d depth %d", tc.name, p.Score, p.ScoreDepth)
		}
	}
}

func TestEvaluateMaterialDominatesJitter(t *testing.T) {
	// White is a queen up; black is a rook up.
	up := board.MustFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	down := board.MustFromFEN("3rk3/8/8/8/8/8/8/4K3 w - - 0 1")
	if got := engine.Evaluate(&up); got < 9*1_000_000-998 || got > 9*1_000_000+998 {
		t.Fatalf("queen up: got %d", got)
	}
	if got := engine.Evaluate(&down); got > -5*1_000_000+998 || got < -5*1_000_000-998 {
		t.Fatalf("rook down: got %d", got)
	}
	if up.GameOver || down.GameOver {
		t.Fatalf("live positions flagged game over")
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	p := board.MustFromFEN(board.FENStartPos)
	q := p
	a, b := engine.Evaluate(&p), engine.Evaluate(&q)
	if a != b {
		t.Fatalf("evaluate: got %d and %d", a, b)
	}
	if engine.IsMateScore(a) {
		t.Fatalf("start position scored as mate: %d", a)
	}
}

func TestScoreOrdering(t *testing.T) {
	if !(engine.Infinity > engine.WhiteCheckmate && engine.WhiteCheckmate > engine.Stalemate &&
		engine.Stalemate > engine.BlackCheckmate && engine.BlackCheckmate > engine.NegInfinity) {
		t.Fatalf("score constants out of order")
	}
	if !engine.IsMateScore(engine.BlackCheckmate) || engine.IsMateScore(engine.Stalemate) {
		t.Fatalf("IsMateScore misclassifies")
	}
}
