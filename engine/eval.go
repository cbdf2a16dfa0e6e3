package engine

import (
	"math"

	"abchess/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
// Scores are from white's point of view. The mate scores sit just inside the
// infinities so that search bounds never collide with a real result.
const (
	Infinity       int32 = math.MaxInt32
	WhiteCheckmate int32 = math.MaxInt32 - 1
	Stalemate      int32 = 0
	BlackCheckmate int32 = -(math.MaxInt32 - 1)
	NegInfinity    int32 = -math.MaxInt32
)

const (
	materialScale int32 = 1_000_000
	jitterModulus       = 1997
	jitterCentre  int32 = 998
)

// Evaluate scores p statically and records the result on it. A side with no
// legal reply is mated or stalemated; otherwise the score is material plus a
// deterministic jitter well below one pawn.
func Evaluate(p *board.Position) int32 {
	var s int32
	if !p.HasLegalMove() {
		p.GameOver = true
		s = terminalScore(p)
	} else {
		s = p.Material*materialScale + int32(p.All%jitterModulus) - jitterCentre
	}
	p.Score = s
	p.ScoreDepth = 0
	return s
}

// terminalScore assumes the side to move has no legal move.
func terminalScore(p *board.Position) int32 {
	switch {
	case !p.InCheck:
		return Stalemate
	case p.WhiteToMove:
		return BlackCheckmate
	default:
		return WhiteCheckmate
	}
}

// IsMateScore reports whether s is one of the two checkmate values.
func IsMateScore(s int32) bool { return s == WhiteCheckmate || s == BlackCheckmate }
