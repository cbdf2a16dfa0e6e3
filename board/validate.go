package board

import (
	"fmt"
	"math/bits"
)

func violated(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolated, fmt.Sprintf(format, args...))
}

// Validate checks the structural invariants of the position: the occupancy
// partition, one king per side on its cached square, material bookkeeping,
// castling rights backed by home pieces and a plausible en passant square.
func (p *Position) Validate() error {
	if p.White&^p.All != 0 {
		return violated("white pieces outside the occupancy map")
	}
	classes := [6]uint64{p.Pawns, p.Knights, p.Bishops, p.Rooks, p.Queens, p.Kings}
	var union uint64
	count := 0
	for _, bb := range classes {
		union |= bb
		count += bits.OnesCount64(bb)
	}
	if union != p.All || count != bits.OnesCount64(p.All) {
		return violated("piece classes do not partition the occupancy map")
	}

	black := p.All &^ p.White
	if bits.OnesCount64(p.Kings&p.White) != 1 || bits.OnesCount64(p.Kings&black) != 1 {
		return violated("each side needs exactly one king")
	}
	if p.WhiteKing == 0 || p.WhiteKing > 64 || p.Kings&p.White != SquareBit(p.WhiteKing) {
		return violated("white king square %d is stale", p.WhiteKing)
	}
	if p.BlackKing == 0 || p.BlackKing > 64 || p.Kings&black != SquareBit(p.BlackKing) {
		return violated("black king square %d is stale", p.BlackKing)
	}

	if m := p.countMaterial(); m != p.Material {
		return violated("material %d does not match pieces (%d)", p.Material, m)
	}

	homes := [4]struct {
		right      CastlingRights
		king, rook uint64
		white      bool
	}{
		{CastleWhiteShort, sqE1, sqH1, true},
		{CastleWhiteLong, sqE1, sqA1, true},
		{CastleBlackShort, sqE8, sqH8, false},
		{CastleBlackLong, sqE8, sqA8, false},
	}
	for _, h := range homes {
		if p.Castling&h.right == 0 {
			continue
		}
		own := p.sideMask(h.white)
		if p.Kings&own&h.king == 0 || p.Rooks&own&h.rook == 0 {
			return violated("castling right %04b without king and rook at home", h.right)
		}
	}

	if p.EnPassant != 0 {
		if bits.OnesCount64(p.EnPassant) != 1 {
			return violated("en passant map has %d bits", bits.OnesCount64(p.EnPassant))
		}
		// The pawn that just moved two squares sits one rank beyond the
		// en passant square, seen from the side that moved.
		var rank int
		var pawn, origin uint64
		if p.WhiteToMove {
			rank, pawn, origin = 5, p.EnPassant>>8, p.EnPassant<<8
		} else {
			rank, pawn, origin = 2, p.EnPassant<<8, p.EnPassant>>8
		}
		if squareRank(BitIndex(p.EnPassant)) != rank {
			return violated("en passant square %s on the wrong rank", SquareName(BitIndex(p.EnPassant)))
		}
		if p.Pawns&p.sideMask(!p.WhiteToMove)&pawn == 0 || p.All&(p.EnPassant|origin) != 0 {
			return violated("en passant square %s without a double-pushed pawn", SquareName(BitIndex(p.EnPassant)))
		}
	}
	return nil
}
