// Package board holds the bitboard position, its legal move generator and
// the FEN codec.
package board

import (
	"math"
	"math/bits"
)

// Largest move counters a FEN may carry.
const (
	MaxHalfmoveClock  = 255
	MaxFullmoveNumber = math.MaxUint32
)

// Position is a complete chess position together with the cursor state of its
// own move generator. It holds no pointers and is copied by assignment.
//
// Square 1 is h1 and square 64 is a8; bit k of every occupancy map stands for
// square k+1. Black pieces are All &^ White.
type Position struct {
	All     uint64
	White   uint64
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64

	WhiteToMove    bool
	Castling       CastlingRights
	EnPassant      uint64
	// Both counters stop at their FEN limits, MaxHalfmoveClock and
	// MaxFullmoveNumber.
	HalfmoveClock  uint16
	FullmoveNumber uint32
	WhiteKing      uint8
	BlackKing      uint8
	// Material is white minus black in pawn units.
	Material int32

	// Scratch. From/To describe the move that produced this position, the rest
	// is the generator cursor over this position's own children.
	From         uint64
	To           uint64
	FromSq       uint8
	ToSq         uint8
	CurrentPiece uint64
	CurrentType  PieceType
	MoveID       uint8
	PinDimension Dimension
	Capture      bool
	InCheck      bool
	Promotion    PieceType
	KingCastled  bool
	GameOver     bool

	Score      int32
	ScoreDepth uint8
}

// Black returns the black occupancy map.
func (p *Position) Black() uint64 { return p.All &^ p.White }

// Valid reports whether the position has a king on each side. A position
// zeroed by a failed SetFEN is not valid.
func (p *Position) Valid() bool {
	return p.Kings&p.White != 0 && p.Kings&^p.White != 0
}

// sideMask returns the occupancy of one side.
func (p *Position) sideMask(white bool) uint64 {
	if white {
		return p.White
	}
	return p.All &^ p.White
}

func (p *Position) mine() uint64   { return p.sideMask(p.WhiteToMove) }
func (p *Position) theirs() uint64 { return p.sideMask(!p.WhiteToMove) }

// KingSquare returns the cached king square of one side.
func (p *Position) KingSquare(white bool) uint8 {
	if white {
		return p.WhiteKing
	}
	return p.BlackKing
}

// PieceAt returns the piece type on sq and whether it is white.
func (p *Position) PieceAt(sq uint8) (PieceType, bool) {
	b := SquareBit(sq)
	return p.pieceTypeAt(b), p.White&b != 0
}

func (p *Position) pieceTypeAt(b uint64) PieceType {
	switch {
	case p.All&b == 0:
		return NoPiece
	case p.Pawns&b != 0:
		return Pawn
	case p.Knights&b != 0:
		return Knight
	case p.Bishops&b != 0:
		return Bishop
	case p.Rooks&b != 0:
		return Rook
	case p.Queens&b != 0:
		return Queen
	case p.Kings&b != 0:
		return King
	}
	return NoPiece
}

// pieces returns the class bitboard for pt.
func (p *Position) pieces(pt PieceType) *uint64 {
	switch pt {
	case Pawn:
		return &p.Pawns
	case Knight:
		return &p.Knights
	case Bishop:
		return &p.Bishops
	case Rook:
		return &p.Rooks
	case Queen:
		return &p.Queens
	case King:
		return &p.Kings
	}
	return nil
}

// put places a piece on an empty square.
func (p *Position) put(pt PieceType, white bool, b uint64) {
	*p.pieces(pt) |= b
	p.All |= b
	if white {
		p.White |= b
	}
}

// remove clears whatever stands on b.
func (p *Position) remove(b uint64) {
	p.Pawns &^= b
	p.Knights &^= b
	p.Bishops &^= b
	p.Rooks &^= b
	p.Queens &^= b
	p.Kings &^= b
	p.All &^= b
	p.White &^= b
}

// countMaterial sums material from the bitboards.
func (p *Position) countMaterial() int32 {
	var m int32
	black := p.All &^ p.White
	for pt := Pawn; pt <= Queen; pt++ {
		bb := *p.pieces(pt)
		m += pt.Value() * int32(bits.OnesCount64(bb&p.White)-bits.OnesCount64(bb&black))
	}
	return m
}

// Move identifies a child by its origin, destination and promotion piece.
type Move struct {
	From      uint8
	To        uint8
	Promotion PieceType
}

// String renders the move in coordinate notation such as "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.From == 0 || m.To == 0 {
		return "0000"
	}
	s := SquareName(m.From) + SquareName(m.To)
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter())
	}
	return s
}

// LastMove returns the move that produced p from its parent.
func (p *Position) LastMove() Move {
	return Move{From: p.FromSq, To: p.ToSq, Promotion: p.Promotion}
}
