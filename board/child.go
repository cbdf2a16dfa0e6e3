package board

// Home squares used by castling.
const (
	sqH1 uint64 = 1 << 0
	sqE1 uint64 = 1 << 3
	sqA1 uint64 = 1 << 7
	sqH8 uint64 = 1 << 56
	sqE8 uint64 = 1 << 59
	sqA8 uint64 = 1 << 63
)

// castleLoss maps each right to the squares whose touch revokes it.
var castleLoss = [4]struct {
	right CastlingRights
	mask  uint64
}{
	{CastleWhiteShort, sqE1 | sqH1},
	{CastleWhiteLong, sqE1 | sqA1},
	{CastleBlackShort, sqE8 | sqH8},
	{CastleBlackLong, sqE8 | sqA8},
}

// initChild copies the permanent fields of parent into c and zeroes the
// scratch fields. En passant never survives a move.
func (c *Position) initChild(parent *Position) {
	*c = Position{
		All:            parent.All,
		White:          parent.White,
		Pawns:          parent.Pawns,
		Knights:        parent.Knights,
		Bishops:        parent.Bishops,
		Rooks:          parent.Rooks,
		Queens:         parent.Queens,
		Kings:          parent.Kings,
		WhiteToMove:    parent.WhiteToMove,
		Castling:       parent.Castling,
		HalfmoveClock:  parent.HalfmoveClock,
		FullmoveNumber: parent.FullmoveNumber,
		WhiteKing:      parent.WhiteKing,
		BlackKing:      parent.BlackKing,
		Material:       parent.Material,
	}
}

// deriveChild writes into c the position reached by moving the parent's
// current piece from one square to another. promo is NoPiece unless a pawn
// reaches the last rank. Legality is the caller's concern.
func (p *Position) deriveChild(c *Position, from, to uint64, promo PieceType) {
	c.initChild(p)
	white := p.WhiteToMove
	mover := p.CurrentType

	if to&p.All != 0 {
		captured := p.pieceTypeAt(to)
		c.remove(to)
		c.gain(white, captured.Value())
		c.Capture = true
	}

	c.remove(from)
	placed := mover
	if promo != NoPiece {
		placed = promo
		c.gain(white, promo.Value()-Pawn.Value())
	}
	c.put(placed, white, to)

	switch mover {
	case Pawn:
		switch {
		case to == p.EnPassant:
			victim := to >> 8
			if !white {
				victim = to << 8
			}
			c.remove(victim)
			c.gain(white, Pawn.Value())
			c.Capture = true
		case white && to == from<<16:
			c.EnPassant = from << 8
		case !white && to == from>>16:
			c.EnPassant = from >> 8
		}
	case King:
		if white {
			c.WhiteKing = BitIndex(to)
		} else {
			c.BlackKing = BitIndex(to)
		}
		switch from {
		case to << 2: // kingside: rook jumps from the corner next to the king
			c.remove(to >> 1)
			c.put(Rook, white, to<<1)
			c.KingCastled = true
		case to >> 2:
			c.remove(to << 2)
			c.put(Rook, white, to>>1)
			c.KingCastled = true
		}
	}

	touched := from | to
	for _, cl := range castleLoss {
		if touched&cl.mask != 0 {
			c.Castling &^= cl.right
		}
	}

	if mover == Pawn || c.Capture {
		c.HalfmoveClock = 0
	} else if c.HalfmoveClock < MaxHalfmoveClock {
		c.HalfmoveClock++
	}
	if !white && c.FullmoveNumber < MaxFullmoveNumber {
		c.FullmoveNumber++
	}
	c.WhiteToMove = !white

	c.From, c.To = from, to
	c.FromSq, c.ToSq = BitIndex(from), BitIndex(to)
	c.Promotion = promo
}

// gain credits material to one side.
func (c *Position) gain(white bool, v int32) {
	if white {
		c.Material += v
	} else {
		c.Material -= v
	}
}
