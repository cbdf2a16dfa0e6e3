package board

// Cursor states. Each piece walks its MoveID through groups of ten; MoveID 0
// means the piece has not been started yet.
const (
	movePawnPush    = 10
	movePawnDouble  = 20
	movePawnWest    = 30
	movePawnEast    = 40
	movePawnEP      = 50
	movePawnDone    = 60
	movePromoPush   = 70
	movePromoWest   = 80
	movePromoEast   = 90
	movePromoDone   = 100
	moveFirst       = 10
	moveCastleShort = 18
	moveCastleLong  = 19
	moveKingDone    = 20
)

// legality modes for tryChild.
const (
	checkPinned  = iota // pin filter already applied; full scan only when in check
	checkKing           // full scan on the moved king, fast check flag
	checkSpecial        // full scan for both legality and the child's check flag
)

var (
	bishopRays = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	rookRays   = []Direction{North, East, South, West}
	queenRays  = compass[:]
)

// castling rules per side, short then long.
var castlePaths = [2][2]struct {
	right CastlingRights
	empty uint64
	safe  uint64
	dest  uint64
}{
	{
		{CastleWhiteShort, 0x06, 0x0E, 0x02},
		{CastleWhiteLong, 0x70, 0x38, 0x20},
	},
	{
		{CastleBlackShort, 0x06 << 56, 0x0E << 56, 0x02 << 56},
		{CastleBlackLong, 0x70 << 56, 0x38 << 56, 0x20 << 56},
	},
}

var (
	rank2 uint64 = 0xFF << 8
	rank7 uint64 = 0xFF << 48
)

// InitMoveGeneration resets the generator cursor to the mover's first piece.
func (p *Position) InitMoveGeneration() {
	p.CurrentPiece = LowestBit(p.mine())
	p.CurrentType = NoPiece
	p.MoveID = 0
	p.PinDimension = DimNone
}

// NextChild writes the next legal child of p into child and reports whether
// one was produced. Children come out in a fixed order: pieces by ascending
// square, then each piece's own move order. Once it returns false it keeps
// returning false until InitMoveGeneration is called again.
func (p *Position) NextChild(child *Position) bool {
	for p.CurrentPiece != 0 {
		if p.MoveID == 0 {
			p.startPiece()
		}
		var ok bool
		switch p.CurrentType {
		case Pawn:
			ok = p.nextPawnChild(child)
		case Knight:
			ok = p.nextKnightChild(child)
		case Bishop:
			ok = p.nextSliderChild(child, bishopRays)
		case Rook:
			ok = p.nextSliderChild(child, rookRays)
		case Queen:
			ok = p.nextSliderChild(child, queenRays)
		case King:
			ok = p.nextKingChild(child)
		}
		if ok {
			if debugChecks {
				p.mustValidateChild(child)
			}
			return true
		}
		p.CurrentPiece = NextLowestBit(p.mine(), p.CurrentPiece)
		p.MoveID = 0
	}
	return false
}

func (p *Position) startPiece() {
	p.CurrentType = p.pieceTypeAt(p.CurrentPiece)
	p.PinDimension = DimNone
	if p.CurrentType != King {
		p.PinDimension = p.pinDimension(p.CurrentPiece)
	}
	p.MoveID = moveFirst
	if p.CurrentType == Pawn && p.CurrentPiece&p.promotionRank() != 0 {
		p.MoveID = movePromoPush
	}
}

// promotionRank is the rank a pawn of the side to move promotes from.
func (p *Position) promotionRank() uint64 {
	if p.WhiteToMove {
		return rank7
	}
	return rank2
}

func (p *Position) pinAllows(d Dimension) bool {
	return p.PinDimension == DimNone || p.PinDimension == d
}

// tryChild derives the child for a move of the current piece and applies the
// legality test for mode. It also fills in the child's InCheck flag.
func (p *Position) tryChild(c *Position, to uint64, promo PieceType, mode int) bool {
	p.deriveChild(c, p.CurrentPiece, to, promo)
	mover := p.WhiteToMove
	// Out of check, pinAllows has already done the revealed-check test for
	// a non-king piece.
	if mode != checkPinned || p.InCheck {
		if !c.IsSafe(SquareBit(c.KingSquare(mover)), mover) {
			return false
		}
	}
	opp := c.KingSquare(!mover)
	if mode == checkSpecial {
		c.InCheck = !c.IsSafe(SquareBit(opp), !mover)
	} else {
		c.InCheck = !c.SafeFromDirectCheck(opp, c.ToSq, !mover) ||
			!c.SafeFromRevealedCheck(opp, c.FromSq, !mover)
	}
	return true
}

func (p *Position) nextPawnChild(c *Position) bool {
	sq := BitIndex(p.CurrentPiece)
	fwd, west, east := North, NorthWest, NorthEast
	start := rank2
	if !p.WhiteToMove {
		fwd, west, east = South, SouthWest, SouthEast
		start = rank7
	}
	enemy := p.theirs()

	for {
		switch id := p.MoveID; {
		case id == movePawnPush:
			p.MoveID = movePawnDouble
			t := neighbour[sq][fwd]
			if t&p.All == 0 && p.pinAllows(DimNS) && p.tryChild(c, t, NoPiece, checkPinned) {
				return true
			}
		case id == movePawnDouble:
			p.MoveID = movePawnWest
			if p.CurrentPiece&start == 0 || !p.pinAllows(DimNS) {
				continue
			}
			t1 := neighbour[sq][fwd]
			t2 := raySquares[sq][fwd][1]
			if (t1|t2)&p.All == 0 && p.tryChild(c, t2, NoPiece, checkPinned) {
				return true
			}
		case id == movePawnWest:
			p.MoveID = movePawnEast
			t := neighbour[sq][west]
			if t&enemy != 0 && p.pinAllows(west.Dimension()) && p.tryChild(c, t, NoPiece, checkPinned) {
				return true
			}
		case id == movePawnEast:
			p.MoveID = movePawnEP
			t := neighbour[sq][east]
			if t&enemy != 0 && p.pinAllows(east.Dimension()) && p.tryChild(c, t, NoPiece, checkPinned) {
				return true
			}
		case id == movePawnEP:
			p.MoveID = movePawnDone
			if p.EnPassant == 0 {
				continue
			}
			for _, d := range [2]Direction{west, east} {
				if neighbour[sq][d] == p.EnPassant && p.pinAllows(d.Dimension()) &&
					p.tryChild(c, p.EnPassant, NoPiece, checkSpecial) {
					return true
				}
			}
		case id >= movePromoPush && id < movePromoPush+4:
			t := neighbour[sq][fwd]
			if t&p.All != 0 || !p.pinAllows(DimNS) {
				p.MoveID = movePromoWest
				continue
			}
			if p.nextPromotion(c, t, movePromoPush, movePromoWest) {
				return true
			}
		case id >= movePromoWest && id < movePromoWest+4:
			t := neighbour[sq][west]
			if t&enemy == 0 || !p.pinAllows(west.Dimension()) {
				p.MoveID = movePromoEast
				continue
			}
			if p.nextPromotion(c, t, movePromoWest, movePromoEast) {
				return true
			}
		case id >= movePromoEast && id < movePromoEast+4:
			t := neighbour[sq][east]
			if t&enemy == 0 || !p.pinAllows(east.Dimension()) {
				p.MoveID = movePromoDone
				continue
			}
			if p.nextPromotion(c, t, movePromoEast, movePromoDone) {
				return true
			}
		default:
			return false
		}
	}
}

// nextPromotion emits the promotion selected by MoveID within the group that
// starts at base, then advances the cursor.
func (p *Position) nextPromotion(c *Position, to uint64, base, next uint8) bool {
	promo := promotionOrder[p.MoveID-base]
	p.MoveID++
	if p.MoveID == base+4 {
		p.MoveID = next
	}
	return p.tryChild(c, to, promo, checkPinned)
}

func (p *Position) nextKnightChild(c *Position) bool {
	// A pinned knight can never stay on its line.
	if p.PinDimension != DimNone {
		return false
	}
	sq := BitIndex(p.CurrentPiece)
	own := p.mine()
	for p.MoveID >= moveFirst && p.MoveID < moveFirst+8 {
		t := knightTargets[sq][p.MoveID-moveFirst]
		p.MoveID++
		if t == 0 || t&own != 0 {
			continue
		}
		if p.tryChild(c, t, NoPiece, checkPinned) {
			return true
		}
	}
	return false
}

// nextSliderChild walks rays in order; MoveID is 10*(ray+1)+step.
func (p *Position) nextSliderChild(c *Position, rays []Direction) bool {
	sq := BitIndex(p.CurrentPiece)
	own := p.mine()
	for {
		ray := int(p.MoveID/10) - 1
		if ray >= len(rays) {
			return false
		}
		d := rays[ray]
		nextRay := uint8(ray+2) * 10
		if !p.pinAllows(d.Dimension()) {
			p.MoveID = nextRay
			continue
		}
		t := raySquares[sq][d][p.MoveID%10]
		if t == 0 || t&own != 0 {
			p.MoveID = nextRay
			continue
		}
		if t&p.All != 0 {
			p.MoveID = nextRay
		} else {
			p.MoveID++
		}
		if p.tryChild(c, t, NoPiece, checkPinned) {
			return true
		}
	}
}

func (p *Position) nextKingChild(c *Position) bool {
	sq := BitIndex(p.CurrentPiece)
	own := p.mine()
	for {
		switch id := p.MoveID; {
		case id >= moveFirst && id < moveFirst+8:
			t := neighbour[sq][compass[id-moveFirst]]
			p.MoveID++
			if t == 0 || t&own != 0 {
				continue
			}
			if p.tryChild(c, t, NoPiece, checkKing) {
				return true
			}
		case id == moveCastleShort:
			p.MoveID = moveCastleLong
			if p.canCastle(0) && p.tryChild(c, castlePaths[side(p.WhiteToMove)][0].dest, NoPiece, checkSpecial) {
				return true
			}
		case id == moveCastleLong:
			p.MoveID = moveKingDone
			if p.canCastle(1) && p.tryChild(c, castlePaths[side(p.WhiteToMove)][1].dest, NoPiece, checkSpecial) {
				return true
			}
		default:
			return false
		}
	}
}

// canCastle checks rights, empty path and that the king neither starts, passes
// nor lands on an attacked square.
func (p *Position) canCastle(wing int) bool {
	path := castlePaths[side(p.WhiteToMove)][wing]
	if p.Castling&path.right == 0 || p.All&path.empty != 0 || p.InCheck {
		return false
	}
	return p.IsSafe(path.safe, p.WhiteToMove)
}

// ==========================
// Collectors
// ==========================

// Children returns every legal child of p in generation order. p itself is
// not modified.
func (p *Position) Children() []Position {
	gen := *p
	gen.InitMoveGeneration()
	var out []Position
	var c Position
	for gen.NextChild(&c) {
		out = append(out, c)
	}
	return out
}

// LegalMoves returns the moves leading to Children, in the same order.
func (p *Position) LegalMoves() []Move {
	children := p.Children()
	moves := make([]Move, len(children))
	for i := range children {
		moves[i] = children[i].LastMove()
	}
	return moves
}

// HasLegalMove reports whether the side to move has any legal move.
func (p *Position) HasLegalMove() bool {
	gen := *p
	gen.InitMoveGeneration()
	var c Position
	return gen.NextChild(&c)
}
