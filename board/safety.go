package board

// ==========================
// Attack oracle
// ==========================

// firstBlocker returns the nearest occupied square from sq in direction d.
func firstBlocker(sq uint8, d Direction, occ uint64) uint64 {
	blockers := revealedCheckRay[sq][d] & occ
	if d.ascending() {
		return LowestBit(blockers)
	}
	return highestBit(blockers)
}

// sliders returns the pieces of one side that attack along lines like d.
func (p *Position) sliders(d Direction, white bool) uint64 {
	if d.Diagonal() {
		return (p.Bishops | p.Queens) & p.sideMask(white)
	}
	return (p.Rooks | p.Queens) & p.sideMask(white)
}

// IsSafe reports whether none of the given squares is attacked by the side
// opposing defenderWhite.
func (p *Position) IsSafe(squares uint64, defenderWhite bool) bool {
	enemy := p.sideMask(!defenderWhite)
	pawns := p.Pawns & enemy
	diagonal := (p.Bishops | p.Queens) & enemy
	straight := (p.Rooks | p.Queens) & enemy
	knights := p.Knights & enemy
	kings := p.Kings & enemy

	for rest := squares; rest != 0; rest &= rest - 1 {
		sq := BitIndex(LowestBit(rest))
		if pawnAttacks[side(defenderWhite)][sq]&pawns != 0 {
			return false
		}
		if diagonal != 0 {
			for _, d := range [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest} {
				if firstBlocker(sq, d, p.All)&diagonal != 0 {
					return false
				}
			}
		}
		if straight != 0 {
			for _, d := range [4]Direction{North, East, South, West} {
				if firstBlocker(sq, d, p.All)&straight != 0 {
					return false
				}
			}
		}
		if knightAttacks[sq]&knights != 0 || kingAttacks[sq]&kings != 0 {
			return false
		}
	}
	return true
}

// SafeFromRevealedCheck reports whether vacating vacatedSq leaves the king on
// kingSq free of a slider attack through that square. The position must
// already have the square empty.
func (p *Position) SafeFromRevealedCheck(kingSq, vacatedSq uint8, defenderWhite bool) bool {
	d := revealedCheckDirection[kingSq][vacatedSq]
	if d == DirNone {
		return true
	}
	return firstBlocker(kingSq, d, p.All)&p.sliders(d, !defenderWhite) == 0
}

// SafeFromDirectCheck reports whether the piece now standing on destSq does
// not itself attack the king on kingSq.
func (p *Position) SafeFromDirectCheck(kingSq, destSq uint8, defenderWhite bool) bool {
	dest := SquareBit(destSq)
	if dest&p.sideMask(!defenderWhite) == 0 {
		return true
	}
	switch route := directCheckRoute[kingSq][destSq]; route {
	case RouteNone:
		return true
	case RouteKnight:
		return dest&p.Knights == 0
	case RouteLocalStraight:
		return dest&(p.Rooks|p.Queens) == 0
	case RouteLocalDiagonal:
		if dest&(p.Bishops|p.Queens) != 0 {
			return false
		}
		return dest&p.Pawns == 0 || pawnAttacks[side(!defenderWhite)][destSq]&SquareBit(kingSq) == 0
	default:
		if longRay[kingSq][destSq]&p.All != 0 {
			return true
		}
		return dest&p.sliders(route.Direction(), !defenderWhite) == 0
	}
}

// KingInCheck runs the full attack scan on the side to move's king.
func (p *Position) KingInCheck() bool {
	return !p.IsSafe(SquareBit(p.KingSquare(p.WhiteToMove)), p.WhiteToMove)
}

// pinDimension returns the line along which the piece on b must stay to keep
// its own king covered, or DimNone if it is free to leave.
func (p *Position) pinDimension(b uint64) Dimension {
	king := p.KingSquare(p.WhiteToMove)
	d := revealedCheckDirection[king][BitIndex(b)]
	if d == DirNone {
		return DimNone
	}
	if firstBlocker(king, d, p.All&^b)&p.sliders(d, !p.WhiteToMove) == 0 {
		return DimNone
	}
	return d.Dimension()
}
