package board

// All tables are indexed by square number 1..64; index 0 is unused.
var (
	knightAttacks [65]uint64
	kingAttacks   [65]uint64
	// pawnAttacks[side][sq] are the squares a pawn of that side on sq attacks.
	pawnAttacks [2][65]uint64

	// neighbour[sq][d] is the square one step away in direction d, or 0.
	neighbour [65][9]uint64
	// raySquares[sq][d][k] is the square k+1 steps away in d, or 0. Index 7 is
	// always 0 and terminates a ray walk.
	raySquares [65][9][8]uint64
	// knightTargets lists knight destinations in fixed offset order, 0 when off board.
	knightTargets [65][8]uint64

	revealedCheckDirection [65][65]Direction
	// revealedCheckRay[king][d] holds every square beyond the king in d.
	revealedCheckRay [65][9]uint64
	directCheckRoute [65][65]Route
	// longRay[king][sq] holds the squares strictly between two aligned squares.
	longRay [65][65]uint64
)

const (
	sideWhite = 0
	sideBlack = 1
)

func side(white bool) int {
	if white {
		return sideWhite
	}
	return sideBlack
}

// knightOffsets run clockwise from north-north-east as (rank, file) pairs.
var knightOffsets = [8][2]int{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

func init() {
	initStepTables()
	initCheckTables()
}

// initStepTables precomputes single-step, knight and pawn attack masks.
func initStepTables() {
	for sq := uint8(1); sq <= 64; sq++ {
		rank, file := squareRank(sq), squareFile(sq)

		for _, d := range compass {
			dr, df := d.delta()
			for k := 0; k < 7; k++ {
				rf, ff := rank+dr*(k+1), file+df*(k+1)
				if !onBoard(rf, ff) {
					break
				}
				raySquares[sq][d][k] = SquareBit(squareAt(rf, ff))
			}
			neighbour[sq][d] = raySquares[sq][d][0]
			kingAttacks[sq] |= neighbour[sq][d]
		}

		for i, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if onBoard(rf, ff) {
				knightTargets[sq][i] = SquareBit(squareAt(rf, ff))
				knightAttacks[sq] |= knightTargets[sq][i]
			}
		}

		pawnAttacks[sideWhite][sq] = neighbour[sq][NorthEast] | neighbour[sq][NorthWest]
		pawnAttacks[sideBlack][sq] = neighbour[sq][SouthEast] | neighbour[sq][SouthWest]
	}
}

// initCheckTables derives the revealed and direct check tables from the ray
// walks built by initStepTables.
func initCheckTables() {
	for king := uint8(1); king <= 64; king++ {
		for _, d := range compass {
			var between uint64
			for k := 0; k < 7; k++ {
				target := raySquares[king][d][k]
				if target == 0 {
					break
				}
				sq := BitIndex(target)
				revealedCheckRay[king][d] |= target
				revealedCheckDirection[king][sq] = d
				longRay[king][sq] = between
				switch {
				case k > 0:
					directCheckRoute[king][sq] = longRoute(d)
				case d.Diagonal():
					directCheckRoute[king][sq] = RouteLocalDiagonal
				default:
					directCheckRoute[king][sq] = RouteLocalStraight
				}
				between |= target
			}
		}
		for t := knightAttacks[king]; t != 0; t &= t - 1 {
			directCheckRoute[king][BitIndex(LowestBit(t))] = RouteKnight
		}
	}
}
