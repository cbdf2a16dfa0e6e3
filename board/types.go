package board

// PieceType is a colorless piece class. The numeric order matches the order
// in which piece-class bitboards are stored on a Position.
type PieceType uint8

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// promotionOrder is the fixed order in which promotion children are produced.
var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// pieceValues in pawn units; kings are not counted.
var pieceValues = [7]int32{0, 1, 3, 3, 5, 9, 0}

// Value returns the material value of the piece type in pawn units.
func (pt PieceType) Value() int32 { return pieceValues[pt&7] }

// Letter returns the lowercase FEN letter for the piece type, or 0 for NoPiece.
func (pt PieceType) Letter() byte {
	switch pt {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	}
	return 0
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// CastlingRights is a bit set of the four independent castling flags.
type CastlingRights uint8

const (
	CastleWhiteShort CastlingRights = 1 << iota
	CastleWhiteLong
	CastleBlackShort
	CastleBlackLong
)

// Direction is one of the eight compass directions seen from white's side of
// the board, or DirNone when two squares do not share a line.
type Direction uint8

const (
	DirNone Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// compass lists the eight directions in generation order.
var compass = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// delta returns the (rank, file) step of the direction.
func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return 1, 0
	case NorthEast:
		return 1, 1
	case East:
		return 0, 1
	case SouthEast:
		return -1, 1
	case South:
		return -1, 0
	case SouthWest:
		return -1, -1
	case West:
		return 0, -1
	case NorthWest:
		return 1, -1
	}
	return 0, 0
}

// ascending reports whether bit indices grow when walking in d. With square 1
// on h1, north and west both move to higher bits.
func (d Direction) ascending() bool {
	return d == North || d == NorthEast || d == West || d == NorthWest
}

// Diagonal reports whether d is a bishop direction.
func (d Direction) Diagonal() bool {
	return d == NorthEast || d == SouthEast || d == SouthWest || d == NorthWest
}

// Dimension returns the line the direction lies on.
func (d Direction) Dimension() Dimension {
	switch d {
	case North, South:
		return DimNS
	case East, West:
		return DimEW
	case NorthEast, SouthWest:
		return DimNESW
	case SouthEast, NorthWest:
		return DimSENW
	}
	return DimNone
}

// Dimension is the line a pinned piece is confined to.
type Dimension uint8

const (
	DimNone Dimension = iota
	DimNS
	DimEW
	DimNESW
	DimSENW
)

func (d Dimension) String() string {
	switch d {
	case DimNS:
		return "NS"
	case DimEW:
		return "EW"
	case DimNESW:
		return "NE-SW"
	case DimSENW:
		return "SE-NW"
	}
	return "none"
}

// Route classifies how a piece standing on one square could give check to a
// king on another.
type Route uint8

const (
	RouteNone Route = iota
	RouteLocalStraight
	RouteLocalDiagonal
	RouteKnight
	// RouteLongN through RouteLongNW follow the compass order of Direction.
	RouteLongN
	RouteLongNE
	RouteLongE
	RouteLongSE
	RouteLongS
	RouteLongSW
	RouteLongW
	RouteLongNW
)

func longRoute(d Direction) Route { return RouteLongN + Route(d-North) }

// Direction returns the direction of a long route, DirNone otherwise.
func (r Route) Direction() Direction {
	if r < RouteLongN {
		return DirNone
	}
	return North + Direction(r-RouteLongN)
}
