package board

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const castlingOrder = "KQkq"

// pieceFromChar converts a FEN letter into a piece type and colour.
func pieceFromChar(ch byte) (PieceType, bool) {
	white := ch >= 'A' && ch <= 'Z'
	switch ch | 0x20 {
	case 'p':
		return Pawn, white
	case 'n':
		return Knight, white
	case 'b':
		return Bishop, white
	case 'r':
		return Rook, white
	case 'q':
		return Queen, white
	case 'k':
		return King, white
	}
	return NoPiece, false
}

func charFromPiece(pt PieceType, white bool) byte {
	ch := pt.Letter()
	if white {
		ch -= 'a' - 'A'
	}
	return ch
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedPosition, fmt.Sprintf(format, args...))
}

// FromFEN parses a canonical FEN string.
func FromFEN(fen string) (Position, error) {
	var p Position
	if err := p.SetFEN(fen); err != nil {
		return Position{}, err
	}
	return p, nil
}

// MustFromFEN is FromFEN for known-good input; it panics on error.
func MustFromFEN(fen string) Position {
	p, err := FromFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// SetFEN replaces the receiver with the parsed position. On error the
// receiver is left zeroed, which Valid reports as invalid.
func (p *Position) SetFEN(fen string) error {
	*p = Position{}
	fields := strings.Split(fen, " ")
	if len(fields) != 6 {
		return malformed("want 6 space-separated fields, got %d", len(fields))
	}

	var q Position
	if err := q.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		q.WhiteToMove = true
	case "b":
	default:
		return malformed("invalid side to move %q", fields[1])
	}

	if fields[2] != "-" {
		last := -1
		for i := 0; i < len(fields[2]); i++ {
			idx := strings.IndexByte(castlingOrder, fields[2][i])
			if idx <= last {
				return malformed("invalid castling field %q", fields[2])
			}
			q.Castling |= CastlingRights(1) << idx
			last = idx
		}
		if last < 0 {
			return malformed("empty castling field")
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return malformed("invalid en passant square %q", fields[3])
		}
		wantRank := 2
		if q.WhiteToMove {
			wantRank = 5
		}
		if squareRank(sq) != wantRank {
			return malformed("en passant square %s does not match side to move", fields[3])
		}
		q.EnPassant = SquareBit(sq)
	}

	half, err := parseCounter(fields[4], MaxHalfmoveClock)
	if err != nil {
		return malformed("halfmove clock: %v", err)
	}
	q.HalfmoveClock = uint16(half)

	full, err := parseCounter(fields[5], MaxFullmoveNumber)
	if err != nil {
		return malformed("fullmove number: %v", err)
	}
	if full == 0 {
		return malformed("fullmove number must be at least 1")
	}
	q.FullmoveNumber = uint32(full)

	q.Material = q.countMaterial()
	if err := q.Validate(); err != nil {
		return malformed("%v", err)
	}
	q.InCheck = q.KingInCheck()
	*p = q
	return nil
}

// parsePlacement fills the occupancy maps and king squares.
func (p *Position) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return malformed("incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		prevDigit := false
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				if prevDigit {
					return malformed("adjacent digits in rank %d", rank+1)
				}
				file += int(ch - '0')
				prevDigit = true
				continue
			}
			pt, white := pieceFromChar(ch)
			if pt == NoPiece {
				return malformed("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return malformed("too many squares in rank %d", rank+1)
			}
			sq := squareAt(rank, file)
			p.put(pt, white, SquareBit(sq))
			if pt == King {
				if white {
					if p.WhiteKing != 0 {
						return malformed("more than one white king")
					}
					p.WhiteKing = sq
				} else {
					if p.BlackKing != 0 {
						return malformed("more than one black king")
					}
					p.BlackKing = sq
				}
			}
			file++
			prevDigit = false
		}
		if file != 8 {
			return malformed("rank %d does not have 8 columns", rank+1)
		}
	}
	if p.WhiteKing == 0 || p.BlackKing == 0 {
		return malformed("each side needs exactly one king")
	}
	return nil
}

// parseCounter accepts decimal digits without leading zeros up to limit.
func parseCounter(s string, limit uint64) (uint64, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, fmt.Errorf("non-canonical number %q", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-canonical number %q", s)
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v > limit {
		return 0, fmt.Errorf("%q out of range", s)
	}
	return v, nil
}

// FEN renders the position in canonical FEN.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pt, white := p.PieceAt(squareAt(rank, file))
			if pt == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(pt, white))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.WhiteToMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if p.Castling == 0 {
		sb.WriteByte('-')
	}
	for i := 0; i < len(castlingOrder); i++ {
		if p.Castling&(CastlingRights(1)<<i) != 0 {
			sb.WriteByte(castlingOrder[i])
		}
	}

	sb.WriteByte(' ')
	if p.EnPassant != 0 {
		sb.WriteString(SquareName(BitIndex(p.EnPassant)))
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.FullmoveNumber), 10))
	return sb.String()
}

// String implements fmt.Stringer using the FEN form.
func (p Position) String() string { return p.FEN() }
