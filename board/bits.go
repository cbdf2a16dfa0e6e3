package board

import (
	"fmt"
	"math/bits"
)

// ==========================
// Bit helpers
// ==========================

// LowestBit isolates the least significant set bit of x. It returns 0 for 0.
func LowestBit(x uint64) uint64 { return (x & (x - 1)) ^ x }

// NextLowestBit returns the lowest set bit of x strictly above single, or 0
// when single is the top bit or no higher bit is set.
func NextLowestBit(x, single uint64) uint64 {
	return LowestBit(x &^ (single | (single - 1)))
}

// BitIndex maps a one-bit board to its square number 1..64. Passing 0 is a
// caller error.
func BitIndex(single uint64) uint8 { return uint8(bits.TrailingZeros64(single)) + 1 }

// SquareBit is the inverse of BitIndex.
func SquareBit(sq uint8) uint64 { return 1 << (sq - 1) }

// highestBit isolates the most significant set bit of x.
func highestBit(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	return 1 << (63 - bits.LeadingZeros64(x))
}

// Square 1 is h1 and square 64 is a8: bit = rank*8 + (7-file).
func squareRank(sq uint8) int { return int(sq-1) / 8 }
func squareFile(sq uint8) int { return 7 - int(sq-1)%8 }
func squareAt(rank, file int) uint8 { return uint8(rank*8+7-file) + 1 }

func onBoard(rank, file int) bool { return rank >= 0 && rank < 8 && file >= 0 && file < 8 }

// SquareName returns the algebraic name ("e4") of square 1..64.
func SquareName(sq uint8) string {
	return string([]byte{'a' + byte(squareFile(sq)), '1' + byte(squareRank(sq))})
}

// ParseSquare converts an algebraic name into a square number 1..64.
func ParseSquare(s string) (uint8, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	return squareAt(int(s[1]-'1'), int(s[0]-'a')), nil
}
