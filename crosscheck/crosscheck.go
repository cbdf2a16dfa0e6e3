// Package crosscheck compares the board move generator against
// dragontoothmg, an independent legal move generator.
package crosscheck

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"abchess/board"
)

// Divergence describes the first position where the two generators disagree.
type Divergence struct {
	FEN     string
	Line    []string // moves from the root to FEN
	Missing []string // legal according to the oracle, not generated
	Extra   []string // generated, not legal according to the oracle
}

func (d *Divergence) String() string {
	return fmt.Sprintf("after [%s] in %s: missing %v extra %v",
		strings.Join(d.Line, " "), d.FEN, d.Missing, d.Extra)
}

// Compare walks the game tree of fen to depth plies, comparing the legal
// move sets at every node. It returns nil when both agree everywhere.
func Compare(fen string, depth int) (*Divergence, error) {
	p, err := board.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	oracle := dragontoothmg.ParseFen(fen)
	d := compare(&p, &oracle, depth, nil)
	if d != nil {
		log.Debug().Str("fen", d.FEN).Strs("line", d.Line).Msg("generators-diverge")
	}
	return d, nil
}

func compare(p *board.Position, oracle *dragontoothmg.Board, depth int, line []string) *Divergence {
	ours := make(map[string]board.Position)
	for _, c := range p.Children() {
		ours[c.LastMove().String()] = c
	}
	theirs := make(map[string]dragontoothmg.Move)
	moves := oracle.GenerateLegalMoves()
	for i := range moves {
		theirs[moves[i].String()] = moves[i]
	}

	var missing, extra []string
	for m := range theirs {
		if _, ok := ours[m]; !ok {
			missing = append(missing, m)
		}
	}
	for m := range ours {
		if _, ok := theirs[m]; !ok {
			extra = append(extra, m)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		slices.Sort(missing)
		slices.Sort(extra)
		return &Divergence{
			FEN:     p.FEN(),
			Line:    slices.Clone(line),
			Missing: missing,
			Extra:   extra,
		}
	}
	if depth <= 1 {
		return nil
	}

	keys := maps.Keys(ours)
	slices.Sort(keys)
	for _, m := range keys {
		child := ours[m]
		undo := oracle.Apply(theirs[m])
		d := compare(&child, oracle, depth-1, append(line, m))
		undo()
		if d != nil {
			return d
		}
	}
	return nil
}

// Perft counts the leaves of fen's game tree with the oracle alone.
func Perft(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return perft(&b, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth <= 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		undo := b.Apply(m)
		n += perft(b, depth-1)
		undo()
	}
	return n
}
