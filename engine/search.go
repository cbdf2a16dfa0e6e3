package engine

import (
	"sync/atomic"

	"abchess/board"
)

// searcher is one worker's private alpha-beta state. Nodes below a root child
// are only ever touched by the worker holding that child.
type searcher struct {
	maxKept int
	stop    *atomic.Bool
	bounds  *sharedBounds
	stats   Stats
	// seen[d] holds the hashes of the kept children of the node being
	// visited at remaining depth d.
	seen [][]board.ChildHash
}

func newSearcher(maxKept, maxDepth int, stop *atomic.Bool, bounds *sharedBounds) *searcher {
	if stop == nil {
		stop = new(atomic.Bool)
	}
	return &searcher{
		maxKept: maxKept,
		stop:    stop,
		bounds:  bounds,
		seen:    make([][]board.ChildHash, maxDepth+1),
	}
}

// alphaBeta returns the fail-soft minimax value of n searched depth plies
// deep. min is the best score black is already assured of and max the best
// for white; the node is cut as soon as min <= max.
func (s *searcher) alphaBeta(n *Node, depth int, min, max int32) int32 {
	white := n.Position.WhiteToMove
	if s.stop.Load() {
		return currentBound(white, min, max)
	}
	if depth == 0 {
		s.stats.Leaves++
		n.Score = Evaluate(&n.Position)
		n.Depth = 0
		return n.Score
	}
	s.stats.Interior++
	min, max = s.bounds.tighten(min, max)

	best := NegInfinity
	if !white {
		best = Infinity
	}

	seen := s.seen[depth][:0]
	for _, c := range n.Children {
		seen = append(seen, c.Position.ChildHash())
	}
	s.seen[depth] = seen

	n.ResetGenerator()
	kept := len(n.Children)
	for i := 0; ; i++ {
		if i >= kept && !s.extend(n, seen) {
			break
		}
		v := s.alphaBeta(n.Children[i], depth-1, min, max)
		if s.stop.Load() {
			return currentBound(white, min, max)
		}
		if white {
			if v > best {
				best = v
				s.promote(n, i)
			}
			if best > max {
				max = best
			}
		} else {
			if v < best {
				best = v
				s.promote(n, i)
			}
			if best < min {
				min = best
			}
		}
		if min <= max {
			s.stats.Cutoffs++
			break
		}
	}

	if len(n.Children) == 0 {
		s.stats.Terminal++
		n.Position.GameOver = true
		best = terminalScore(&n.Position)
	}
	n.Truncate(s.maxKept)
	n.Score, n.Depth = best, depth
	n.Position.Score, n.Position.ScoreDepth = best, uint8(depth)
	return best
}

// extend appends the next generated child that is not already kept.
func (s *searcher) extend(n *Node, seen []board.ChildHash) bool {
	var c board.Position
	for n.Position.NextChild(&c) {
		if containsHash(seen, c.ChildHash()) {
			s.stats.DuplicatesSkipped++
			continue
		}
		n.Children = append(n.Children, NewNode(c))
		return true
	}
	return false
}

func (s *searcher) promote(n *Node, i int) {
	if i > 0 {
		n.PromoteLastChildToFirst(i)
		s.stats.Promotions++
	}
}

func containsHash(hashes []board.ChildHash, h board.ChildHash) bool {
	for _, x := range hashes {
		if x == h {
			return true
		}
	}
	return false
}

// currentBound is what an interrupted node reports: the side to move's own
// guaranteed bound.
func currentBound(white bool, min, max int32) int32 {
	if white {
		return max
	}
	return min
}
