package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"abchess/board"
)

// rootChild is one root move shared by all workers. A worker claims it with
// TryLock and never holds two at once.
type rootChild struct {
	mu    sync.Mutex
	node  *Node
	depth int // deepest finished iteration
	score int32
}

// Search parses req.FEN and runs SearchPosition.
func Search(ctx context.Context, req Request) (Result, error) {
	pos, err := board.FromFEN(req.FEN)
	if err != nil {
		return Result{}, fmt.Errorf("search request: %w", err)
	}
	return SearchPosition(ctx, pos, req)
}

// SearchPosition runs iterative deepening from depth 1 to req.MaxDepth,
// splitting the root moves across req.Workers goroutines at every depth.
// Cancelling ctx or setting req.Stop aborts the search; the Result then holds
// the best move of the last finished iteration alongside ErrAborted. Progress
// is logged at debug level to the logger carried by ctx, if any.
func SearchPosition(ctx context.Context, pos board.Position, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := Result{ID: uuid.NewString()}
	logger := zerolog.Ctx(ctx).With().Str("search", res.ID).Logger()

	stop := req.Stop
	if stop == nil {
		stop = new(atomic.Bool)
	}
	if ctx.Err() != nil {
		stop.Store(true)
	}
	release := context.AfterFunc(ctx, func() { stop.Store(true) })
	defer release()

	root := NewNode(pos)
	for root.AddNextChild() {
	}
	if len(root.Children) == 0 {
		res.Score = terminalScore(&root.Position)
		res.Depth = req.MaxDepth
		res.Final = true
		res.Elapsed = time.Since(start)
		logger.Debug().Int32("score", res.Score).Msg("no-legal-moves")
		return res, nil
	}

	roots := make([]*rootChild, len(root.Children))
	for i, c := range root.Children {
		roots[i] = &rootChild{node: c}
	}
	white := pos.WhiteToMove
	logger.Debug().
		Int("workers", req.Workers).
		Int("max-depth", req.MaxDepth).
		Int("max-kept", req.MaxKept).
		Int("root-moves", len(roots)).
		Msg("search-starting")

	var (
		bounds  sharedBounds
		nodes   atomic.Uint64
		statsMu sync.Mutex
	)
	completed := 0
	for d := 1; d <= req.MaxDepth && !stop.Load(); d++ {
		logger.Debug().Int("plies", d).Msg("deepening-iteratively")
		bounds.reset()
		g := errgroup.Group{}
		for w := 0; w < req.Workers; w++ {
			g.Go(func() error {
				s := newSearcher(req.MaxKept, req.MaxDepth, stop, &bounds)
				s.searchRoots(roots, d, white)
				nodes.Add(s.stats.Leaves)
				statsMu.Lock()
				res.Stats.add(s.stats)
				statsMu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return res, err
		}
		if !finished(roots, d) {
			break
		}
		completed = d
		res.Stats.Iterations = d
		best := bestRoot(roots, white, d)
		promoteRoot(roots, best)
		res.fill(roots, d, nodes.Load())
		logger.Debug().
			Int("ply", d).
			Str("move", res.Move.String()).
			Int32("score", res.Score).
			Uint64("nodes", res.Nodes).
			Str("pv", res.PVString()).
			Msg("best-val")
	}

	res.Nodes = nodes.Load()
	res.Elapsed = time.Since(start)
	if completed == req.MaxDepth {
		res.Final = true
		logger.Debug().Dur("elapsed", res.Elapsed).Msg("search-returning")
		return res, nil
	}

	if completed == 0 {
		// Nothing finished: fall back to whatever the partial first
		// iteration settled, or the first legal move.
		best := bestRoot(roots, white, 1)
		if best < 0 {
			best = 0
			roots[0].score = Evaluate(&roots[0].node.Position)
			roots[0].depth = 1
		}
		promoteRoot(roots, best)
		res.fill(roots, 1, res.Nodes)
		res.Depth = 0
	}
	logger.Debug().Int("completed", completed).Dur("elapsed", res.Elapsed).Msg("search-aborted")
	return res, fmt.Errorf("%w after %d of %d plies", ErrAborted, completed, req.MaxDepth)
}

// searchRoots makes one pass over the root list, searching every child not
// yet finished at depth and not claimed by another worker.
func (s *searcher) searchRoots(roots []*rootChild, depth int, white bool) {
	for _, rc := range roots {
		if s.stop.Load() {
			return
		}
		if !rc.mu.TryLock() {
			continue
		}
		if rc.depth >= depth {
			rc.mu.Unlock()
			continue
		}
		v := s.alphaBeta(rc.node, depth-1, s.bounds.min.Load(), s.bounds.max.Load())
		if !s.stop.Load() {
			rc.score, rc.depth = v, depth
			if white {
				s.bounds.raiseMax(v)
			} else {
				s.bounds.lowerMin(v)
			}
		}
		rc.mu.Unlock()
	}
}

func finished(roots []*rootChild, depth int) bool {
	for _, rc := range roots {
		if rc.depth < depth {
			return false
		}
	}
	return true
}

// bestRoot returns the index of the best root child searched at depth, the
// first one winning ties, or -1 if none was.
func bestRoot(roots []*rootChild, white bool, depth int) int {
	best := -1
	for i, rc := range roots {
		if rc.depth < depth {
			continue
		}
		if best < 0 || (white && rc.score > roots[best].score) || (!white && rc.score < roots[best].score) {
			best = i
		}
	}
	return best
}

// promoteRoot moves roots[i] to the front, keeping the order of the rest.
func promoteRoot(roots []*rootChild, i int) {
	if i <= 0 {
		return
	}
	rc := roots[i]
	copy(roots[1:i+1], roots[:i])
	roots[0] = rc
}

// fill records the front root child as the answer for an iteration of depth d.
func (r *Result) fill(roots []*rootChild, d int, nodes uint64) {
	front := roots[0]
	r.Move = front.node.Move()
	r.HasMove = true
	r.Score = front.score
	r.Depth = d
	r.PV = principalVariation(front.node, d)
	r.Nodes = nodes
	r.RootMoves = r.RootMoves[:0]
	for _, rc := range roots {
		r.RootMoves = append(r.RootMoves, RootMove{
			Move:     rc.node.Move(),
			Score:    rc.score,
			Depth:    rc.depth,
			Retained: rc.node.Retained(),
		})
	}
}
