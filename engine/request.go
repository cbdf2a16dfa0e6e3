package engine

import (
	"fmt"
	"sync/atomic"
)

const (
	DefaultMaxKept = 3
	DefaultWorkers = 1

	MaxSearchDepth = 255
	MaxKeptLimit   = 255
)

// Request describes one search.
type Request struct {
	FEN      string
	MaxDepth int
	// MaxKept caps the children a node keeps between visits.
	MaxKept int
	Workers int
	// Stop, when set, lets the caller abort the search from another goroutine.
	Stop *atomic.Bool
}

// NewRequest returns a request with the package defaults.
func NewRequest(fen string, depth int) Request {
	return Request{
		FEN:      fen,
		MaxDepth: depth,
		MaxKept:  DefaultMaxKept,
		Workers:  DefaultWorkers,
	}
}

// Validate checks the numeric parameters. The FEN is checked when parsed.
func (r Request) Validate() error {
	if r.MaxDepth < 1 || r.MaxDepth > MaxSearchDepth {
		return fmt.Errorf("%w: max depth %d not in [1,%d]", ErrInvalidArgument, r.MaxDepth, MaxSearchDepth)
	}
	if r.MaxKept < 0 || r.MaxKept > MaxKeptLimit {
		return fmt.Errorf("%w: max kept %d not in [0,%d]", ErrInvalidArgument, r.MaxKept, MaxKeptLimit)
	}
	if r.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be positive", ErrInvalidArgument, r.Workers)
	}
	return nil
}
