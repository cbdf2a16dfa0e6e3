package engine

import (
	"fmt"
	"io"
)

// Stats collects counts for the search's node and pruning events.
type Stats struct {
	Leaves            uint64 // static evaluations at depth 0
	Interior          uint64
	Cutoffs           uint64
	Promotions        uint64 // children moved to the front after improving the bound
	DuplicatesSkipped uint64 // regenerated children matching a kept sibling
	Terminal          uint64 // interior nodes with no legal move
	Iterations        int
}

func (s *Stats) add(o Stats) {
	s.Leaves += o.Leaves
	s.Interior += o.Interior
	s.Cutoffs += o.Cutoffs
	s.Promotions += o.Promotions
	s.DuplicatesSkipped += o.DuplicatesSkipped
	s.Terminal += o.Terminal
}

// Dump writes the statistics in the engine's "info string" form.
func (s Stats) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Iterations: %d\n", s.Iterations)
	fmt.Fprintf(w, "info string   Leaves: %d\n", s.Leaves)
	fmt.Fprintf(w, "info string   Interior nodes: %d\n", s.Interior)
	fmt.Fprintf(w, "info string   Cutoffs: %d\n", s.Cutoffs)
	fmt.Fprintf(w, "info string   Promotions: %d\n", s.Promotions)
	fmt.Fprintf(w, "info string   Duplicates skipped: %d\n", s.DuplicatesSkipped)
	fmt.Fprintf(w, "info string   Terminal nodes: %d\n", s.Terminal)
}
