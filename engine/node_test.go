package engine_test

import (
	"testing"

	"abchess/board"
	"abchess/engine"
)

func childMoves(n *engine.Node) []string {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Move().String()
	}
	return out
}

func TestNodeAddNextChildMatchesGenerator(t *testing.T) {
	p := board.MustFromFEN(board.FENStartPos)
	n := engine.NewNode(p)
	for n.AddNextChild() {
	}
	want := p.LegalMoves()
	if len(n.Children) != len(want) {
		t.Fatalf("children: got %d want %d", len(n.Children), len(want))
	}
	for i, m := range want {
		if got := n.Children[i].Move(); got != m {
			t.Fatalf("child %d: got %s want %s", i, got, m)
		}
	}
	if n.AddNextChild() {
		t.Fatalf("exhausted generator produced another child")
	}
	n.ResetGenerator()
	if !n.AddNextChild() || n.Children[len(n.Children)-1].Move() != want[0] {
		t.Fatalf("reset generator did not restart at the first move")
	}
}

func TestNodePromoteTruncatePurge(t *testing.T) {
	n := engine.NewNode(board.MustFromFEN(board.FENStartPos))
	for i := 0; i < 5; i++ {
		n.AddNextChild()
	}
	before := childMoves(n)
	n.PromoteLastChildToFirst(3)
	after := childMoves(n)
	want := []string{before[3], before[0], before[1], before[2], before[4]}
	for i := range want {
		if after[i] != want[i] {
			t.Fatalf("promote: got %v want %v", after, want)
		}
	}

	n.PromoteLastChildToFirst(0)
	n.PromoteLastChildToFirst(99)
	if got := childMoves(n); got[0] != want[0] || len(got) != 5 {
		t.Fatalf("out-of-range promote changed children: %v", got)
	}

	n.Truncate(2)
	if len(n.Children) != 2 || n.Children[0].Move().String() != want[0] {
		t.Fatalf("truncate: got %v", childMoves(n))
	}
	if got := n.Retained(); got != 3 {
		t.Fatalf("retained: got %d want %d", got, 3)
	}
	n.PurgeChildren()
	if len(n.Children) != 0 {
		t.Fatalf("purge: got %d children", len(n.Children))
	}
}

func TestChildHashDistinguishesSiblings(t *testing.T) {
	p := board.MustFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	seen := make(map[board.ChildHash]string)
	for _, c := range p.Children() {
		c := c
		h := c.ChildHash()
		if prev, ok := seen[h]; ok {
			t.Fatalf("hash collision between %s and %s", prev, c.LastMove())
		}
		seen[h] = c.LastMove().String()
	}
	if len(seen) != 48 {
		t.Fatalf("distinct hashes: got %d want %d", len(seen), 48)
	}
}
