package engine

import "abchess/board"

// Node is one position in the search tree. Children are produced lazily by
// the position's own generator and kept in best-first order.
type Node struct {
	Position board.Position
	Children []*Node
	Score    int32
	// Depth is the remaining depth Score was computed at; 0 for a leaf.
	Depth int
}

// NewNode wraps p and primes its generator.
func NewNode(p board.Position) *Node {
	n := &Node{Position: p}
	n.Position.InitMoveGeneration()
	return n
}

// ResetGenerator restarts child production from the first legal move.
func (n *Node) ResetGenerator() { n.Position.InitMoveGeneration() }

// AddNextChild appends the next generated child. It returns false once the
// generator is exhausted.
func (n *Node) AddNextChild() bool {
	var c board.Position
	if !n.Position.NextChild(&c) {
		return false
	}
	n.Children = append(n.Children, NewNode(c))
	return true
}

// PromoteLastChildToFirst rotates Children[0..last] right by one so the child
// at last moves to the front and the ones ahead of it shift down.
func (n *Node) PromoteLastChildToFirst(last int) {
	if last <= 0 || last >= len(n.Children) {
		return
	}
	c := n.Children[last]
	copy(n.Children[1:last+1], n.Children[:last])
	n.Children[0] = c
}

// Truncate keeps at most the first keep children.
func (n *Node) Truncate(keep int) {
	if keep < 0 {
		keep = 0
	}
	if len(n.Children) <= keep {
		return
	}
	for i := keep; i < len(n.Children); i++ {
		n.Children[i] = nil
	}
	n.Children = n.Children[:keep]
}

// PurgeChildren drops every child.
func (n *Node) PurgeChildren() { n.Truncate(0) }

// Move returns the move that led to this node.
func (n *Node) Move() board.Move { return n.Position.LastMove() }

// Retained counts the nodes kept below and including n.
func (n *Node) Retained() uint64 {
	total := uint64(1)
	for _, c := range n.Children {
		total += c.Retained()
	}
	return total
}
