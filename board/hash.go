package board

// ChildHash tells siblings apart: Hi is the occupancy map and Lo packs the
// move with a mix of the white occupancy. Two children of one parent with
// equal hashes are the same child.
type ChildHash struct {
	Hi uint64
	Lo uint64
}

const goldenGamma = 0x9E3779B97F4A7C15

// ChildHash returns the identity of p among the children of its parent.
func (p *Position) ChildHash() ChildHash {
	move := uint64(p.FromSq) | uint64(p.ToSq)<<8 | uint64(p.Promotion)<<16
	return ChildHash{
		Hi: p.All,
		Lo: move | (p.White*goldenGamma)&^0xFFFFFF,
	}
}
