package atlas

// Orientation tags a free node with the direction in which its future
// occupant will split it.
type Orientation uint8

const (
	// Horizontal splits stack the remainder below the placed texture.
	Horizontal Orientation = iota
	// Vertical splits place the remainder beside the placed texture.
	Vertical
)

// Node is one rectangle of an atlas's spatial partition. A free node
// (Texture == nil) is a placement candidate; a placed node is bound to
// exactly one texture and its bounds are the texture's exact size.
// Nodes transition free -> placed once and are never mutated afterwards.
type Node struct {
	Bounds  Rect
	Texture *Texture
	Split   Orientation
}

// Free reports whether the node is unoccupied.
func (n Node) Free() bool { return n.Texture == nil }

// split carves the leftover L-shaped region of a consumed free node into
// up to two new free nodes. texW and texH are the dimensions of the
// texture just placed at the node's origin; padding reserves a gap
// between the texture and each sibling. Siblings with no remaining area
// are discarded, which is how the free list shrinks to empty.
func split(free Node, texW, texH, padding int) []Node {
	b := free.Bounds

	var right, bottom Node
	switch free.Split {
	case Horizontal:
		// Right sibling spans the rest of the row at the texture's
		// height; bottom sibling keeps the full width below.
		right = Node{
			Bounds: Rect{X: b.X + texW + padding, Y: b.Y, W: b.W - texW - padding, H: texH},
			Split:  Vertical,
		}
		bottom = Node{
			Bounds: Rect{X: b.X, Y: b.Y + texH + padding, W: b.W, H: b.H - texH - padding},
			Split:  Horizontal,
		}
	case Vertical:
		// Right sibling keeps the full height beside the texture;
		// bottom sibling spans only the texture's width.
		right = Node{
			Bounds: Rect{X: b.X + texW + padding, Y: b.Y, W: b.W - texW - padding, H: b.H},
			Split:  Vertical,
		}
		bottom = Node{
			Bounds: Rect{X: b.X, Y: b.Y + texH + padding, W: texW, H: b.H - texH - padding},
			Split:  Horizontal,
		}
	}

	out := make([]Node, 0, 2)
	if !right.Bounds.Empty() {
		out = append(out, right)
	}
	if !bottom.Bounds.Empty() {
		out = append(out, bottom)
	}
	return out
}
