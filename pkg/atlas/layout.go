package atlas

// freeQueue is a FIFO queue of free nodes with O(1) pop-front. The FIFO
// order is load-bearing: free nodes created earlier (closer to the root
// of the partition) are tried before later siblings, which makes layout
// deterministic for a given pool order.
type freeQueue struct {
	nodes []Node
	head  int
}

func (q *freeQueue) push(n Node) { q.nodes = append(q.nodes, n) }

func (q *freeQueue) pop() Node {
	n := q.nodes[q.head]
	q.head++
	if q.head == len(q.nodes) {
		q.nodes = q.nodes[:0]
		q.head = 0
	}
	return n
}

func (q *freeQueue) empty() bool { return q.head == len(q.nodes) }

// layoutAtlas places as many pool textures as possible into a w by h
// atlas and returns the placed nodes together with the leftover pool.
// The input pool is not mutated; leftovers preserve its relative order.
//
// Each free node is consumed exactly once: if no remaining texture fits
// it, it is dropped rather than retried against a smaller pool later.
// An atlas that admits zero textures is a legal, empty result.
func layoutAtlas(pool []Texture, w, h int, opts Options) ([]Node, []Texture) {
	remaining := make([]Texture, len(pool))
	copy(remaining, pool)

	var free freeQueue
	free.push(Node{Bounds: Rect{W: w, H: h}, Split: Horizontal})

	var placed []Node
	for !free.empty() && len(remaining) > 0 {
		node := free.pop()

		i := bestFit(node.Bounds, remaining, opts.Heuristic)
		if i < 0 {
			continue
		}
		tex := remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)

		for _, sibling := range split(node, tex.Width, tex.Height, opts.Padding) {
			free.push(sibling)
		}

		placed = append(placed, Node{
			Bounds:  Rect{X: node.Bounds.X, Y: node.Bounds.Y, W: tex.Width, H: tex.Height},
			Texture: &tex,
			Split:   node.Split,
		})
	}
	return placed, remaining
}
