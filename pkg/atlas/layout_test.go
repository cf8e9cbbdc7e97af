package atlas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreeQueueFIFO(t *testing.T) {
	var q freeQueue
	require.True(t, q.empty())

	q.push(Node{Bounds: Rect{W: 1}})
	q.push(Node{Bounds: Rect{W: 2}})
	q.push(Node{Bounds: Rect{W: 3}})

	require.Equal(t, 1, q.pop().Bounds.W)
	require.Equal(t, 2, q.pop().Bounds.W)

	q.push(Node{Bounds: Rect{W: 4}})
	require.Equal(t, 3, q.pop().Bounds.W)
	require.Equal(t, 4, q.pop().Bounds.W)
	require.True(t, q.empty())
}

func TestLayoutAtlasPlacesAll(t *testing.T) {
	pool := []Texture{
		{Name: "a", Width: 64, Height: 64},
		{Name: "b", Width: 64, Height: 64},
		{Name: "c", Width: 32, Height: 32},
	}

	placed, leftovers := layoutAtlas(pool, 128, 128, DefaultOptions())
	require.Empty(t, leftovers)
	require.Len(t, placed, 3)

	// First placement is at the origin of the root node.
	require.Equal(t, Rect{X: 0, Y: 0, W: 64, H: 64}, placed[0].Bounds)
	requireValidLayout(t, placed, 128, 128)
}

func TestLayoutAtlasDoesNotMutatePool(t *testing.T) {
	pool := []Texture{
		{Name: "a", Width: 64, Height: 64},
		{Name: "b", Width: 32, Height: 32},
	}
	before := make([]Texture, len(pool))
	copy(before, pool)

	layoutAtlas(pool, 128, 128, DefaultOptions())
	require.Equal(t, before, pool)
}

func TestLayoutAtlasLeftoversKeepOrder(t *testing.T) {
	pool := []Texture{
		{Name: "fits", Width: 100, Height: 100},
		{Name: "left1", Width: 100, Height: 100},
		{Name: "left2", Width: 100, Height: 100},
	}

	placed, leftovers := layoutAtlas(pool, 128, 128, DefaultOptions())
	require.Len(t, placed, 1)
	require.Equal(t, "fits", placed[0].Texture.Name)
	require.Len(t, leftovers, 2)
	require.Equal(t, "left1", leftovers[0].Name)
	require.Equal(t, "left2", leftovers[1].Name)
}

func TestLayoutAtlasPadding(t *testing.T) {
	opts := DefaultOptions()
	opts.Padding = 2
	pool := []Texture{
		{Name: "a", Width: 10, Height: 10},
		{Name: "b", Width: 10, Height: 10},
	}

	placed, leftovers := layoutAtlas(pool, 32, 32, opts)
	require.Empty(t, leftovers)
	require.Len(t, placed, 2)

	// Second texture lands in the right sibling, past the padding gap.
	require.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 10}, placed[0].Bounds)
	require.Equal(t, Rect{X: 12, Y: 0, W: 10, H: 10}, placed[1].Bounds)
}

func TestLayoutAtlasDeterministic(t *testing.T) {
	pool := testPool(40)

	a, _ := layoutAtlas(pool, 256, 256, DefaultOptions())
	b, _ := layoutAtlas(pool, 256, 256, DefaultOptions())
	require.Equal(t, a, b)
}

// requireValidLayout asserts the structural invariants of a finished
// layout: nodes are pairwise non-overlapping and contained in the atlas.
func requireValidLayout(t *testing.T, placed []Node, w, h int) {
	t.Helper()
	atlasBounds := Rect{W: w, H: h}
	for i, n := range placed {
		require.NotNil(t, n.Texture, "node %d has no texture", i)
		require.True(t, n.Bounds.In(atlasBounds), "node %d (%s) escapes the atlas", i, n.Bounds)
		for j := i + 1; j < len(placed); j++ {
			require.False(t, n.Bounds.Overlaps(placed[j].Bounds),
				"nodes %d (%s) and %d (%s) overlap", i, n.Bounds, j, placed[j].Bounds)
		}
	}
}

// testPool builds a deterministic pool of mixed-size textures.
func testPool(n int) []Texture {
	sizes := []int{8, 12, 16, 24, 32, 48, 64}
	pool := make([]Texture, n)
	for i := range pool {
		pool[i] = Texture{
			Name:   string(rune('a'+i%26)) + string(rune('0'+i/26)),
			Width:  sizes[i%len(sizes)],
			Height: sizes[(i*3+1)%len(sizes)],
		}
	}
	return pool
}
