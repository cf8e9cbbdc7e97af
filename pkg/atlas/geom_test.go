package atlas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	require.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	require.True(t, a.Overlaps(a))

	// Touching edges do not overlap.
	require.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}))
	require.False(t, a.Overlaps(Rect{X: 0, Y: 10, W: 10, H: 10}))

	// Empty rectangles never overlap anything.
	require.False(t, a.Overlaps(Rect{X: 5, Y: 5}))
}

func TestRectIn(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}

	require.True(t, Rect{X: 10, Y: 10, W: 20, H: 20}.In(outer))
	require.True(t, outer.In(outer))
	require.False(t, Rect{X: 90, Y: 90, W: 20, H: 20}.In(outer))
}

func TestRectString(t *testing.T) {
	require.Equal(t, "20x30+5+7", Rect{X: 5, Y: 7, W: 20, H: 30}.String())
}
