package atlas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texpack/texpack/pkg/errors"
)

func TestParseHeuristic(t *testing.T) {
	h, err := ParseHeuristic("area")
	require.NoError(t, err)
	require.Equal(t, HeuristicArea, h)

	h, err = ParseHeuristic("maxaxis")
	require.NoError(t, err)
	require.Equal(t, HeuristicMaxOneAxis, h)

	_, err = ParseHeuristic("best")
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeInvalidHeuristic, errors.GetCode(err))
}

func TestBestFitRejectsTooLarge(t *testing.T) {
	node := Rect{W: 50, H: 50}
	pool := []Texture{
		{Name: "wide", Width: 60, Height: 10},
		{Name: "tall", Width: 10, Height: 60},
	}
	require.Equal(t, -1, bestFit(node, pool, HeuristicArea))
}

func TestBestFitEmptyPool(t *testing.T) {
	require.Equal(t, -1, bestFit(Rect{W: 50, H: 50}, nil, HeuristicArea))
}

func TestBestFitHeuristicsDisagree(t *testing.T) {
	node := Rect{W: 100, H: 100}
	pool := []Texture{
		{Name: "sliver", Width: 90, Height: 10}, // area 900, max axis 0.9
		{Name: "block", Width: 50, Height: 50},  // area 2500, max axis 0.5
	}

	require.Equal(t, 1, bestFit(node, pool, HeuristicArea))
	require.Equal(t, 0, bestFit(node, pool, HeuristicMaxOneAxis))
}

func TestBestFitTieGoesToEarliest(t *testing.T) {
	node := Rect{W: 100, H: 100}
	pool := []Texture{
		{Name: "first", Width: 40, Height: 40},
		{Name: "second", Width: 40, Height: 40},
		{Name: "third", Width: 80, Height: 20}, // same area, same score
	}
	require.Equal(t, 0, bestFit(node, pool, HeuristicArea))
}
