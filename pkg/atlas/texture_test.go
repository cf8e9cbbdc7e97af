package atlas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texpack/texpack/pkg/errors"
)

func TestTextureOriginalSize(t *testing.T) {
	tex := Texture{
		Width:  30,
		Height: 20,
		Trim:   Padding{Left: 1, Top: 2, Right: 3, Bottom: 4},
	}
	require.Equal(t, 34, tex.OriginalWidth())
	require.Equal(t, 26, tex.OriginalHeight())
	require.Equal(t, 600, tex.Area())
}

func TestParseSortOrder(t *testing.T) {
	for _, name := range []string{"none", "width", "height", "area", "maxside"} {
		order, err := ParseSortOrder(name)
		require.NoError(t, err)
		require.Equal(t, name, order.String())
	}

	_, err := ParseSortOrder("biggest")
	require.Equal(t, errors.ErrCodeInvalidConfig, errors.GetCode(err))
}

func TestSortPool(t *testing.T) {
	pool := func() []Texture {
		return []Texture{
			{Name: "a", Width: 10, Height: 50},
			{Name: "b", Width: 40, Height: 20},
			{Name: "c", Width: 30, Height: 30},
		}
	}

	names := func(p []Texture) []string {
		out := make([]string, len(p))
		for i, tex := range p {
			out[i] = tex.Name
		}
		return out
	}

	p := pool()
	SortPool(p, SortNone)
	require.Equal(t, []string{"a", "b", "c"}, names(p))

	p = pool()
	SortPool(p, SortWidth)
	require.Equal(t, []string{"b", "c", "a"}, names(p))

	p = pool()
	SortPool(p, SortHeight)
	require.Equal(t, []string{"a", "c", "b"}, names(p))

	p = pool()
	SortPool(p, SortArea)
	require.Equal(t, []string{"c", "b", "a"}, names(p))

	p = pool()
	SortPool(p, SortMaxSide)
	require.Equal(t, []string{"a", "b", "c"}, names(p))
}

func TestSortPoolStable(t *testing.T) {
	pool := []Texture{
		{Name: "first", Width: 10, Height: 10},
		{Name: "second", Width: 10, Height: 10},
	}
	SortPool(pool, SortArea)
	require.Equal(t, "first", pool[0].Name)
	require.Equal(t, "second", pool[1].Name)
}
