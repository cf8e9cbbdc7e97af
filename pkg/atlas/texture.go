package atlas

import (
	"sort"

	"github.com/texpack/texpack/pkg/errors"
)

// Padding is the transparent border stripped from a source image by the
// trimmer, one count per side. All values are non-negative and satisfy
// Left+Right <= original width and Top+Bottom <= original height.
type Padding struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Texture describes one source image after alpha trimming. It is
// immutable: created once during scanning and consumed by placement.
type Texture struct {
	// Name identifies the source, typically a file path relative to the
	// input directory.
	Name string `json:"name"`

	// Width and Height are the trimmed dimensions, at least 1x1 each.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Trim is the border stripped from the original image. The original
	// size is Width+Trim.Left+Trim.Right by Height+Trim.Top+Trim.Bottom.
	Trim Padding `json:"trim"`
}

// Area returns the trimmed area in pixels.
func (t Texture) Area() int { return t.Width * t.Height }

// OriginalWidth returns the untrimmed source width.
func (t Texture) OriginalWidth() int { return t.Width + t.Trim.Left + t.Trim.Right }

// OriginalHeight returns the untrimmed source height.
func (t Texture) OriginalHeight() int { return t.Height + t.Trim.Top + t.Trim.Bottom }

// SortOrder selects an optional pre-sort of the texture pool before
// packing. Sorting is applied once, with a stable sort, so the pool's
// iteration order during layout stays deterministic.
type SortOrder uint8

const (
	// SortNone keeps the pool in insertion order.
	SortNone SortOrder = iota
	// SortWidth orders widest first.
	SortWidth
	// SortHeight orders tallest first.
	SortHeight
	// SortArea orders largest area first.
	SortArea
	// SortMaxSide orders by the longer side first, ties by area.
	SortMaxSide
)

var sortOrderNames = map[SortOrder]string{
	SortNone:    "none",
	SortWidth:   "width",
	SortHeight:  "height",
	SortArea:    "area",
	SortMaxSide: "maxside",
}

// String returns the flag spelling of the sort order.
func (s SortOrder) String() string {
	if n, ok := sortOrderNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseSortOrder converts a flag value into a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	for order, name := range sortOrderNames {
		if s == name {
			return order, nil
		}
	}
	return SortNone, errors.New(errors.ErrCodeInvalidConfig,
		"invalid sort order: %q (must be one of: none, width, height, area, maxside)", s)
}

// SortPool orders pool according to order, in place. The sort is stable:
// textures comparing equal keep their relative insertion order.
func SortPool(pool []Texture, order SortOrder) {
	if order == SortNone {
		return
	}
	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		switch order {
		case SortWidth:
			return a.Width > b.Width
		case SortHeight:
			return a.Height > b.Height
		case SortArea:
			return a.Area() > b.Area()
		case SortMaxSide:
			am, bm := max(a.Width, a.Height), max(b.Width, b.Height)
			if am != bm {
				return am > bm
			}
			return a.Area() > b.Area()
		}
		return false
	})
}
