package atlas

import "fmt"

// Rect is an axis-aligned rectangle in atlas coordinates.
// The zero value is an empty rectangle at the origin. Rect is a value
// type: placement and splitting never mutate an existing Rect, they
// produce new ones.
type Rect struct {
	X, Y int
	W, H int
}

// Area returns the rectangle's area in pixels.
func (r Rect) Area() int { return r.W * r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Right returns the exclusive right edge (X + W).
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge (Y + H).
func (r Rect) Bottom() int { return r.Y + r.H }

// Overlaps reports whether r and o share any interior area.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// In reports whether r lies entirely within o.
func (r Rect) In(o Rect) bool {
	return r.X >= o.X && r.Y >= o.Y &&
		r.Right() <= o.Right() && r.Bottom() <= o.Bottom()
}

// String returns the rectangle as "WxH+X+Y".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}
