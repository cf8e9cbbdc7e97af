package atlas

// Mask is a per-pixel opacity view of a source image. Implementations
// must be cheap to query; the trimmer scans rows and columns repeatedly.
type Mask interface {
	// Size returns the mask dimensions.
	Size() (w, h int)
	// Opaque reports whether the pixel at (x, y) is non-transparent.
	Opaque(x, y int) bool
}

// Trim computes the fully-transparent border of m and returns the
// padding to strip plus the trimmed width and height. The four sides are
// scanned independently; a degenerate (fully transparent) mask falls
// back to a centered split, and a zero trimmed dimension is bumped to 1
// so every texture occupies at least a 1x1 area in the atlas.
func Trim(m Mask) (Padding, int, int) {
	w, h := m.Size()
	pad := trimScan(m, w, h)

	tw := w - pad.Left - pad.Right
	th := h - pad.Top - pad.Bottom
	if tw == 0 {
		tw = 1
		pad.Right--
	}
	if th == 0 {
		th = 1
		pad.Bottom--
	}
	return pad, tw, th
}

// trimScan counts consecutive fully-transparent rows and columns from
// each edge. When the left and right scans overlap (the mask is fully
// transparent), both axes fall back to a centered split, which keeps
// every padding value valid without a separate vertical check.
func trimScan(m Mask, w, h int) Padding {
	var pad Padding

	for y := h - 1; y >= 0 && rowTransparent(m, w, y); y-- {
		pad.Bottom++
	}
	for y := 0; y < h && rowTransparent(m, w, y); y++ {
		pad.Top++
	}
	for x := w - 1; x >= 0 && colTransparent(m, h, x); x-- {
		pad.Right++
	}
	for x := 0; x < w && colTransparent(m, h, x); x++ {
		pad.Left++
	}

	if pad.Left+pad.Right > w {
		pad.Left = w / 2
		pad.Right = w - pad.Left
		pad.Top = h / 2
		pad.Bottom = h - pad.Top
	}
	return pad
}

func rowTransparent(m Mask, w, y int) bool {
	for x := 0; x < w; x++ {
		if m.Opaque(x, y) {
			return false
		}
	}
	return true
}

func colTransparent(m Mask, h, x int) bool {
	for y := 0; y < h; y++ {
		if m.Opaque(x, y) {
			return false
		}
	}
	return true
}
