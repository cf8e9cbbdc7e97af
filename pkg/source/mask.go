package source

import "image"

// alphaMask adapts a decoded image to the packer's opacity mask. A pixel
// counts as opaque when its alpha exceeds the threshold, mirroring the
// crop-threshold behavior of typical sprite packers.
type alphaMask struct {
	img       image.Image
	threshold uint32 // 16-bit alpha space, as returned by RGBA()
}

// NewAlphaMask wraps img as an opacity mask. threshold is in 8-bit alpha
// space: a pixel is opaque when alpha > threshold. Threshold 0 treats
// every non-zero alpha as opaque.
func NewAlphaMask(img image.Image, threshold uint8) alphaMask {
	return alphaMask{img: img, threshold: uint32(threshold) << 8}
}

// Size returns the image dimensions.
func (m alphaMask) Size() (int, int) {
	b := m.img.Bounds()
	return b.Dx(), b.Dy()
}

// Opaque reports whether the pixel at (x, y) exceeds the alpha threshold.
// Coordinates are relative to the image bounds origin.
func (m alphaMask) Opaque(x, y int) bool {
	b := m.img.Bounds()
	_, _, _, a := m.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return a > m.threshold
}
