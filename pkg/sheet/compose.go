// Package sheet composes packed atlases into pixel buffers. The packing
// core only computes geometry; this package copies the trimmed region of
// each source image to its placed offset and fills the unused remainder
// with a sentinel background color.
package sheet

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/texpack/texpack/pkg/atlas"
	"github.com/texpack/texpack/pkg/errors"
)

// Compose renders one packed atlas. sources maps texture names to their
// decoded source images; every placed node must have an entry. The
// buffer is filled with bg first, so regions not covered by any texture
// keep the sentinel color.
func Compose(a atlas.Atlas, sources map[string]image.Image, bg color.Color) (*image.NRGBA, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, a.Width, a.Height))
	if bg != nil && bg != color.Transparent {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	for _, n := range a.Nodes {
		if n.Texture == nil {
			continue
		}
		tex := n.Texture

		src, ok := sources[tex.Name]
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "no source image for texture %s", tex.Name)
		}

		// Crop to the trimmed region in source coordinates.
		b := src.Bounds()
		crop := image.Rect(
			b.Min.X+tex.Trim.Left,
			b.Min.Y+tex.Trim.Top,
			b.Min.X+tex.Trim.Left+tex.Width,
			b.Min.Y+tex.Trim.Top+tex.Height,
		)
		cropped := imaging.Crop(src, crop)

		target := image.Rect(n.Bounds.X, n.Bounds.Y, n.Bounds.Right(), n.Bounds.Bottom())
		draw.Draw(dst, target, cropped, image.Point{}, draw.Src)
	}
	return dst, nil
}
