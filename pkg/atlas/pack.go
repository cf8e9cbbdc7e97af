// Package atlas implements the texture packing core: alpha trimming,
// best-fit placement with recursive free-space splitting, atlas size
// search, and the multi-atlas overflow loop.
//
// The core is pure and single-threaded. It consumes a pool of trimmed
// texture records and produces an ordered list of atlases whose placed
// nodes never overlap and always lie within the atlas bounds. Decoding
// source images, compositing pixels, and encoding the finished sheets
// are external concerns (see pkg/source and pkg/sheet).
//
// Packing is deterministic: the same pool in the same order with the
// same options always yields identical atlases.
package atlas

import "github.com/texpack/texpack/pkg/errors"

// Options configures a packing run. The zero value is not valid; use
// DefaultOptions or fill in MaxSize explicitly.
type Options struct {
	// MaxSize is the width and height of a full atlas. Must be > 0.
	MaxSize int

	// Padding is the pixel gap reserved between adjacent textures.
	Padding int

	// Heuristic selects the best-fit scoring function.
	Heuristic Heuristic

	// Sort optionally pre-sorts the pool before packing.
	Sort SortOrder
}

// DefaultMaxSize matches the common GPU texture size limit used as the
// default atlas extent.
const DefaultMaxSize = 2048

// DefaultOptions returns the default packing configuration.
func DefaultOptions() Options {
	return Options{
		MaxSize:   DefaultMaxSize,
		Padding:   0,
		Heuristic: HeuristicArea,
		Sort:      SortNone,
	}
}

// Validate rejects configurations the packer cannot run with.
func (o Options) Validate() error {
	if o.MaxSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max atlas size must be positive, got %d", o.MaxSize)
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding must be non-negative, got %d", o.Padding)
	}
	if o.Heuristic != HeuristicArea && o.Heuristic != HeuristicMaxOneAxis {
		return errors.New(errors.ErrCodeInvalidHeuristic, "unknown heuristic value %d", o.Heuristic)
	}
	return nil
}

// Atlas is one packed sheet: final dimensions plus the ordered placed
// nodes. Free nodes are not retained after layout completes.
type Atlas struct {
	Width  int
	Height int
	Nodes  []Node
}

// Used returns the total area covered by placed textures.
func (a Atlas) Used() int {
	var sum int
	for _, n := range a.Nodes {
		sum += n.Bounds.Area()
	}
	return sum
}

// FillRate returns the fraction of the atlas covered by textures.
func (a Atlas) FillRate() float64 {
	if a.Width == 0 || a.Height == 0 {
		return 0
	}
	return float64(a.Used()) / float64(a.Width*a.Height)
}

// Skipped records a texture excluded from packing, with the reason.
type Skipped struct {
	Texture Texture
	Err     error
}

// Result is the outcome of a packing run. Atlases are ordered; every
// non-skipped input texture is placed in exactly one of them.
type Result struct {
	Atlases []Atlas
	Skipped []Skipped
}

// Placed returns the total number of placed textures across all atlases.
func (r Result) Placed() int {
	var n int
	for _, a := range r.Atlases {
		n += len(a.Nodes)
	}
	return n
}

// Pack packs pool into as few atlases as possible. Textures whose
// untrimmed size exceeds MaxSize on either axis are skipped and reported
// in the result; everything else is placed. The final atlas is shrunk by
// the size search to the tightest halving that still holds its content.
//
// Pack never mutates pool. It returns a fatal error only for invalid
// options; oversized inputs are non-fatal and packing continues with
// the remaining textures.
func Pack(pool []Texture, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	accepted := make([]Texture, 0, len(pool))
	for _, tex := range pool {
		if tex.OriginalWidth() > opts.MaxSize || tex.OriginalHeight() > opts.MaxSize {
			res.Skipped = append(res.Skipped, Skipped{
				Texture: tex,
				Err: errors.New(errors.ErrCodeOversizedTexture,
					"%s is %dx%d, exceeds max atlas size %d",
					tex.Name, tex.OriginalWidth(), tex.OriginalHeight(), opts.MaxSize),
			})
			continue
		}
		accepted = append(accepted, tex)
	}
	SortPool(accepted, opts.Sort)

	for len(accepted) > 0 {
		placed, leftovers := layoutAtlas(accepted, opts.MaxSize, opts.MaxSize, opts)
		if len(placed) == 0 {
			// Cannot happen for accepted textures: anything within
			// MaxSize fits the root node of an empty atlas.
			return res, errors.New(errors.ErrCodeInternal,
				"layout made no progress with %d textures remaining", len(accepted))
		}

		w, h := opts.MaxSize, opts.MaxSize
		if len(leftovers) == 0 {
			// Terminal atlas: everything fit, so it may be oversized.
			placed, w, h = searchSize(accepted, w, h, opts)
		}

		res.Atlases = append(res.Atlases, Atlas{Width: w, Height: h, Nodes: placed})
		accepted = leftovers
	}
	return res, nil
}
