package cache

// PackKeyOpts carries every packing option that affects layout, so that
// two runs with different options never share a cache entry.
type PackKeyOpts struct {
	MaxSize        int
	Padding        int
	Heuristic      string
	Sort           string
	Trim           bool
	AlphaThreshold int
}

// ArtifactKeyOpts distinguishes encoded atlas images of the same run.
type ArtifactKeyOpts struct {
	Index      int
	Format     string
	Background string
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// PackKey generates a key for a pack manifest. inputsHash is the
	// combined content hash of all input files in pool order.
	PackKey(inputsHash string, opts PackKeyOpts) string

	// ArtifactKey generates a key for one encoded atlas image.
	// packHash is the content hash of the pack manifest.
	ArtifactKey(packHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PackKey generates a key for a pack manifest.
func (k *DefaultKeyer) PackKey(inputsHash string, opts PackKeyOpts) string {
	return hashKey("pack", inputsHash, opts)
}

// ArtifactKey generates a key for one encoded atlas image.
func (k *DefaultKeyer) ArtifactKey(packHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", packHash, opts)
}
