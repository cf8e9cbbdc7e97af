package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple projects can share
// one cache backend (a single Redis instance on a CI runner, typically)
// without colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "game-assets:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PackKey generates a prefixed key for a pack manifest.
func (k *ScopedKeyer) PackKey(inputsHash string, opts PackKeyOpts) string {
	return k.prefix + k.inner.PackKey(inputsHash, opts)
}

// ArtifactKey generates a prefixed key for an encoded atlas image.
func (k *ScopedKeyer) ArtifactKey(packHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(packHash, opts)
}
