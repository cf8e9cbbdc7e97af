package pipeline

import (
	"bytes"
	"context"
	"image"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/texpack/texpack/pkg/atlas"
	"github.com/texpack/texpack/pkg/cache"
	"github.com/texpack/texpack/pkg/errors"
	"github.com/texpack/texpack/pkg/manifest"
	"github.com/texpack/texpack/pkg/sheet"
	"github.com/texpack/texpack/pkg/sheet/sink"
	"github.com/texpack/texpack/pkg/source"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete scan → pack → compose → encode pipeline.
// Encoded atlases and the manifest are written to opts.OutputDir; when
// the cache holds artifacts for identical inputs and options, the pack
// and compose stages are skipped entirely.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Scan
	scanStart := time.Now()
	items, err := source.Scan(ctx, opts.InputDir, source.Options{
		Trim:           opts.Trim,
		AlphaThreshold: opts.AlphaThreshold,
		Workers:        opts.Workers,
		Logger:         opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "no images found under %s", opts.InputDir)
	}
	result.Stats.ScanTime = time.Since(scanStart)
	result.Stats.TextureCount = len(items)

	opts.Logger.Info("scanned textures",
		"count", len(items),
		"duration", result.Stats.ScanTime)

	packKey := r.Keyer.PackKey(source.PoolHash(items), opts.PackKeyOpts())

	// Cached artifacts short-circuit pack and compose.
	if !opts.Refresh {
		if res, ok := r.fromCache(ctx, packKey, opts); ok {
			res.Stats.ScanTime = result.Stats.ScanTime
			res.Stats.TextureCount = len(items)
			opts.Logger.Info("using cached atlases", "count", res.Stats.AtlasCount)
			return res, nil
		}
	}

	// Stage 2: Pack
	packStart := time.Now()
	pool := make([]atlas.Texture, len(items))
	sources := make(map[string]image.Image, len(items))
	for i, it := range items {
		pool[i] = it.Texture
		sources[it.Texture.Name] = it.Image
	}

	packed, err := atlas.Pack(pool, opts.PackOptions())
	if err != nil {
		return nil, err
	}
	for _, s := range packed.Skipped {
		opts.Logger.Warn("skipped texture", "name", s.Texture.Name, "reason", errors.UserMessage(s.Err))
	}
	result.Stats.PackTime = time.Since(packStart)
	result.Stats.AtlasCount = len(packed.Atlases)
	result.Stats.SkippedCount = len(packed.Skipped)

	opts.Logger.Info("packed textures",
		"atlases", len(packed.Atlases),
		"placed", packed.Placed(),
		"skipped", len(packed.Skipped),
		"duration", result.Stats.PackTime)

	result.Manifest = manifest.New(packed, opts.ManifestOptions(), func(i int) string {
		return sink.Filename(opts.Prefix, i, opts.Format)
	})

	// Stage 3 + 4: Compose and encode each atlas.
	composeStart := time.Now()
	artifacts := make([][]byte, len(packed.Atlases))
	for i, a := range packed.Atlases {
		img, err := sheet.Compose(a, sources, opts.BackgroundColor())
		if err != nil {
			return nil, err
		}
		data, err := sink.Encode(img, opts.Format)
		if err != nil {
			return nil, err
		}
		artifacts[i] = data

		opts.Logger.Debug("composed atlas",
			"index", i,
			"size", a.Width*a.Height,
			"fill", a.FillRate())
	}
	result.Stats.ComposeTime = time.Since(composeStart)

	encodeStart := time.Now()
	paths, err := r.writeOutputs(result.Manifest, artifacts, opts)
	if err != nil {
		return nil, err
	}
	result.Paths = paths
	result.Stats.EncodeTime = time.Since(encodeStart)

	r.store(ctx, packKey, result.Manifest, artifacts, opts)

	opts.Logger.Info("wrote outputs",
		"files", len(paths),
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// fromCache attempts to reconstruct a full result from cached artifacts.
// It returns ok only when the manifest and every atlas image are present.
func (r *Runner) fromCache(ctx context.Context, packKey string, opts Options) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, packKey)
	if err != nil || !hit {
		return nil, false
	}
	m, err := manifest.Read(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	manifestHash := cache.Hash(data)
	artifacts := make([][]byte, len(m.Atlases))
	for i := range m.Atlases {
		key := r.Keyer.ArtifactKey(manifestHash, opts.ArtifactKeyOpts(i))
		art, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			return nil, false
		}
		artifacts[i] = art
	}

	paths, err := r.writeOutputs(m, artifacts, opts)
	if err != nil {
		return nil, false
	}

	return &Result{
		Manifest: m,
		Paths:    paths,
		Stats: Stats{
			AtlasCount:   len(m.Atlases),
			SkippedCount: len(m.Skipped),
		},
		CacheHit: true,
	}, true
}

// store caches the manifest and the encoded atlases. Failures are
// ignored; the outputs are already on disk.
func (r *Runner) store(ctx context.Context, packKey string, m manifest.Manifest, artifacts [][]byte, opts Options) {
	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		return
	}
	data := buf.Bytes()
	_ = r.Cache.Set(ctx, packKey, data, cache.TTLPack)

	manifestHash := cache.Hash(data)
	for i, art := range artifacts {
		key := r.Keyer.ArtifactKey(manifestHash, opts.ArtifactKeyOpts(i))
		_ = r.Cache.Set(ctx, key, art, cache.TTLArtifact)
	}
}

// writeOutputs writes the atlas images and, when enabled, the manifest.
func (r *Runner) writeOutputs(m manifest.Manifest, artifacts [][]byte, opts Options) ([]string, error) {
	paths := make([]string, 0, len(artifacts)+1)
	for i, data := range artifacts {
		path, err := sink.WriteBytes(opts.OutputDir, opts.Prefix, i, opts.Format, data)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	if opts.Manifest {
		path := filepath.Join(opts.OutputDir, opts.Prefix+".json")
		if err := manifest.Export(m, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
