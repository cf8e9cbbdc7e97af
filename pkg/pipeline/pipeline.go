// Package pipeline provides the core packing pipeline for texpack.
//
// This package implements the complete scan → pack → compose → encode
// pipeline used by the CLI. By centralizing this logic, the individual
// commands stay thin and behavior is consistent across entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Scan: discover and decode input images, trim transparent borders
//  2. Pack: compute atlas placements (the pure core in pkg/atlas)
//  3. Compose: copy trimmed source pixels into atlas buffers
//  4. Encode: serialize buffers and the placement manifest to disk
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    InputDir:  "sprites",
//	    OutputDir: "out",
//	    MaxSize:   1024,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
package pipeline

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/texpack/texpack/pkg/atlas"
	"github.com/texpack/texpack/pkg/cache"
	"github.com/texpack/texpack/pkg/errors"
	"github.com/texpack/texpack/pkg/manifest"
	"github.com/texpack/texpack/pkg/sheet"
	"github.com/texpack/texpack/pkg/sheet/sink"
)

// Default values, the single source of truth for CLI flags and the TOML
// config file.
const (
	// DefaultPrefix is the atlas filename prefix.
	DefaultPrefix = "atlas"

	// DefaultFormat is the output image format.
	DefaultFormat = sink.FormatPNG

	// DefaultHeuristic is the best-fit scoring function.
	DefaultHeuristic = "area"

	// DefaultSort keeps the pool in scan order.
	DefaultSort = "none"

	// DefaultBackground is the sentinel fill for unused atlas regions.
	DefaultBackground = "transparent"
)

// Options contains all configuration for the packing pipeline.
type Options struct {
	// Scan options
	InputDir       string `toml:"input"`
	Trim           bool   `toml:"trim"`
	AlphaThreshold uint8  `toml:"alpha_threshold"`
	Workers        int    `toml:"workers"`

	// Pack options
	MaxSize   int    `toml:"max_size"`
	Padding   int    `toml:"padding"`
	Heuristic string `toml:"heuristic"`
	Sort      string `toml:"sort"`

	// Output options
	OutputDir  string `toml:"output"`
	Prefix     string `toml:"prefix"`
	Format     string `toml:"format"`
	Background string `toml:"background"`
	Manifest   bool   `toml:"manifest"`

	// Refresh bypasses cache reads, forcing a full re-pack.
	Refresh bool `toml:"-"`

	// Logger receives structured progress output.
	Logger *log.Logger `toml:"-"`

	// Resolved during validation.
	heuristic  atlas.Heuristic
	sortOrder  atlas.SortOrder
	background color.Color
	validated  bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Invalid heuristic, sort, format, or color values are fatal here,
// before any layout work starts. The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.InputDir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "input directory is required")
	}
	if o.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output directory is required")
	}
	if o.MaxSize == 0 {
		o.MaxSize = atlas.DefaultMaxSize
	}
	if o.MaxSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max atlas size must be positive, got %d", o.MaxSize)
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding must be non-negative, got %d", o.Padding)
	}

	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if err := errors.ValidateOutputPrefix(o.Prefix); err != nil {
		return err
	}

	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := sink.ValidateFormat(o.Format); err != nil {
		return err
	}

	if o.Heuristic == "" {
		o.Heuristic = DefaultHeuristic
	}
	h, err := atlas.ParseHeuristic(o.Heuristic)
	if err != nil {
		return err
	}
	o.heuristic = h

	if o.Sort == "" {
		o.Sort = DefaultSort
	}
	s, err := atlas.ParseSortOrder(o.Sort)
	if err != nil {
		return err
	}
	o.sortOrder = s

	if o.Background == "" {
		o.Background = DefaultBackground
	}
	bg, err := sheet.ParseColor(o.Background)
	if err != nil {
		return err
	}
	o.background = bg

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// PackOptions returns the resolved packing-core options.
// ValidateAndSetDefaults must have been called.
func (o *Options) PackOptions() atlas.Options {
	return atlas.Options{
		MaxSize:   o.MaxSize,
		Padding:   o.Padding,
		Heuristic: o.heuristic,
		Sort:      o.sortOrder,
	}
}

// Background returns the resolved sentinel color.
func (o *Options) BackgroundColor() color.Color {
	return o.background
}

// ManifestOptions returns the option record embedded in manifests.
func (o *Options) ManifestOptions() manifest.Options {
	return manifest.Options{
		MaxSize:        o.MaxSize,
		Padding:        o.Padding,
		Heuristic:      o.Heuristic,
		Sort:           o.Sort,
		Trim:           o.Trim,
		AlphaThreshold: o.AlphaThreshold,
		Format:         o.Format,
		Prefix:         o.Prefix,
		Background:     o.Background,
	}
}

// PackKeyOpts returns the cache key options for this configuration.
func (o *Options) PackKeyOpts() cache.PackKeyOpts {
	return cache.PackKeyOpts{
		MaxSize:        o.MaxSize,
		Padding:        o.Padding,
		Heuristic:      o.Heuristic,
		Sort:           o.Sort,
		Trim:           o.Trim,
		AlphaThreshold: int(o.AlphaThreshold),
	}
}

// ArtifactKeyOpts returns the cache key options for atlas index.
func (o *Options) ArtifactKeyOpts(index int) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Index:      index,
		Format:     o.Format,
		Background: o.Background,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Manifest is the full placement record of the run.
	Manifest manifest.Manifest

	// Paths lists the files written, atlases first, manifest last.
	Paths []string

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the encoded atlases came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TextureCount int
	AtlasCount   int
	SkippedCount int
	ScanTime     time.Duration
	PackTime     time.Duration
	ComposeTime  time.Duration
	EncodeTime   time.Duration
}
