package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/texpack/texpack/pkg/errors"
	"github.com/texpack/texpack/pkg/pipeline"
)

// packCommand creates the pack command, the main entry point of the tool.
func (c *CLI) packCommand() *cobra.Command {
	var (
		configPath string
		noCache    bool
		noManifest bool
		redisURL   string
	)
	flags := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "pack [input-dir]",
		Short: "Pack a directory of images into texture atlases",
		Long: `Pack a directory of images into texture atlases.

The pack command scans the input directory recursively for images
(PNG, JPEG, GIF, BMP, TIFF, WebP), optionally trims transparent
borders, and packs everything into as few atlases as possible. Each
atlas is written as <prefix>NNN.<format> alongside a JSON manifest
describing every placement.

Options can also be supplied via a TOML config file (--config);
command-line flags override config file values.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, &opts, flags)
			if len(args) == 1 {
				opts.InputDir = args[0]
			}
			if noManifest {
				opts.Manifest = false
			}
			return c.runPack(cmd, opts, noCache, redisURL)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&flags.OutputDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&flags.Prefix, "prefix", pipeline.DefaultPrefix, "atlas filename prefix")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", pipeline.DefaultFormat, "output image format: png (default), jpg")
	cmd.Flags().IntVar(&flags.MaxSize, "max-size", 0, "maximum atlas dimension in pixels (default 2048)")
	cmd.Flags().IntVar(&flags.Padding, "padding", 0, "padding between placed textures in pixels")
	cmd.Flags().StringVar(&flags.Heuristic, "heuristic", pipeline.DefaultHeuristic, "best-fit scoring: area (default), maxaxis")
	cmd.Flags().StringVar(&flags.Sort, "sort", pipeline.DefaultSort, "pool pre-sort: none (default), width, height, area, maxside")
	cmd.Flags().BoolVar(&flags.Trim, "trim", false, "trim transparent borders before packing")
	cmd.Flags().Uint8Var(&flags.AlphaThreshold, "alpha-threshold", 0, "alpha value at or below which a pixel counts as transparent")
	cmd.Flags().StringVar(&flags.Background, "background", pipeline.DefaultBackground, "atlas background color: transparent, #RRGGBB, #RRGGBBAA")
	cmd.Flags().IntVar(&flags.Workers, "workers", 0, "parallel image decoders (default: number of CPUs)")
	cmd.Flags().BoolVar(&noManifest, "no-manifest", false, "skip writing the JSON manifest")
	cmd.Flags().BoolVar(&flags.Refresh, "refresh", false, "ignore cached results and re-pack")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for a shared cache (e.g. redis://localhost:6379/0)")

	return cmd
}

// runPack executes the pipeline and reports the results.
func (c *CLI) runPack(cmd *cobra.Command, opts pipeline.Options, noCache bool, redisURL string) error {
	runner, err := c.newRunner(cmd, noCache, redisURL)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	ctx := cmd.Context()
	opts.Logger = loggerFromContext(ctx)

	prog := newProgress(opts.Logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Packing %s...", opts.InputDir))
	spinner.Start()

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Packing failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Packed %d textures", res.Stats.TextureCount))

	printSuccess("Packed %d atlases", len(res.Manifest.Atlases))
	printStats(res.Stats.TextureCount, res.Stats.AtlasCount, res.Stats.SkippedCount, res.CacheHit)
	for _, a := range res.Manifest.Atlases {
		printDetail("%s  %dx%d  %d sprites  %.1f%% fill", a.File, a.Width, a.Height, len(a.Sprites), a.FillRate()*100)
	}
	for _, s := range res.Manifest.Skipped {
		printWarning("skipped %s (%dx%d): %s", s.Name, s.Width, s.Height, s.Reason)
	}
	for _, path := range res.Paths {
		printFile(path)
	}
	if opts.Manifest {
		printNextStep("Inspect the result", fmt.Sprintf("%s inspect %s/%s.json", appName, opts.OutputDir, opts.Prefix))
	}
	return nil
}

// loadConfig reads a TOML config file into pipeline options. An empty
// path returns defaults.
func loadConfig(path string) (pipeline.Options, error) {
	opts := pipeline.Options{Manifest: true}
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return opts, nil
}

// applyFlagOverrides copies flag values over config file values, but
// only for flags the user actually set.
func applyFlagOverrides(cmd *cobra.Command, opts *pipeline.Options, flags pipeline.Options) {
	overrides := map[string]func(){
		"out":             func() { opts.OutputDir = flags.OutputDir },
		"prefix":          func() { opts.Prefix = flags.Prefix },
		"format":          func() { opts.Format = flags.Format },
		"max-size":        func() { opts.MaxSize = flags.MaxSize },
		"padding":         func() { opts.Padding = flags.Padding },
		"heuristic":       func() { opts.Heuristic = flags.Heuristic },
		"sort":            func() { opts.Sort = flags.Sort },
		"trim":            func() { opts.Trim = flags.Trim },
		"alpha-threshold": func() { opts.AlphaThreshold = flags.AlphaThreshold },
		"background":      func() { opts.Background = flags.Background },
		"workers":         func() { opts.Workers = flags.Workers },
		"refresh":         func() { opts.Refresh = flags.Refresh },
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	if opts.OutputDir == "" {
		opts.OutputDir = flags.OutputDir
	}
}
