// Package source discovers and decodes the input images of a packing
// run. Decoding is parallel across files; the produced texture records
// preserve the deterministic walk order regardless of which worker
// finished first.
package source

import (
	"context"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/texpack/texpack/pkg/atlas"
	"github.com/texpack/texpack/pkg/cache"
	"github.com/texpack/texpack/pkg/errors"
)

// supportedExts lists the decodable image extensions. PNG, JPEG, and GIF
// come from the standard library; BMP, TIFF, and WebP via golang.org/x/image.
var supportedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// Options configures a scan.
type Options struct {
	// Trim strips fully-transparent borders from each texture.
	Trim bool

	// AlphaThreshold is the 8-bit alpha value above which a pixel counts
	// as opaque during trimming.
	AlphaThreshold uint8

	// Workers bounds the number of concurrent decodes. Zero means
	// runtime.NumCPU().
	Workers int

	// Logger receives per-file debug output. Nil disables logging.
	Logger *log.Logger
}

// Item is one scanned input: the trimmed texture record, the decoded
// pixels for later compositing, and the content hash of the source file.
type Item struct {
	Texture atlas.Texture
	Image   image.Image
	Hash    string
}

// Discover walks root and returns the relative paths of all supported
// images in deterministic (sorted) order.
func Discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !supportedExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scan %s", root)
	}
	sort.Strings(paths)
	return paths, nil
}

// Scan decodes every image under root, trims transparent borders when
// enabled, and returns the items in walk order. A file that fails to
// decode aborts the scan; partial pools would silently drop textures.
func Scan(ctx context.Context, root string, opts Options) ([]Item, error) {
	paths, err := Discover(root)
	if err != nil {
		return nil, err
	}
	return Load(ctx, root, paths, opts)
}

// Load decodes the given relative paths under root concurrently. The
// returned slice matches the order of paths.
func Load(ctx context.Context, root string, paths []string, opts Options) ([]Item, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	items := make([]Item, len(paths))
	errs := make([]error, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				items[i], errs[i] = loadOne(root, paths[i], opts)
			}
		}()
	}

	done := ctx.Done()
feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-done:
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func loadOne(root, rel string, opts Options) (Item, error) {
	path := filepath.Join(root, filepath.FromSlash(rel))

	data, err := os.ReadFile(path)
	if err != nil {
		return Item{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", rel)
	}

	img, err := Decode(data)
	if err != nil {
		return Item{}, errors.Wrap(errors.ErrCodeDecode, err, "decode %s", rel)
	}

	b := img.Bounds()
	tex := atlas.Texture{Name: rel, Width: b.Dx(), Height: b.Dy()}
	if opts.Trim {
		mask := NewAlphaMask(img, opts.AlphaThreshold)
		tex.Trim, tex.Width, tex.Height = atlas.Trim(mask)
	}

	if opts.Logger != nil {
		opts.Logger.Debug("scanned texture",
			"name", rel,
			"size", b.Dx()*b.Dy(),
			"trimmed", tex.Width*tex.Height)
	}

	return Item{Texture: tex, Image: img, Hash: cache.Hash(data)}, nil
}

// PoolHash combines the content hashes of all items, in pool order, into
// a single hash suitable for cache keys.
func PoolHash(items []Item) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(it.Hash)
	}
	return cache.Hash([]byte(sb.String()))
}
