package pipeline

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/texpack/texpack/pkg/cache"
	"github.com/texpack/texpack/pkg/errors"
	"github.com/texpack/texpack/pkg/manifest"
)

// writeSprite writes a w x h PNG with an opaque patch in the middle.
func writeSprite(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			img.SetNRGBA(x, y, color.NRGBA{B: 0xff, A: 0xff})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func testOptions(t *testing.T) Options {
	in := t.TempDir()
	writeSprite(t, filepath.Join(in, "hero.png"), 16, 16)
	writeSprite(t, filepath.Join(in, "coin.png"), 8, 8)

	return Options{
		InputDir:  in,
		OutputDir: t.TempDir(),
		MaxSize:   64,
		Manifest:  true,
	}
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(cache.NewNullCache(), nil, nil)
	defer r.Close()

	opts := testOptions(t)
	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.CacheHit {
		t.Error("first run should not be a cache hit")
	}
	if res.Stats.TextureCount != 2 {
		t.Errorf("TextureCount = %d, want 2", res.Stats.TextureCount)
	}
	if res.Stats.AtlasCount != 1 {
		t.Errorf("AtlasCount = %d, want 1", res.Stats.AtlasCount)
	}

	// One atlas image plus the manifest.
	if len(res.Paths) != 2 {
		t.Fatalf("Paths = %v, want 2 entries", res.Paths)
	}
	for _, path := range res.Paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output missing: %v", err)
		}
	}

	m, err := manifest.Import(filepath.Join(opts.OutputDir, "atlas.json"))
	if err != nil {
		t.Fatalf("Import manifest: %v", err)
	}
	if len(m.Atlases) != 1 || len(m.Atlases[0].Sprites) != 2 {
		t.Errorf("manifest placements = %+v", m.Atlases)
	}
	if m.Atlases[0].File != "atlas000.png" {
		t.Errorf("atlas file = %q, want atlas000.png", m.Atlases[0].File)
	}
}

func TestRunnerCacheHit(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(store, nil, nil)
	defer r.Close()

	opts := testOptions(t)
	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheHit {
		t.Error("first run should compute")
	}

	// Same inputs and options in a fresh output dir.
	opts.OutputDir = t.TempDir()
	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheHit {
		t.Error("second run should hit the cache")
	}
	if second.Manifest.RunID != first.Manifest.RunID {
		t.Error("cached run should reuse the original manifest")
	}
	for _, path := range second.Paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("cached output missing: %v", err)
		}
	}
}

func TestRunnerRefreshBypassesCache(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(store, nil, nil)
	defer r.Close()

	opts := testOptions(t)
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	opts.Refresh = true
	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit {
		t.Error("refresh run should not use the cache")
	}
}

func TestRunnerOptionChangeMissesCache(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(store, nil, nil)
	defer r.Close()

	opts := testOptions(t)
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	changed := opts
	changed.Padding = 4
	res, err := r.Execute(context.Background(), changed)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit {
		t.Error("changed options must invalidate the cache")
	}
}

func TestRunnerEmptyInput(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{
		InputDir:  t.TempDir(),
		OutputDir: t.TempDir(),
	})
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeNotFound)
	}
}
