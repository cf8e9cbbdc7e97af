package manifest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/texpack/texpack/pkg/atlas"
	"github.com/texpack/texpack/pkg/errors"
)

func testResult() atlas.Result {
	hero := atlas.Texture{Name: "hero.png", Width: 30, Height: 40, Trim: atlas.Padding{Left: 1, Top: 2}}
	coin := atlas.Texture{Name: "coin.png", Width: 8, Height: 8}
	huge := atlas.Texture{Name: "huge.png", Width: 5000, Height: 5000}

	return atlas.Result{
		Atlases: []atlas.Atlas{
			{
				Width:  64,
				Height: 64,
				Nodes: []atlas.Node{
					{Bounds: atlas.Rect{X: 0, Y: 0, W: 30, H: 40}, Texture: &hero},
					{Bounds: atlas.Rect{X: 30, Y: 0, W: 8, H: 8}, Texture: &coin},
				},
			},
		},
		Skipped: []atlas.Skipped{
			{Texture: huge, Err: errors.New(errors.ErrCodeOversizedTexture, "too big")},
		},
	}
}

func TestNew(t *testing.T) {
	m := New(testResult(), Options{MaxSize: 64, Format: "png", Prefix: "atlas"}, func(i int) string {
		return fmt.Sprintf("atlas%03d.png", i)
	})

	if m.RunID == "" {
		t.Error("RunID should be set")
	}
	if m.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if len(m.Atlases) != 1 {
		t.Fatalf("atlases = %d, want 1", len(m.Atlases))
	}

	a := m.Atlases[0]
	if a.File != "atlas000.png" {
		t.Errorf("File = %q, want atlas000.png", a.File)
	}
	if len(a.Sprites) != 2 {
		t.Fatalf("sprites = %d, want 2", len(a.Sprites))
	}
	if s := a.Sprites[0]; s.Name != "hero.png" || s.W != 30 || s.H != 40 || s.Trim.Left != 1 {
		t.Errorf("unexpected first sprite: %+v", s)
	}

	if len(m.Skipped) != 1 {
		t.Fatalf("skipped = %d, want 1", len(m.Skipped))
	}
	if sk := m.Skipped[0]; sk.Name != "huge.png" || sk.Reason != "too big" {
		t.Errorf("unexpected skip record: %+v", sk)
	}
}

func TestWriteReadRoundtrip(t *testing.T) {
	m := New(testResult(), Options{MaxSize: 64}, func(i int) string { return "a000.png" })

	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if back.RunID != m.RunID {
		t.Errorf("RunID = %q, want %q", back.RunID, m.RunID)
	}
	if len(back.Atlases) != 1 || len(back.Atlases[0].Sprites) != 2 {
		t.Errorf("roundtrip lost placements: %+v", back.Atlases)
	}
}

func TestReadRejectsBadNames(t *testing.T) {
	raw := `{"atlases":[{"index":0,"sprites":[{"name":"../evil.png","x":0,"y":0,"w":1,"h":1}]}]}`
	_, err := Read(strings.NewReader(raw))
	if err == nil {
		t.Fatal("expected error for path traversal in sprite name")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}
}

func TestExportImport(t *testing.T) {
	m := New(testResult(), Options{MaxSize: 64}, func(i int) string { return "a000.png" })
	path := filepath.Join(t.TempDir(), "atlas.json")

	if err := Export(m, path); err != nil {
		t.Fatalf("Export: %v", err)
	}
	back, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if back.RunID != m.RunID {
		t.Errorf("RunID = %q, want %q", back.RunID, m.RunID)
	}

	if _, err := Import(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestToAtlas(t *testing.T) {
	a := Atlas{
		Width:  64,
		Height: 64,
		Sprites: []Sprite{
			{Name: "hero.png", X: 2, Y: 3, W: 30, H: 40, Trim: atlas.Padding{Top: 1}},
		},
	}

	core := a.ToAtlas()
	if core.Width != 64 || core.Height != 64 {
		t.Errorf("size = %dx%d, want 64x64", core.Width, core.Height)
	}
	if len(core.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(core.Nodes))
	}
	n := core.Nodes[0]
	if n.Bounds != (atlas.Rect{X: 2, Y: 3, W: 30, H: 40}) {
		t.Errorf("bounds = %v", n.Bounds)
	}
	if n.Texture == nil || n.Texture.Name != "hero.png" || n.Texture.Trim.Top != 1 {
		t.Errorf("texture = %+v", n.Texture)
	}
}

func TestFillRate(t *testing.T) {
	a := Atlas{Width: 10, Height: 10, Sprites: []Sprite{{W: 5, H: 10}}}
	if got := a.FillRate(); got != 0.5 {
		t.Errorf("FillRate = %v, want 0.5", got)
	}
	if got := (Atlas{}).FillRate(); got != 0 {
		t.Errorf("empty FillRate = %v, want 0", got)
	}
}
