// Package manifest serializes the result of a packing run as JSON. The
// manifest records every placement with enough detail for an engine to
// look up sprites at runtime, and can be re-imported by the serve,
// inspect, and tree commands.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/texpack/texpack/pkg/atlas"
	"github.com/texpack/texpack/pkg/errors"
)

// Options records the configuration a manifest was produced with.
type Options struct {
	MaxSize        int    `json:"max_size"`
	Padding        int    `json:"padding"`
	Heuristic      string `json:"heuristic"`
	Sort           string `json:"sort,omitempty"`
	Trim           bool   `json:"trim"`
	AlphaThreshold uint8  `json:"alpha_threshold,omitempty"`
	Format         string `json:"format"`
	Prefix         string `json:"prefix"`
	Background     string `json:"background,omitempty"`
}

// Sprite is one placed texture within an atlas.
type Sprite struct {
	Name string        `json:"name"`
	X    int           `json:"x"`
	Y    int           `json:"y"`
	W    int           `json:"w"`
	H    int           `json:"h"`
	Trim atlas.Padding `json:"trim"`
}

// Atlas describes one output sheet and its placements.
type Atlas struct {
	Index   int      `json:"index"`
	File    string   `json:"file"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Sprites []Sprite `json:"sprites"`
}

// FillRate returns the fraction of the atlas covered by sprites.
func (a Atlas) FillRate() float64 {
	if a.Width == 0 || a.Height == 0 {
		return 0
	}
	var used int
	for _, s := range a.Sprites {
		used += s.W * s.H
	}
	return float64(used) / float64(a.Width*a.Height)
}

// Skip records a texture excluded from packing.
type Skip struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Reason string `json:"reason"`
}

// Manifest is the full record of one packing run.
type Manifest struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	Options   Options   `json:"options"`
	Atlases   []Atlas   `json:"atlases"`
	Skipped   []Skip    `json:"skipped,omitempty"`
}

// New builds a manifest from a packing result. fileFor maps an atlas
// index to its output filename.
func New(res atlas.Result, opts Options, fileFor func(index int) string) Manifest {
	m := Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Options:   opts,
	}

	for i, a := range res.Atlases {
		ma := Atlas{
			Index:   i,
			File:    fileFor(i),
			Width:   a.Width,
			Height:  a.Height,
			Sprites: make([]Sprite, 0, len(a.Nodes)),
		}
		for _, n := range a.Nodes {
			if n.Texture == nil {
				continue
			}
			ma.Sprites = append(ma.Sprites, Sprite{
				Name: n.Texture.Name,
				X:    n.Bounds.X,
				Y:    n.Bounds.Y,
				W:    n.Bounds.W,
				H:    n.Bounds.H,
				Trim: n.Texture.Trim,
			})
		}
		m.Atlases = append(m.Atlases, ma)
	}

	for _, s := range res.Skipped {
		m.Skipped = append(m.Skipped, Skip{
			Name:   s.Texture.Name,
			Width:  s.Texture.OriginalWidth(),
			Height: s.Texture.OriginalHeight(),
			Reason: errors.UserMessage(s.Err),
		})
	}
	return m
}

// ToAtlas rebuilds the packing-core view of one manifest atlas, for
// tools that re-process placements (the tree command, invariant checks).
func (a Atlas) ToAtlas() atlas.Atlas {
	out := atlas.Atlas{Width: a.Width, Height: a.Height}
	for _, s := range a.Sprites {
		tex := atlas.Texture{Name: s.Name, Width: s.W, Height: s.H, Trim: s.Trim}
		out.Nodes = append(out.Nodes, atlas.Node{
			Bounds:  atlas.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H},
			Texture: &tex,
		})
	}
	return out
}

// Write encodes the manifest as indented JSON to w.
func (m Manifest) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// Export writes the manifest to a JSON file at path.
func Export(m Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return m.Write(f)
}

// Read decodes a manifest from r.
func Read(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	for _, a := range m.Atlases {
		for _, s := range a.Sprites {
			if err := errors.ValidateTextureName(s.Name); err != nil {
				return Manifest{}, fmt.Errorf("atlas %d: %w", a.Index, err)
			}
		}
	}
	return m, nil
}

// Import reads a manifest JSON file at path.
func Import(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
