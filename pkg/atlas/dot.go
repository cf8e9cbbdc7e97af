package atlas

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT renders an atlas's placement map as a Graphviz DOT digraph for
// debugging. The atlas is the root; each placed node hangs off it with
// its name and bounds, in placement order. The resulting DOT can be
// rendered to SVG or PNG with the tree command.
func ToDOT(a Atlas) string {
	var buf bytes.Buffer
	buf.WriteString("digraph atlas {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  root [label=\"atlas %dx%d\\nfill %.1f%%\", fillcolor=lightgrey];\n",
		a.Width, a.Height, a.FillRate()*100)

	for i, n := range a.Nodes {
		label := fmt.Sprintf("%s\\n%s", nodeName(n), n.Bounds)
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", i, label)
	}

	buf.WriteString("\n")
	for i := range a.Nodes {
		if i == 0 {
			fmt.Fprintf(&buf, "  root -> n%d;\n", i)
			continue
		}
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", i-1, i)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the atlas placement map as an SVG image.
func RenderSVG(ctx context.Context, a Atlas) ([]byte, error) {
	return render(ctx, a, graphviz.SVG)
}

// RenderPNG renders the atlas placement map as a PNG image.
func RenderPNG(ctx context.Context, a Atlas) ([]byte, error) {
	return render(ctx, a, graphviz.PNG)
}

// render generates DOT via ToDOT and renders it in-process with
// Graphviz. Errors are returned if Graphviz cannot initialize, the
// DOT is malformed, or rendering fails.
func render(ctx context.Context, a Atlas, format graphviz.Format) ([]byte, error) {
	dot := ToDOT(a)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func nodeName(n Node) string {
	if n.Texture == nil {
		return "(free)"
	}
	return n.Texture.Name
}
