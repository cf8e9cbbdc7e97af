package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/texpack/texpack/pkg/atlas"
	"github.com/texpack/texpack/pkg/manifest"
)

// treeCommand creates the tree command for visualizing placement maps.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		index  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "tree [manifest.json]",
		Short: "Visualize an atlas placement map as DOT, SVG, or PNG",
		Long: `Visualize an atlas placement map as DOT, SVG, or PNG.

The tree command reads a manifest (produced by 'pack') and emits the
placement map of one atlas as a Graphviz digraph: the atlas as root,
placed sprites chained in placement order.

By default the DOT source is printed to stdout. With --output the
result is written to a file; a .svg or .png extension selects in-process
Graphviz rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Import(args[0])
			if err != nil {
				return err
			}
			if index < 0 || index >= len(m.Atlases) {
				return fmt.Errorf("atlas index %d out of range (manifest has %d)", index, len(m.Atlases))
			}
			a := m.Atlases[index].ToAtlas()

			if output == "" {
				fmt.Print(atlas.ToDOT(a))
				return nil
			}

			var data []byte
			switch strings.ToLower(filepath.Ext(output)) {
			case ".svg":
				data, err = atlas.RenderSVG(cmd.Context(), a)
			case ".png":
				data, err = atlas.RenderPNG(cmd.Context(), a)
			default:
				data = []byte(atlas.ToDOT(a))
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Wrote placement map")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "atlas", 0, "atlas index within the manifest")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot, .svg, or .png); stdout when omitted")

	return cmd
}
