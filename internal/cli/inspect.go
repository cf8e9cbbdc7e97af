package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/texpack/texpack/pkg/atlas"
	"github.com/texpack/texpack/pkg/manifest"
)

// inspectCommand creates the inspect command for browsing manifests.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [manifest.json]",
		Short: "Browse a manifest interactively in the terminal",
		Long: `Browse a manifest interactively in the terminal.

The inspect command opens a manifest (produced by 'pack') in a small
terminal UI: pick an atlas, then scroll through its sprites with their
positions, sizes, and trim amounts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Import(args[0])
			if err != nil {
				return err
			}
			model := NewManifestModel(m)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectView selects which screen the model renders.
type inspectView int

const (
	viewAtlases inspectView = iota
	viewSprites
)

// ManifestModel is the bubbletea model for manifest browsing. It has
// two screens: an atlas list and a sprite table for the chosen atlas.
type ManifestModel struct {
	Manifest manifest.Manifest

	view   inspectView
	cursor int // atlas cursor
	row    int // sprite cursor within the chosen atlas
	offset int // sprite table scroll offset
	height int
}

// NewManifestModel creates a model positioned on the first atlas.
func NewManifestModel(m manifest.Manifest) ManifestModel {
	return ManifestModel{Manifest: m, height: 15}
}

func (m ManifestModel) Init() tea.Cmd {
	return nil
}

func (m ManifestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.view == viewSprites {
				m.view = viewAtlases
				m.row = 0
				m.offset = 0
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			m.moveUp()
		case "down", "j":
			m.moveDown()
		case "enter":
			if m.view == viewAtlases && len(m.Manifest.Atlases) > 0 {
				m.view = viewSprites
				m.row = 0
				m.offset = 0
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m *ManifestModel) moveUp() {
	if m.view == viewAtlases {
		if m.cursor > 0 {
			m.cursor--
		}
		return
	}
	if m.row > 0 {
		m.row--
		if m.row < m.offset {
			m.offset = m.row
		}
	}
}

func (m *ManifestModel) moveDown() {
	if m.view == viewAtlases {
		if m.cursor < len(m.Manifest.Atlases)-1 {
			m.cursor++
		}
		return
	}
	sprites := m.Manifest.Atlases[m.cursor].Sprites
	if m.row < len(sprites)-1 {
		m.row++
		if m.row >= m.offset+m.height {
			m.offset = m.row - m.height + 1
		}
	}
}

func (m ManifestModel) View() string {
	if m.view == viewSprites {
		return m.spriteView()
	}
	return m.atlasView()
}

// atlasView renders the atlas selection list.
func (m ManifestModel) atlasView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Atlas"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, a := range m.Manifest.Atlases {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-20s %5dx%-5d %4d sprites  %5.1f%% fill",
			cursor, a.File, a.Width, a.Height, len(a.Sprites), a.FillRate()*100)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.Manifest.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(fmt.Sprintf("  %d textures skipped", len(m.Manifest.Skipped))))
		b.WriteString("\n")
		for _, s := range m.Manifest.Skipped {
			b.WriteString(listDimStyle.Render(fmt.Sprintf("    %s (%dx%d): %s", s.Name, s.Width, s.Height, s.Reason)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  run %s · created %s",
		m.Manifest.RunID, m.Manifest.CreatedAt.Format("2006-01-02 15:04"))))

	return b.String()
}

// spriteView renders the sprite table for the chosen atlas.
func (m ManifestModel) spriteView() string {
	a := m.Manifest.Atlases[m.cursor]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(a.File))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %dx%d · %.1f%% fill", a.Width, a.Height, a.FillRate()*100)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ scroll  esc back  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(a.Sprites) {
		end = len(a.Sprites)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		s := a.Sprites[i]
		cursor := "  "
		if i == m.row {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			s.Name,
			fmt.Sprintf("%d,%d", s.X, s.Y),
			fmt.Sprintf("%dx%d", s.W, s.H),
			formatTrim(s.Trim),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Sprite", "Pos", "Size", "Trim (L,T,R,B)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.row {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.row+1, len(a.Sprites))))

	return b.String()
}

// formatTrim renders a trim padding compactly, "-" when nothing was cut.
func formatTrim(p atlas.Padding) string {
	if p == (atlas.Padding{}) {
		return "-"
	}
	return fmt.Sprintf("%d,%d,%d,%d", p.Left, p.Top, p.Right, p.Bottom)
}
