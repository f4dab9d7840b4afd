package components

import (
	"fmt"
	"strings"

	"folio/internal/highlight"
	"folio/internal/page"
	"folio/internal/tui/styles"
	"folio/internal/viewer"

	"github.com/charmbracelet/lipgloss"
)

// Surface renders a display surface. Open files are highlighted by the
// extension of file; an empty file means the placeholder is showing.
// Tile placeholders render numbered so they can be picked with 1-9.
func Surface(s *page.Surface, file string, dark bool, width int) string {
	if s.ShowsTiles() {
		return tileGrid(s.Tiles())
	}

	text := strings.TrimRight(s.Text(), "\n")
	if file != "" && text != viewer.FallbackContent {
		text = strings.TrimRight(highlight.Code(file, text, highlight.StyleFor(dark)), "\n")
	}

	style := styles.Theme.Code
	if file == "" {
		style = style.Inherit(styles.Theme.Muted)
	}
	if w := width - style.GetHorizontalBorderSize(); w > 0 {
		style = style.Width(w)
	}
	return style.Render(text)
}

func tileGrid(tiles []page.Tile) string {
	cells := make([]string, len(tiles))
	for i, t := range tiles {
		cells[i] = styles.Theme.Tile.Render(fmt.Sprintf("%d %s", i+1, t.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
