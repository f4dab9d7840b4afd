package views

import (
	"strings"

	"folio/internal/tui/common"
	"folio/internal/tui/components"
	"folio/internal/tui/styles"
	"folio/internal/viewer"

	"github.com/charmbracelet/lipgloss"
)

// RenderMainView draws the whole page: header, the scrolled body, the
// status line and the help bar. While booting only the splash shows.
func RenderMainView(m common.ModelReader) string {
	if m.Booting() {
		return m.Splash()
	}

	parts := []string{RenderHeader(m), m.Body(), m.Status(), m.Help()}
	return styles.Theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// RenderHeader draws the title and the theme toggle icon. The title fades
// once the page has scrolled past the threshold.
func RenderHeader(m common.ModelReader) string {
	style := styles.Theme.Header
	if m.Scrolled() {
		style = styles.Theme.HeaderFaded
	}

	left := style.Render(m.Title())
	right := styles.Theme.Muted.Render("[" + m.ThemeIcon() + "]")

	gap := m.Width() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderBody draws every viewer top to bottom and returns the line each
// panel starts on, so the caller can scroll a focused panel into view.
func RenderBody(viewers []*viewer.Viewer, focus int, dark bool, width int) (string, []int) {
	var b strings.Builder
	offsets := make([]int, len(viewers))
	line := 0

	for i, v := range viewers {
		panel := components.Panel(v, i == focus, dark, width)
		if i > 0 {
			b.WriteString("\n")
		}
		offsets[i] = line
		b.WriteString(panel)
		line += lipgloss.Height(panel)
	}
	return b.String(), offsets
}
