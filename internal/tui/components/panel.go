package components

import (
	"folio/internal/tui/styles"
	"folio/internal/viewer"

	"github.com/charmbracelet/lipgloss"
)

// Panel renders one mounted viewer as a framed section: title, tab bar,
// display surface and prompt line.
func Panel(v *viewer.Viewer, focused, dark bool, width int) string {
	frame := styles.Theme.Section
	if focused {
		frame = styles.Theme.Focused
	}
	inner := width - frame.GetHorizontalFrameSize()

	file, _ := v.ActiveFile()
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Theme.Title.Render(v.Section().Title()),
		TabBar(v.Tabs(), v.Cursor(), focused),
		"",
		Surface(v.Surface(), file, dark, inner),
		"",
		PromptLine(v.Prompt()),
	)

	if w := width - frame.GetHorizontalBorderSize() - frame.GetHorizontalMargins(); w > 0 {
		frame = frame.Width(w)
	}
	return frame.Render(body)
}
