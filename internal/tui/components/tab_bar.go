package components

import (
	"strings"

	"folio/internal/page"
	"folio/internal/tui/styles"
)

// CloseGlyph marks the close control on the active tab.
const CloseGlyph = "×"

// TabBar renders a row of tabs. The active tab carries the close control
// when its element says so; the cursor is underlined while focused.
func TabBar(tabs []*page.Tab, cursor int, focused bool) string {
	if len(tabs) == 0 {
		return ""
	}

	cells := make([]string, 0, len(tabs))
	for i, t := range tabs {
		style := styles.Theme.Tab
		if t.Active() {
			style = styles.Theme.ActiveTab
		}
		if focused && i == cursor {
			style = style.Inherit(styles.Theme.TabCursor)
		}

		cell := style.Render(t.Label())
		if t.CloseVisible() {
			cell += styles.Theme.Close.Render(CloseGlyph)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}
