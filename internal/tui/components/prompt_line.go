package components

import (
	"folio/internal/tui/styles"
	"folio/internal/viewer"
)

const caret = "▌"

// PromptLine renders "user@host:dir$ " and the command typed so far.
func PromptLine(p *viewer.Prompt) string {
	return styles.Theme.PromptPrefix.Render(p.Prefix()) +
		styles.Theme.Command.Render(p.Revealed()) +
		styles.Theme.Caret.Render(caret)
}
