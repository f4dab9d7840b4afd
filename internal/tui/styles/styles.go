package styles

import (
	"folio/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles defines the core UI styles for one palette
type Styles struct {
	App         lipgloss.Style
	Header      lipgloss.Style
	HeaderFaded lipgloss.Style
	Title       lipgloss.Style
	Section     lipgloss.Style
	Focused     lipgloss.Style

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	TabCursor lipgloss.Style
	Close     lipgloss.Style

	Code         lipgloss.Style
	PromptPrefix lipgloss.Style
	Command      lipgloss.Style
	Caret        lipgloss.Style
	Tile         lipgloss.Style

	Help   lipgloss.Style
	Muted  lipgloss.Style
	Status lipgloss.Style
}

// Theme holds the styles currently in use. Apply swaps it on a theme change.
var Theme = New(config.GetTheme("dark"))

// Apply rebuilds Theme from palette
func Apply(palette map[string]string) {
	Theme = New(palette)
}

// New builds the styles for a palette as returned by config.GetTheme
func New(p map[string]string) Styles {
	c := func(name string) lipgloss.Color { return lipgloss.Color(p[name]) }

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(c("text")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(c("primary")).
			Padding(0, 1),
		HeaderFaded: lipgloss.NewStyle().
			Foreground(c("muted")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c("primary")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c("border")).
			Padding(0, 1).
			MarginBottom(1),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c("primary")).
			Padding(0, 1).
			MarginBottom(1),

		Tab: lipgloss.NewStyle().
			Foreground(c("muted")).
			Background(c("tab")).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(c("background")).
			Background(c("active_tab")).
			Padding(0, 1),
		TabCursor: lipgloss.NewStyle().
			Underline(true),
		Close: lipgloss.NewStyle().
			Foreground(c("background")).
			Background(c("active_tab")).
			PaddingRight(1),

		Code: lipgloss.NewStyle().
			Foreground(c("text")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(c("border")).
			PaddingLeft(1),
		PromptPrefix: lipgloss.NewStyle().
			Bold(true).
			Foreground(c("accent")),
		Command: lipgloss.NewStyle().
			Foreground(c("text")),
		Caret: lipgloss.NewStyle().
			Foreground(c("accent")).
			Blink(true),
		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c("border")).
			Foreground(c("text")).
			Padding(0, 2).
			MarginRight(1),

		Help: lipgloss.NewStyle().
			Foreground(c("muted")),
		Muted: lipgloss.NewStyle().
			Foreground(c("muted")),
		Status: lipgloss.NewStyle().
			Foreground(c("muted")).
			Italic(true),
	}
}
