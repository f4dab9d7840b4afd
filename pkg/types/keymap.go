package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the page.
// It lives in pkg/types so the viewer and the app model share one set.
type KeyMap struct {
	// General
	Help        key.Binding
	Quit        key.Binding
	ToggleTheme key.Binding

	// Page
	NextSection key.Binding
	PrevSection key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	GotoTop     key.Binding

	// Viewer
	TabLeft  key.Binding
	TabRight key.Binding
	OpenTab  key.Binding // The keyboard stand-in for clicking a tab
	CloseTab key.Binding // The close control on the active tab
	PickTile key.Binding // 1-9 on a tile placeholder
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		TabLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev tab"),
		),
		TabRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next tab"),
		),
		OpenTab: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "close"),
		),
		PickTile: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "open tile"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.TabRight, k.OpenTab, k.CloseTab, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.GotoTop},
		{k.TabLeft, k.TabRight, k.OpenTab, k.CloseTab, k.PickTile},
		{k.ToggleTheme, k.Help, k.Quit},
	}
}
