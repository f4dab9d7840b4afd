package components

import (
	"folio/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type StatusBar struct {
	text    string
	spinner spinner.Model
	loading bool
}

func NewStatusBar() *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &StatusBar{spinner: s}
}

// Start shows the spinner and returns the command that drives it.
func (s *StatusBar) Start(text string) tea.Cmd {
	s.text = text
	s.loading = true
	return s.spinner.Tick
}

func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

func (s *StatusBar) Loading() bool {
	return s.loading
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (s *StatusBar) View() string {
	if s.text == "" && !s.loading {
		return ""
	}

	// Styles are looked up on render so a theme toggle applies at once
	style := styles.Theme.Status
	if s.loading {
		s.spinner.Style = styles.Theme.Muted
		return style.Render(s.spinner.View() + " " + s.text)
	}
	return style.Render(s.text)
}
