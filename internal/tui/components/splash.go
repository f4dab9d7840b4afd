package components

import (
	"strings"

	"folio/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const banner = `
  ____      ___
 / __/___  / (_)___
/ /_/ __ \/ / / __ \
/ __/ /_/ / / / /_/ /
/_/  \____/_/_/\____/`

// Splash is the boot screen shown once at start. It lasts a fixed number
// of spinner frames; any key skips it.
type Splash struct {
	spinner   spinner.Model
	remaining int
	host      string
}

func NewSplash(frames int, host string) *Splash {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &Splash{spinner: s, remaining: frames, host: host}
}

func (s *Splash) Init() tea.Cmd {
	if s.Done() {
		return nil
	}
	return s.spinner.Tick
}

// Update counts down one frame per tick of its own spinner. Ticks meant
// for other spinners are ignored.
func (s *Splash) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || s.Done() {
		return nil
	}

	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(tick)
	if cmd == nil {
		return nil
	}

	s.remaining--
	if s.Done() {
		return nil
	}
	return cmd
}

func (s *Splash) Skip() { s.remaining = 0 }

func (s *Splash) Done() bool { return s.remaining <= 0 }

func (s *Splash) View(width, height int) string {
	s.spinner.Style = styles.Theme.PromptPrefix

	var b strings.Builder
	b.WriteString(styles.Theme.Title.Render(strings.TrimPrefix(banner, "\n")))
	b.WriteString("\n")
	b.WriteString(s.spinner.View() + " " + styles.Theme.Muted.Render("connecting to "+s.host))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
