package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/errors"
	"folio/internal/log"
	"folio/internal/page"
	"folio/internal/tui/components"
	"folio/internal/tui/messages"
	"folio/internal/tui/styles"
	"folio/internal/tui/views"
	"folio/internal/viewer"
	"folio/internal/watch"
	"folio/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Terminal size assumed until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Reloader loads the page again after a watched file changed.
type Reloader func() (*config.Config, *content.Library, error)

type Model struct {
	cfg  *config.Config
	lib  *content.Library
	doc  *page.Document
	keys types.KeyMap

	viewers []*viewer.Viewer
	focus   int
	offsets []int // First body line of each panel

	viewport viewport.Model
	help     help.Model
	status   *components.StatusBar
	splash   *components.Splash
	theme    *styles.Preference
	notice   string // Transient status text, cleared by the next key

	width  int
	height int

	chooser    viewer.Chooser
	systemDark func() bool
	noBoot     bool
	watcher    *watch.Watcher
	reload     Reloader
	quitting   bool
}

// Option configures a Model
type Option func(*Model)

// WithChooser fixes the command template choice, mainly for tests.
func WithChooser(c viewer.Chooser) Option {
	return func(m *Model) { m.chooser = c }
}

// WithSystemDark replaces terminal background detection.
func WithSystemDark(dark bool) Option {
	return func(m *Model) { m.systemDark = func() bool { return dark } }
}

// WithoutBoot skips the splash.
func WithoutBoot() Option {
	return func(m *Model) { m.noBoot = true }
}

// WithWatcher rebuilds the page through reload whenever w reports a change.
func WithWatcher(w *watch.Watcher, reload Reloader) Option {
	return func(m *Model) {
		m.watcher = w
		m.reload = reload
	}
}

// New builds the page for cfg and mounts a viewer in every section.
func New(cfg *config.Config, lib *content.Library, opts ...Option) *Model {
	m := &Model{
		cfg:        cfg,
		lib:        lib,
		keys:       types.DefaultKeyMap(),
		help:       help.New(),
		status:     components.NewStatusBar(),
		width:      defaultWidth,
		height:     defaultHeight,
		systemDark: lipgloss.HasDarkBackground,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.theme = styles.NewPreference(cfg.Theme.Mode, m.systemDark())
	styles.Apply(m.theme.Palette(cfg))

	if cfg.Boot.Enabled && cfg.Boot.Frames > 0 && !m.noBoot {
		m.splash = components.NewSplash(cfg.Boot.Frames, m.Title())
	}

	m.viewport = viewport.New(defaultWidth, defaultHeight)
	m.mount()
	m.layout()
	return m
}

// mount builds a fresh document and binds a viewer to each section.
// Sections whose elements cannot be resolved stay inert, without a log line.
func (m *Model) mount() {
	m.doc = page.Build(m.cfg, m.lib)
	m.viewers = nil

	frame := time.Duration(m.cfg.Animation.FrameMS) * time.Millisecond
	for _, s := range m.cfg.Sections {
		v, err := viewer.Mount(m.doc, viewer.Options{
			Scope:   s.ID,
			Surface: s.SurfaceID(),
			Files:   m.lib.Contents(s.ID),
			Placeholder: viewer.Placeholder{
				Text:  s.Placeholder.Text,
				Tiles: page.Tiles(s.Placeholder.Tiles),
			},
			Prompt:        m.cfg.ResolvePrompt(s),
			Choose:        m.chooser,
			FrameInterval: frame,
		})
		if err != nil {
			if !errors.IsElementMissing(err) {
				log.LogWithError(err).Error("failed to mount viewer")
			}
			continue
		}
		m.viewers = append(m.viewers, v)
	}

	if m.focus >= len(m.viewers) {
		m.focus = 0
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.initViewers(), m.waitForChange()}
	if m.splash != nil {
		cmds = append(cmds, m.splash.Init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) initViewers() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.viewers))
	for _, v := range m.viewers {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case viewer.FrameMsg:
		for _, v := range m.viewers {
			if v.Scope() == msg.Scope {
				cmd := v.Update(msg)
				m.refresh()
				return m, cmd
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.splash != nil {
			cmds = append(cmds, m.splash.Update(msg))
		}
		cmds = append(cmds, m.status.Update(msg))
		return m, tea.Batch(cmds...)

	case messages.ContentChangedMsg:
		reload := m.reloadPage()
		if reload == nil {
			log.LogWithFields(log.F("path", msg.Path)).Debug("content changed, no reloader")
			return m, m.waitForChange()
		}
		log.LogWithFields(log.F("path", msg.Path)).Info("content changed, reloading")
		spin := m.status.Start("reloading " + filepath.Base(msg.Path))
		return m, tea.Batch(spin, reload)

	case messages.ReloadedMsg:
		m.status.SetLoading(false)
		m.notice = "reloaded"
		m.cfg, m.lib = msg.Config, msg.Library
		styles.Apply(m.theme.Palette(m.cfg))
		m.mount()
		m.layout()
		return m, tea.Batch(m.initViewers(), m.waitForChange())

	case messages.ErrorMsg:
		log.LogWithError(msg.Err).Error("reload failed")
		m.status.SetLoading(false)
		m.notice = "reload failed: " + msg.Err.Error()
		m.refresh()
		return m, m.waitForChange()

	case messages.WatchClosedMsg:
		log.Debug("watcher closed")
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.Booting() {
		m.splash.Skip()
		return m, nil
	}
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case key.Matches(msg, m.keys.ToggleTheme):
		m.theme.Toggle()
		styles.Apply(m.theme.Palette(m.cfg))
		m.refresh()
	case key.Matches(msg, m.keys.NextSection):
		m.focusSection(m.focus + 1)
	case key.Matches(msg, m.keys.PrevSection):
		m.focusSection(m.focus - 1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.GotoTop):
		m.viewport.GotoTop()
	default:
		v := m.Focused()
		if v == nil {
			return m, nil
		}
		handled, cmd := v.HandleKey(m.keys, msg)
		if handled {
			m.refresh()
		}
		return m, cmd
	}
	return m, nil
}

// focusSection moves focus, wrapping around, and scrolls the panel into view.
func (m *Model) focusSection(i int) {
	n := len(m.viewers)
	if n == 0 {
		return
	}
	m.focus = (i%n + n) % n
	m.refresh()

	top := m.offsets[m.focus]
	if top < m.viewport.YOffset || top >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(top)
	}
}

// layout sizes the viewport to what the header, status and help leave.
func (m *Model) layout() {
	chrome := 2 + lipgloss.Height(m.help.View(m.keys))
	h := m.height - chrome
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = h
	m.refresh()
}

// refresh redraws the body into the viewport.
func (m *Model) refresh() {
	body, offsets := views.RenderBody(m.viewers, m.focus, m.theme.Mode() == styles.Dark, m.contentWidth())
	m.offsets = offsets
	m.viewport.SetContent(body)
}

func (m *Model) contentWidth() int {
	w := m.width - styles.Theme.App.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		c, ok := <-changes
		if !ok {
			return messages.WatchClosedMsg{}
		}
		return messages.ContentChangedMsg{Path: c.Path}
	}
}

func (m *Model) reloadPage() tea.Cmd {
	reload := m.reload
	if reload == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, lib, err := reload()
		if err != nil {
			return messages.ErrorMsg{Err: err}
		}
		return messages.ReloadedMsg{Config: cfg, Library: lib}
	}
}

// Getters

// Title is the host shown in the header and on the splash.
func (m *Model) Title() string {
	if m.cfg.Prompt.Host != "" {
		return m.cfg.Prompt.Host
	}
	return config.DefaultHost
}

func (m *Model) ThemeIcon() string { return m.theme.Mode().Icon() }

// Scrolled reports whether the page is scrolled past the fade threshold.
func (m *Model) Scrolled() bool {
	return m.viewport.YOffset > m.cfg.Scroll.Threshold
}

func (m *Model) Booting() bool {
	return m.splash != nil && !m.splash.Done()
}

func (m *Model) Splash() string {
	if m.splash == nil {
		return ""
	}
	return m.splash.View(m.width, m.height)
}

func (m *Model) Body() string { return m.viewport.View() }

// Status shows reload progress, a pending notice, or the focused file and
// its size.
func (m *Model) Status() string {
	switch {
	case m.status.Loading():
	case m.notice != "":
		m.status.SetText(m.notice)
	default:
		m.status.SetText(m.fileInfo())
	}
	return m.status.View()
}

func (m *Model) fileInfo() string {
	v := m.Focused()
	if v == nil {
		return ""
	}
	name, ok := v.ActiveFile()
	if !ok {
		return v.Scope()
	}
	f, ok := m.lib.File(v.Scope(), name)
	if !ok {
		return fmt.Sprintf("%s/%s", v.Scope(), name)
	}
	return fmt.Sprintf("%s/%s  %s", v.Scope(), name, humanize.Bytes(uint64(f.Size())))
}

func (m *Model) Help() string { return m.help.View(m.keys) }

func (m *Model) Width() int { return m.contentWidth() }

// Focused returns the viewer that receives tab keys.
func (m *Model) Focused() *viewer.Viewer {
	if len(m.viewers) == 0 {
		return nil
	}
	return m.viewers[m.focus]
}

func (m *Model) Viewers() []*viewer.Viewer { return m.viewers }

func (m *Model) Focus() int { return m.focus }

func (m *Model) Theme() *styles.Preference { return m.theme }

func (m *Model) Document() *page.Document { return m.doc }

func (m *Model) Viewport() viewport.Model { return m.viewport }
