// Package viewer implements the tabbed file viewer mounted in each page
// section: a row of file tabs, a display surface showing the open file
// and a prompt line that types out a shell command when a tab opens.
//
// A viewer is bound to one page.Section and mutates its tab and surface
// elements directly. Viewers share no state; the typing animation is
// driven by tea.Tick frames addressed to a single viewer.
package viewer

import (
	"math/rand"
	"sync/atomic"
	"time"

	"folio/internal/errors"
	"folio/internal/page"
	"folio/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FallbackContent is shown when an open tab has no file behind it.
const FallbackContent = "// file not found"

// DefaultFrameInterval paces the typing animation at roughly 60 frames per
// second.
const DefaultFrameInterval = 16 * time.Millisecond

// Chooser picks the command template. Values outside [0, n) wrap.
type Chooser func(n int) int

// Placeholder is the default view shown while no tab is open.
type Placeholder struct {
	Text  string
	Tiles []page.Tile // A tile grid replaces Text when non-empty
}

// Options configures a viewer at mount time.
type Options struct {
	Scope         string            // Section id
	Surface       string            // Display surface id inside the section
	Files         map[string]string // File key to content
	Placeholder   Placeholder
	Prompt        Identity
	Choose        Chooser       // Defaults to math/rand
	FrameInterval time.Duration // Defaults to DefaultFrameInterval
}

// FrameMsg advances the typing animation of one viewer. Frames from an
// earlier open carry a stale generation and are dropped.
// Generations are unique per process, so frames left over from a viewer
// that was replaced on reload never match its successor.
type FrameMsg struct {
	Scope      string
	Generation int
}

var generations atomic.Int64

func nextGeneration() int { return int(generations.Add(1)) }

// Viewer is one mounted tabbed file viewer.
type Viewer struct {
	section     *page.Section
	surface     *page.Surface
	tabs        []*page.Tab // Tagged tabs only
	files       map[string]string
	placeholder Placeholder
	prompt      *Prompt
	choose      Chooser
	interval    time.Duration

	active     *page.Tab
	cursor     int
	generation int
	pending    tea.Cmd // Typing started by initialize, handed out by Init
}

// Mount binds a viewer to opts.Scope and opts.Surface in doc and
// initializes it. It fails with an ElementError when either cannot be
// resolved; callers treat that as "leave this panel inert".
func Mount(doc *page.Document, opts Options) (*Viewer, error) {
	if doc == nil {
		return nil, errors.NewElementError("required element missing", opts.Scope, "", nil)
	}
	section, ok := doc.Section(opts.Scope)
	if !ok {
		return nil, errors.NewElementError("required element missing", opts.Scope, "", nil)
	}
	surface, ok := section.Surface(opts.Surface)
	if !ok {
		return nil, errors.NewElementError("required element missing", opts.Scope, opts.Surface, nil)
	}

	v := &Viewer{
		section:     section,
		surface:     surface,
		files:       make(map[string]string, len(opts.Files)),
		placeholder: opts.Placeholder,
		prompt:      newPrompt(opts.Prompt),
		choose:      opts.Choose,
		interval:    opts.FrameInterval,
	}
	for k, c := range opts.Files {
		v.files[k] = c
	}
	if v.choose == nil {
		v.choose = rand.Intn
	}
	if v.interval <= 0 {
		v.interval = DefaultFrameInterval
	}
	for _, t := range section.Tabs() {
		if t.Key() != "" {
			v.tabs = append(v.tabs, t)
		}
	}

	v.pending = v.initialize()
	return v, nil
}

// initialize opens the tab pre-marked active in the page, if any, and
// otherwise resets to the placeholder.
func (v *Viewer) initialize() tea.Cmd {
	for _, t := range v.tabs {
		if t.Active() {
			return v.Open(t.Key())
		}
	}
	v.Close()
	return nil
}

// Init returns the typing animation started at mount, if any.
func (v *Viewer) Init() tea.Cmd {
	cmd := v.pending
	v.pending = nil
	return cmd
}

// Open shows the file behind key. The tab tagged key becomes the only
// active tab and the only one with a visible close control. Unmapped keys
// show FallbackContent. A key with no tab in the section is ignored.
// Opening cancels any typing still in flight and starts a new command.
func (v *Viewer) Open(key string) tea.Cmd {
	target, idx := v.tab(key)
	if target == nil {
		return nil
	}

	for _, t := range v.tabs {
		t.SetActive(t == target)
		t.SetCloseVisible(t == target)
	}
	v.active = target
	v.cursor = idx

	if content, ok := v.files[key]; ok {
		v.surface.SetText(content)
	} else {
		v.surface.SetText(FallbackContent)
	}

	return v.typeCommand(key)
}

// Close deactivates every tab, hides every close control, restores the
// placeholder and clears the command.
func (v *Viewer) Close() {
	for _, t := range v.tabs {
		t.SetActive(false)
		t.SetCloseVisible(false)
	}
	v.active = nil

	if len(v.placeholder.Tiles) > 0 {
		v.surface.SetTiles(v.placeholder.Tiles)
	} else {
		v.surface.SetText(v.placeholder.Text)
	}

	v.generation = nextGeneration()
	v.prompt.clear()
}

// typeCommand picks a command template for key and starts revealing it.
func (v *Viewer) typeCommand(key string) tea.Cmd {
	n := len(templates)
	tmpl := templates[(v.choose(n)%n+n)%n]
	v.generation = nextGeneration()
	v.prompt.start(tmpl + " " + key)
	return v.frame()
}

func (v *Viewer) frame() tea.Cmd {
	msg := FrameMsg{Scope: v.section.ID(), Generation: v.generation}
	return tea.Tick(v.interval, func(time.Time) tea.Msg {
		return msg
	})
}

// Update advances the typing animation for frames addressed to this viewer.
func (v *Viewer) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.Scope != v.section.ID() || frame.Generation != v.generation {
		return nil
	}
	if v.prompt.step() {
		return v.frame()
	}
	return nil
}

// HandleKey applies viewer bindings: moving the tab cursor, opening the
// tab under it, the close control and picking placeholder tiles.
func (v *Viewer) HandleKey(keys types.KeyMap, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.TabLeft):
		v.moveCursor(-1)
		return true, nil
	case key.Matches(msg, keys.TabRight):
		v.moveCursor(1)
		return true, nil
	case key.Matches(msg, keys.OpenTab):
		if len(v.tabs) == 0 {
			return true, nil
		}
		return true, v.Open(v.tabs[v.cursor].Key())
	case key.Matches(msg, keys.CloseTab):
		if v.active == nil {
			return false, nil
		}
		v.Close()
		return true, nil
	case key.Matches(msg, keys.PickTile):
		if !v.surface.ShowsTiles() {
			return false, nil
		}
		n := int(msg.String()[0] - '1')
		tiles := v.surface.Tiles()
		if n < 0 || n >= len(tiles) {
			return true, nil
		}
		return true, v.Open(tiles[n].Opens)
	}
	return false, nil
}

func (v *Viewer) moveCursor(delta int) {
	if len(v.tabs) == 0 {
		return
	}
	v.cursor = (v.cursor + delta + len(v.tabs)) % len(v.tabs)
}

func (v *Viewer) tab(key string) (*page.Tab, int) {
	if key == "" {
		return nil, -1
	}
	for i, t := range v.tabs {
		if t.Key() == key {
			return t, i
		}
	}
	return nil, -1
}

// ActiveFile returns the key of the open tab.
func (v *Viewer) ActiveFile() (string, bool) {
	if v.active == nil {
		return "", false
	}
	return v.active.Key(), true
}

// Scope returns the id of the section the viewer is mounted in.
func (v *Viewer) Scope() string { return v.section.ID() }

func (v *Viewer) Section() *page.Section { return v.section }

func (v *Viewer) Surface() *page.Surface { return v.surface }

func (v *Viewer) Prompt() *Prompt { return v.prompt }

// Tabs returns the tagged tabs the viewer governs.
func (v *Viewer) Tabs() []*page.Tab { return v.tabs }

// Cursor returns the index into Tabs of the keyboard cursor.
func (v *Viewer) Cursor() int { return v.cursor }
