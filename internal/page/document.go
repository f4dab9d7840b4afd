// Package page models the document a viewer is mounted into: sections,
// their tab elements and their display surfaces. It plays the part the
// browser DOM plays for a web page, holding per-element state that the
// viewer mutates and the TUI renders.
package page

// Tab is one clickable tab element. A tab with an empty key is untagged
// and is ignored by viewers.
type Tab struct {
	key          string
	label        string
	active       bool
	closeVisible bool
}

func (t *Tab) Key() string             { return t.key }
func (t *Tab) Label() string           { return t.label }
func (t *Tab) Active() bool            { return t.active }
func (t *Tab) CloseVisible() bool      { return t.closeVisible }
func (t *Tab) SetActive(on bool)       { t.active = on }
func (t *Tab) SetCloseVisible(on bool) { t.closeVisible = on }

// Tile is one cell of a tile-grid placeholder.
type Tile struct {
	Label string
	Opens string
}

// Surface is a display region. It shows either text or a tile grid.
type Surface struct {
	id    string
	text  string
	tiles []Tile
}

func (s *Surface) ID() string   { return s.id }
func (s *Surface) Text() string { return s.text }

// Tiles returns the tiles currently shown, nil when showing text.
func (s *Surface) Tiles() []Tile { return s.tiles }

// ShowsTiles reports whether the surface currently renders a tile grid.
func (s *Surface) ShowsTiles() bool { return len(s.tiles) > 0 }

// SetText replaces the surface content with text.
func (s *Surface) SetText(text string) {
	s.text = text
	s.tiles = nil
}

// SetTiles replaces the surface content with a tile grid.
func (s *Surface) SetTiles(tiles []Tile) {
	s.text = ""
	s.tiles = append([]Tile(nil), tiles...)
}

// Section is a scope: the region of the page one viewer governs.
type Section struct {
	id       string
	title    string
	tabs     []*Tab
	surfaces map[string]*Surface
}

func (s *Section) ID() string    { return s.id }
func (s *Section) Title() string { return s.title }

// Tabs returns the tab elements in page order, tagged or not.
func (s *Section) Tabs() []*Tab { return s.tabs }

// AddTab appends a tab element. An empty key leaves it untagged.
func (s *Section) AddTab(key, label string) *Tab {
	if label == "" {
		label = key
	}
	t := &Tab{key: key, label: label}
	s.tabs = append(s.tabs, t)
	return t
}

// Tab returns the first tab tagged with key.
func (s *Section) Tab(key string) (*Tab, bool) {
	if key == "" {
		return nil, false
	}
	for _, t := range s.tabs {
		if t.key == key {
			return t, true
		}
	}
	return nil, false
}

// AddSurface creates the display surface id inside the section, or returns
// the existing one.
func (s *Section) AddSurface(id string) *Surface {
	if sf, ok := s.surfaces[id]; ok {
		return sf
	}
	sf := &Surface{id: id}
	s.surfaces[id] = sf
	return sf
}

// Surface looks up a display surface by id.
func (s *Section) Surface(id string) (*Surface, bool) {
	sf, ok := s.surfaces[id]
	return sf, ok
}

// Document is the whole page: an ordered set of sections.
type Document struct {
	sections []*Section
	byID     map[string]*Section
}

func NewDocument() *Document {
	return &Document{byID: make(map[string]*Section)}
}

// AddSection appends a section, or returns the existing one with that id.
func (d *Document) AddSection(id, title string) *Section {
	if s, ok := d.byID[id]; ok {
		return s
	}
	s := &Section{id: id, title: title, surfaces: make(map[string]*Surface)}
	d.sections = append(d.sections, s)
	d.byID[id] = s
	return s
}

// Section looks up a section by id.
func (d *Document) Section(id string) (*Section, bool) {
	s, ok := d.byID[id]
	return s, ok
}

// Sections returns the sections in page order.
func (d *Document) Sections() []*Section { return d.sections }
