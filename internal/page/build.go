package page

import (
	"folio/internal/config"
	"folio/internal/content"
)

// Build assembles the document described by cfg. Each section gets one
// tab per resolved file, then the extra tabs the config lists, and its
// display surface. The tab named by Active starts marked active.
func Build(cfg *config.Config, lib *content.Library) *Document {
	doc := NewDocument()

	for _, sc := range cfg.Sections {
		s := doc.AddSection(sc.ID, sc.Title)
		for _, f := range lib.Files(sc.ID) {
			s.AddTab(f.Name, f.Name)
		}
		for _, key := range sc.Tabs {
			if _, exists := s.Tab(key); !exists {
				s.AddTab(key, key)
			}
		}
		if t, ok := s.Tab(sc.Active); ok {
			t.SetActive(true)
		}
		s.AddSurface(sc.SurfaceID())
	}

	return doc
}

// Tiles converts configured tiles to page tiles.
func Tiles(tiles []config.Tile) []Tile {
	if len(tiles) == 0 {
		return nil
	}
	out := make([]Tile, len(tiles))
	for i, t := range tiles {
		out[i] = Tile{Label: t.Label, Opens: t.Opens}
	}
	return out
}
