package styles

import "folio/internal/config"

// Mode is the page colour scheme.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Icon returns the toggle glyph name shown for the mode.
func (m Mode) Icon() string {
	if m == Dark {
		return "brightness_3"
	}
	return "brightness_5"
}

func (m Mode) other() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Preference tracks the active mode. A mode chosen by the user, either in
// config or by toggling, is explicit and wins over the system setting for
// the rest of the session. It is never written anywhere.
type Preference struct {
	mode     Mode
	explicit bool
}

// NewPreference resolves setting ("auto", "dark" or "light") against the
// system's dark-background detection.
func NewPreference(setting string, systemDark bool) *Preference {
	switch Mode(setting) {
	case Dark, Light:
		return &Preference{mode: Mode(setting), explicit: true}
	}
	return &Preference{mode: fromSystem(systemDark)}
}

func fromSystem(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

func (p *Preference) Mode() Mode { return p.mode }

// Explicit reports whether the user has picked a mode.
func (p *Preference) Explicit() bool { return p.explicit }

// Toggle flips the mode and marks it explicit.
func (p *Preference) Toggle() Mode {
	p.mode = p.mode.other()
	p.explicit = true
	return p.mode
}

// Palette returns the palette configured for the current mode.
func (p *Preference) Palette(cfg *config.Config) map[string]string {
	if p.mode == Dark {
		return config.GetTheme(cfg.Theme.Dark)
	}
	return config.GetTheme(cfg.Theme.Light)
}
