package styles

import (
	"testing"

	"folio/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewPreference(t *testing.T) {
	tests := []struct {
		setting    string
		systemDark bool
		want       Mode
		explicit   bool
	}{
		{"auto", true, Dark, false},
		{"auto", false, Light, false},
		{"dark", false, Dark, true},
		{"light", true, Light, true},
		{"", true, Dark, false},
	}
	for _, tt := range tests {
		p := NewPreference(tt.setting, tt.systemDark)
		assert.Equal(t, tt.want, p.Mode(), "%q system dark=%v", tt.setting, tt.systemDark)
		assert.Equal(t, tt.explicit, p.Explicit())
	}
}

func TestPreferenceToggle(t *testing.T) {
	p := NewPreference("auto", false)
	assert.Equal(t, Light, p.Mode())
	assert.False(t, p.Explicit())

	assert.Equal(t, Dark, p.Toggle())
	assert.True(t, p.Explicit(), "a toggled choice overrides the system")
	assert.Equal(t, Dark, p.Mode())

	assert.Equal(t, Light, p.Toggle())
}

func TestModeIcon(t *testing.T) {
	assert.Equal(t, "brightness_3", Dark.Icon())
	assert.Equal(t, "brightness_5", Light.Icon())
}

func TestPalette(t *testing.T) {
	cfg := config.New()
	cfg.Theme.Light = "sunset"

	p := NewPreference("dark", false)
	assert.Equal(t, config.GetTheme("dark"), p.Palette(cfg))

	p.Toggle()
	assert.Equal(t, config.GetTheme("sunset"), p.Palette(cfg))
}
