package views

import (
	"fmt"
	"testing"

	"folio/internal/page"
	"folio/internal/viewer"
	"folio/pkg/testutils"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock model for testing
type mockModel struct {
	title    string
	icon     string
	scrolled bool
	booting  bool
	body     string
	status   string
	help     string
	width    int
}

func (m *mockModel) Title() string     { return m.title }
func (m *mockModel) ThemeIcon() string { return m.icon }
func (m *mockModel) Scrolled() bool    { return m.scrolled }
func (m *mockModel) Booting() bool     { return m.booting }
func (m *mockModel) Splash() string    { return "SPLASH" }
func (m *mockModel) Body() string      { return m.body }
func (m *mockModel) Status() string    { return m.status }
func (m *mockModel) Help() string      { return m.help }
func (m *mockModel) Width() int        { return m.width }

func TestRenderMainView(t *testing.T) {
	tests := []struct {
		name     string
		model    *mockModel
		contains []string // Strings that should be present in the output
		excludes []string // Strings that should not be present in the output
	}{
		{
			name: "page",
			model: &mockModel{
				title:  "elster.dev",
				icon:   "brightness_3",
				body:   "BODY",
				status: "hero/whoami.txt",
				help:   "? help",
				width:  60,
			},
			contains: []string{"elster.dev", "[brightness_3]", "BODY", "hero/whoami.txt", "? help"},
			excludes: []string{"SPLASH"},
		},
		{
			name:     "light theme icon",
			model:    &mockModel{title: "elster.dev", icon: "brightness_5", width: 60},
			contains: []string{"[brightness_5]"},
		},
		{
			name:     "booting",
			model:    &mockModel{title: "elster.dev", booting: true, body: "BODY", width: 60},
			contains: []string{"SPLASH"},
			excludes: []string{"BODY", "elster.dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := testutils.StripANSI(RenderMainView(tt.model))

			for _, s := range tt.contains {
				assert.Contains(t, output, s, fmt.Sprintf("output should contain '%s'", s))
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s, fmt.Sprintf("output should not contain '%s'", s))
			}
		})
	}
}

func TestRenderHeader(t *testing.T) {
	m := &mockModel{title: "elster.dev", icon: "brightness_3", width: 40}

	plain := RenderHeader(m)
	assert.Equal(t, 40, lipgloss.Width(plain), "icon is pushed to the right edge")

	m.scrolled = true
	faded := RenderHeader(m)
	assert.Equal(t, testutils.StripANSI(plain), testutils.StripANSI(faded), "fading changes style only")

	m.width = 5
	assert.Contains(t, testutils.StripANSI(RenderHeader(m)), "elster.dev  [brightness_3]")
}

func TestRenderBody(t *testing.T) {
	doc := page.NewDocument()
	var viewers []*viewer.Viewer
	for _, id := range []string{"one", "two"} {
		s := doc.AddSection(id, id)
		s.AddTab("f.txt", "f.txt")
		s.AddSurface(id + "-code")

		v, err := viewer.Mount(doc, viewer.Options{
			Scope:       id,
			Surface:     id + "-code",
			Files:       map[string]string{"f.txt": "content of " + id},
			Placeholder: viewer.Placeholder{Text: "idle " + id},
		})
		require.NoError(t, err)
		viewers = append(viewers, v)
	}

	body, offsets := RenderBody(viewers, 1, true, 50)
	out := testutils.StripANSI(body)

	require.Len(t, offsets, 2)
	assert.Equal(t, 0, offsets[0])
	assert.Greater(t, offsets[1], offsets[0])
	assert.Contains(t, out, "idle one")
	assert.Contains(t, out, "idle two")

	first, _ := RenderBody(viewers[:1], 0, true, 50)
	assert.Equal(t, lipgloss.Height(first), offsets[1], "second panel starts after the first")

	empty, none := RenderBody(nil, 0, true, 50)
	assert.Empty(t, empty)
	assert.Empty(t, none)
}
