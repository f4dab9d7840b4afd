package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"folio/internal/config"
	"folio/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

const (
	validYAML = `
prompt:
  user: ada
  host: example.org
theme:
  mode: light
scroll:
  threshold: 10
boot:
  enabled: false
sections:
  - id: hero
    title: hi
    active: a.txt
    files:
      - name: a.txt
        content: hello
      - name: b.txt
        path: b.txt
    placeholder:
      text: DEFAULT
  - id: projects
    title: work
    placeholder:
      tiles:
        - label: alpha
          opens: alpha.md
    prompt:
      directory: ~/work
`
	invalidSyntaxYAML = `
sections:
  - id: "hero
    title: [unclosed
`
	invalidModeYAML = `
theme:
  mode: sepia
`
	duplicateSectionYAML = `
sections:
  - id: hero
  - id: hero
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		configFile := createTestYAML(t, validYAML)
		cfg, err := config.LoadConfigFile(configFile)

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "ada", cfg.Prompt.User)
		assert.Equal(t, "example.org", cfg.Prompt.Host)
		assert.Equal(t, config.DefaultDirectory, cfg.Prompt.Directory, "unset fields keep defaults")
		assert.Equal(t, "light", cfg.Theme.Mode)
		assert.Equal(t, 10, cfg.Scroll.Threshold)
		assert.False(t, cfg.Boot.Enabled)
		assert.Equal(t, 16, cfg.Animation.FrameMS)
		assert.Equal(t, filepath.Dir(configFile), cfg.BaseDir)

		require.Len(t, cfg.Sections, 2, "sections in the file replace the default page")
		hero := cfg.Sections[0]
		assert.Equal(t, "hero", hero.ID)
		assert.Equal(t, "a.txt", hero.Active)
		assert.Equal(t, "hero-code", hero.SurfaceID())
		assert.Equal(t, "DEFAULT", hero.Placeholder.Text)
		assert.Equal(t, "b.txt", hero.Files[1].Path)

		projects := cfg.Sections[1]
		require.Len(t, projects.Placeholder.Tiles, 1)
		assert.Equal(t, "alpha.md", projects.Placeholder.Tiles[0].Opens)
	})

	t.Run("load non-existent file", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "does_not_exist.yaml"))

		require.NoError(t, err, "Loading non-existent file should return default config, not an error")
		assert.Equal(t, config.New().Sections, cfg.Sections)
		assert.Equal(t, "auto", cfg.Theme.Mode)
	})

	t.Run("named file must exist", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "does_not_exist.yaml")
		_, err := config.LoadNamedConfigFile(missing)

		require.Error(t, err)
		assert.True(t, errors.IsConfigNotFound(err))
		assert.Contains(t, err.Error(), missing)

		cfg, err := config.LoadNamedConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)
		assert.Equal(t, "ada", cfg.Prompt.User)
	})

	t.Run("load file with invalid YAML syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
		assert.True(t, errors.IsInvalidConfig(err))
	})

	t.Run("load file with invalid theme mode", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidModeYAML))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "theme.mode")
		assert.True(t, errors.IsInvalidConfig(err))
	})

	t.Run("load file with duplicate section", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, duplicateSectionYAML))

		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate section id "hero"`)
	})
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		param   string
		wantErr bool
	}{
		{
			name:   "default config",
			mutate: func(*config.Config) {},
		},
		{
			name:    "unknown dark palette",
			mutate:  func(c *config.Config) { c.Theme.Dark = "drak" },
			param:   "theme.dark",
			wantErr: true,
		},
		{
			name:    "unknown light palette",
			mutate:  func(c *config.Config) { c.Theme.Light = "" },
			param:   "theme.light",
			wantErr: true,
		},
		{
			name:   "other known palette",
			mutate: func(c *config.Config) { c.Theme.Dark = "ocean" },
		},
		{
			name:    "negative scroll threshold",
			mutate:  func(c *config.Config) { c.Scroll.Threshold = -1 },
			param:   "scroll.threshold",
			wantErr: true,
		},
		{
			name:    "zero frame interval",
			mutate:  func(c *config.Config) { c.Animation.FrameMS = 0 },
			param:   "animation.frame_ms",
			wantErr: true,
		},
		{
			name:    "negative boot frames",
			mutate:  func(c *config.Config) { c.Boot.Frames = -3 },
			param:   "boot.frames",
			wantErr: true,
		},
		{
			name:    "missing section id",
			mutate:  func(c *config.Config) { c.Sections[1].ID = "" },
			param:   "sections[1].id",
			wantErr: true,
		},
		{
			name: "duplicate file name",
			mutate: func(c *config.Config) {
				c.Sections[0].Files = append(c.Sections[0].Files, config.File{Name: "whoami.txt"})
			},
			param:   "sections[0].files[2].name",
			wantErr: true,
		},
		{
			name:    "tile without target",
			mutate:  func(c *config.Config) { c.Sections[1].Placeholder.Tiles[0].Opens = "" },
			param:   "sections[1].placeholder.tiles[0].opens",
			wantErr: true,
		},
		{
			name:    "bad include pattern",
			mutate:  func(c *config.Config) { c.Sections[2].Source.Include = []string{"[unterminated"} },
			param:   "sections[2].source.include[0]",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ce *errors.ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.param, ce.Param())
		})
	}
}

func TestResolvePrompt(t *testing.T) {
	cfg := config.New()

	projects, ok := cfg.Section("projects")
	require.True(t, ok)
	assert.Equal(t, config.Prompt{User: "v", Host: "elster.dev", Directory: "~/projects"}, cfg.ResolvePrompt(projects))

	// Page prompt cleared: built-in defaults apply per field
	cfg.Prompt = config.Prompt{Host: "example.org"}
	hero, _ := cfg.Section("hero")
	assert.Equal(t, config.Prompt{User: "v", Host: "example.org", Directory: "~/"}, cfg.ResolvePrompt(hero))

	_, ok = cfg.Section("nope")
	assert.False(t, ok)
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.New()
	cfg.Theme.Mode = "dark"
	cfg.Scroll.Threshold = 7

	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme.Mode)
	assert.Equal(t, 7, loaded.Scroll.Threshold)
	assert.Equal(t, cfg.Sections, loaded.Sections)
}

func TestGetTheme(t *testing.T) {
	for _, name := range config.ListThemes() {
		palette := config.GetTheme(name)
		assert.NotEmpty(t, palette["text"], name)
		assert.NotEmpty(t, palette["active_tab"], name)
	}
	assert.Equal(t, config.GetTheme("dark"), config.GetTheme("no-such-theme"))
}
