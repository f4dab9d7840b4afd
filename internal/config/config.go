package config

import (
	"fmt"
	"os"
	"path/filepath"

	"folio/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Default prompt identity used when neither the page nor a section sets one.
const (
	DefaultUser      = "v"
	DefaultHost      = "elster.dev"
	DefaultDirectory = "~/"
)

// Prompt is the simulated shell identity rendered as user@host:directory$.
type Prompt struct {
	User      string `yaml:"user,omitempty"`
	Host      string `yaml:"host,omitempty"`
	Directory string `yaml:"directory,omitempty"`
}

// File is one virtual file. Content wins over Path when both are set.
type File struct {
	Name    string `yaml:"name"`
	Content string `yaml:"content,omitempty"`
	Path    string `yaml:"path,omitempty"` // Read at load time, relative to the config file
}

// Tile is one clickable cell of a tile-grid placeholder.
type Tile struct {
	Label string `yaml:"label"`
	Opens string `yaml:"opens"` // File key opened when the tile is picked
}

// Placeholder is what a viewer shows while no tab is open: text, or a
// small grid of tiles when Tiles is non-empty.
type Placeholder struct {
	Text  string `yaml:"text,omitempty"`
	Tiles []Tile `yaml:"tiles,omitempty"`
}

// Section configures one page section and the viewer it hosts.
type Section struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Surface string `yaml:"surface,omitempty"` // Display surface id, defaults to <id>-code
	Active  string `yaml:"active,omitempty"`  // Tab pre-marked active in the initial page
	Files   []File `yaml:"files,omitempty"`
	// Extra tabs without content; opening one shows the fallback text.
	Tabs   []string `yaml:"tabs,omitempty"`
	Source struct {
		Dir     string   `yaml:"dir,omitempty"`     // Directory read for additional files
		Include []string `yaml:"include,omitempty"` // Glob patterns matched against file names
	} `yaml:"source,omitempty"`
	Placeholder Placeholder `yaml:"placeholder"`
	Prompt      Prompt      `yaml:"prompt,omitempty"` // Per-field override of the page prompt
}

// SurfaceID returns the configured surface id or the <id>-code default.
func (s Section) SurfaceID() string {
	if s.Surface != "" {
		return s.Surface
	}
	return s.ID + "-code"
}

// Config represents the application configuration structure.
// It defines the page sections, the prompt identity and the page effects.
type Config struct {
	Prompt Prompt `yaml:"prompt"`
	Theme  struct {
		Mode  string `yaml:"mode"`  // auto, dark or light
		Dark  string `yaml:"dark"`  // Palette used in dark mode
		Light string `yaml:"light"` // Palette used in light mode
	} `yaml:"theme"`
	Scroll struct {
		Threshold int `yaml:"threshold"` // Lines scrolled before the header fades
	} `yaml:"scroll"`
	Boot struct {
		Enabled bool `yaml:"enabled"` // Show the splash on start
		Frames  int  `yaml:"frames"`  // Spinner frames the splash lasts
	} `yaml:"boot"`
	Animation struct {
		FrameMS int `yaml:"frame_ms"` // Milliseconds per typed character
	} `yaml:"animation"`
	Sections []Section `yaml:"sections"`

	// BaseDir resolves relative file paths; it is the config file's directory.
	BaseDir string `yaml:"-"`
}

// DefaultPath returns ~/.config/folio/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "folio", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location
// (~/.config/folio/config.yaml).
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewFileError("error reading config file", path, errors.FileAccessDenied, err)
	}

	// Decoding over the defaults keeps every field the file leaves unset.
	// A sections list in the file replaces the default page entirely.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}
	cfg.BaseDir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// LoadNamedConfigFile loads a config file the user asked for by name.
// Unlike LoadConfigFile, a missing file is a ConfigNotFound error.
func LoadNamedConfigFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NewConfigError("config file not found", path, errors.ConfigNotFound, err)
	}
	return LoadConfigFile(path)
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks if the configuration is valid.
// Returns a ConfigError naming the first offending parameter.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	validModes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validModes[c.Theme.Mode] {
		return invalid("theme.mode", "must be auto, dark or light, got %q", c.Theme.Mode)
	}
	if !knownTheme(c.Theme.Dark) {
		return invalid("theme.dark", "unknown palette %q, want one of %v", c.Theme.Dark, ListThemes())
	}
	if !knownTheme(c.Theme.Light) {
		return invalid("theme.light", "unknown palette %q, want one of %v", c.Theme.Light, ListThemes())
	}
	if c.Scroll.Threshold < 0 {
		return invalid("scroll.threshold", "must be >= 0")
	}
	if c.Boot.Frames < 0 {
		return invalid("boot.frames", "must be >= 0")
	}
	if c.Animation.FrameMS < 1 {
		return invalid("animation.frame_ms", "must be >= 1")
	}

	ids := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		param := fmt.Sprintf("sections[%d]", i)
		if s.ID == "" {
			return invalid(param+".id", "section id is required")
		}
		if ids[s.ID] {
			return invalid(param+".id", "duplicate section id %q", s.ID)
		}
		ids[s.ID] = true

		names := make(map[string]bool, len(s.Files))
		for j, f := range s.Files {
			if f.Name == "" {
				return invalid(fmt.Sprintf("%s.files[%d].name", param, j), "file name is required")
			}
			if names[f.Name] {
				return invalid(fmt.Sprintf("%s.files[%d].name", param, j), "duplicate file %q", f.Name)
			}
			names[f.Name] = true
		}
		for j, tile := range s.Placeholder.Tiles {
			if tile.Opens == "" {
				return invalid(fmt.Sprintf("%s.placeholder.tiles[%d].opens", param, j), "tile must name the file it opens")
			}
		}
		for j, pattern := range s.Source.Include {
			if _, err := glob.Compile(pattern); err != nil {
				return errors.NewConfigError("invalid include pattern", fmt.Sprintf("%s.source.include[%d]", param, j), errors.InvalidConfig, err)
			}
		}
	}

	return nil
}

func knownTheme(name string) bool {
	for _, t := range ListThemes() {
		if t == name {
			return true
		}
	}
	return false
}

func invalid(param, format string, args ...interface{}) error {
	return errors.NewConfigError("invalid value", param, errors.InvalidConfig, fmt.Errorf(format, args...))
}

// ResolvePrompt fills empty fields of the section prompt from the page
// prompt, then from the built-in defaults.
func (c *Config) ResolvePrompt(s Section) Prompt {
	p := s.Prompt
	if p.User == "" {
		p.User = firstNonEmpty(c.Prompt.User, DefaultUser)
	}
	if p.Host == "" {
		p.Host = firstNonEmpty(c.Prompt.Host, DefaultHost)
	}
	if p.Directory == "" {
		p.Directory = firstNonEmpty(c.Prompt.Directory, DefaultDirectory)
	}
	return p
}

// Section returns the section with the given id.
func (c *Config) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}
