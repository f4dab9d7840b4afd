package config

// defaultConfig returns the default page: four sections, each with its own
// files, placeholder and prompt directory.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Prompt = Prompt{User: DefaultUser, Host: DefaultHost, Directory: DefaultDirectory}

	cfg.Theme.Mode = "auto"
	cfg.Theme.Dark = "dark"
	cfg.Theme.Light = "light"

	cfg.Scroll.Threshold = 2

	cfg.Boot.Enabled = true
	cfg.Boot.Frames = 12

	cfg.Animation.FrameMS = 16 // One character per ~60Hz frame

	cfg.Sections = []Section{
		{
			ID:     "hero",
			Title:  "hello, world",
			Active: "whoami.txt",
			Files: []File{
				{Name: "whoami.txt", Content: "v, systems programmer.\nI build small, sharp tools for large, messy systems.\n"},
				{Name: "now.md", Content: "# now\n\n- rewriting a build cache in Go\n- reading about CRDTs\n- learning to bake sourdough, badly\n"},
			},
			Placeholder: Placeholder{Text: "select a file to begin"},
		},
		{
			ID:    "projects",
			Title: "projects",
			Files: []File{
				{Name: "kiln.md", Content: "# kiln\n\nA content-addressed build cache with a gRPC front door.\nLocal hits in microseconds, remote hits in one round trip.\n"},
				{Name: "tidepool.md", Content: "# tidepool\n\nA tiny log shipper. Tails files, batches lines, survives restarts.\n"},
				{Name: "folio.go", Content: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"you are looking at it\")\n}\n"},
			},
			Placeholder: Placeholder{Tiles: []Tile{
				{Label: "kiln", Opens: "kiln.md"},
				{Label: "tidepool", Opens: "tidepool.md"},
				{Label: "folio", Opens: "folio.go"},
			}},
			Prompt: Prompt{Directory: "~/projects"},
		},
		{
			ID:    "lab",
			Title: "lab",
			Files: []File{
				{Name: "experiments.txt", Content: "- wasm plugin host (shelved)\n- terminal dither renderer\n- a Forth that fits in a tweet\n"},
				{Name: "dither.py", Content: "def dither(px):\n    return [[1 if v > 127 else 0 for v in row] for row in px]\n"},
			},
			Tabs:        []string{"drafts.txt"},
			Placeholder: Placeholder{Text: "nothing running. pick an experiment."},
			Prompt:      Prompt{Directory: "~/lab"},
		},
		{
			ID:    "about",
			Title: "about",
			Files: []File{
				{Name: "about.md", Content: "# about\n\nTen years of backend work: queues, caches, schedulers.\nCurrently independent.\n"},
				{Name: "contact.txt", Content: "mail: v@elster.dev\ngit:  github.com/elster\n"},
			},
			Placeholder: Placeholder{Text: "cat a file to learn more"},
			Prompt:      Prompt{Directory: "~/about"},
		},
	}

	return cfg
}

// NewTestConfig creates a configuration instance for testing purposes:
// one section with two files and a text placeholder, no splash.
func NewTestConfig() *Config {
	cfg := &Config{}
	cfg.Theme.Mode = "dark"
	cfg.Theme.Dark = "dark"
	cfg.Theme.Light = "light"
	cfg.Scroll.Threshold = 2
	cfg.Animation.FrameMS = 16
	cfg.Sections = []Section{
		{
			ID:    "test",
			Title: "test",
			Files: []File{
				{Name: "a.txt", Content: "hello"},
				{Name: "b.txt", Content: "world"},
			},
			Tabs:        []string{"missing.txt"},
			Placeholder: Placeholder{Text: "DEFAULT"},
		},
	}
	return cfg
}

// GetTheme returns a predefined palette by name.
// If the palette doesn't exist, returns the dark palette.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"dark": {
			"background": "#101014",
			"text":       "#E4E4E7",
			"muted":      "#71717A",
			"primary":    "#A78BFA", // Violet
			"accent":     "#34D399", // Green prompt
			"border":     "#3F3F46",
			"tab":        "#27272A",
			"active_tab": "#A78BFA",
		},
		"light": {
			"background": "#FAFAFA",
			"text":       "#18181B",
			"muted":      "#A1A1AA",
			"primary":    "#6D28D9",
			"accent":     "#047857",
			"border":     "#D4D4D8",
			"tab":        "#E4E4E7",
			"active_tab": "#6D28D9",
		},
		"monochrome": {
			"background": "232",
			"text":       "252",
			"muted":      "241",
			"primary":    "255",
			"accent":     "250",
			"border":     "238",
			"tab":        "236",
			"active_tab": "255",
		},
		"ocean": {
			"background": "17",
			"text":       "195",
			"muted":      "67",
			"primary":    "51",
			"accent":     "36",
			"border":     "31",
			"tab":        "24",
			"active_tab": "51",
		},
		"sunset": {
			"background": "52",
			"text":       "230",
			"muted":      "137",
			"primary":    "208",
			"accent":     "154",
			"border":     "203",
			"tab":        "88",
			"active_tab": "208",
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["dark"]
}

// ListThemes returns a list of available palette names.
func ListThemes() []string {
	return []string{"dark", "light", "monochrome", "ocean", "sunset"}
}
