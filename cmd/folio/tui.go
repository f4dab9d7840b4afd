package main

import (
	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/errors"
	"folio/internal/log"
	"folio/internal/tui"
	"folio/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type tuiOptions struct {
	theme  string
	watch  bool
	noBoot bool
}

func bindTUIFlags(cmd *cobra.Command, o *tuiOptions) {
	cmd.Flags().StringVar(&o.theme, "theme", "", "theme mode: auto, dark or light (overrides config)")
	cmd.Flags().BoolVarP(&o.watch, "watch", "w", false, "reload the page when the config or content changes")
	cmd.Flags().BoolVar(&o.noBoot, "no-boot", false, "skip the boot splash")
}

// tuiCmd represents the TUI command
func tuiCmd() *cobra.Command {
	var opts tuiOptions

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the page",
		Long:  `Open the portfolio page in the terminal.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	bindTUIFlags(cmd, &opts)

	return cmd
}

func runTUI(o tuiOptions) error {
	// The page owns the terminal
	if err := quietLogs(); err != nil {
		return err
	}

	load := func() (*config.Config, *content.Library, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, nil, err
		}
		if o.theme != "" {
			cfg.Theme.Mode = o.theme
			if err := cfg.Validate(); err != nil {
				return nil, nil, err
			}
		}
		lib, err := content.Load(cfg)
		if err != nil {
			return nil, nil, err
		}
		return cfg, lib, nil
	}

	cfg, lib, err := load()
	if err != nil {
		return err
	}

	var opts []tui.Option
	if o.noBoot {
		opts = append(opts, tui.WithoutBoot())
	}

	if o.watch {
		w, err := watch.New()
		if err != nil {
			return err
		}
		defer w.Stop()

		if err := watchPage(w, lib); err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}

		opts = append(opts, tui.WithWatcher(w, func() (*config.Config, *content.Library, error) {
			cfg, lib, err := load()
			if err != nil {
				return nil, nil, err
			}
			// Directories that appeared since the last load
			if err := watchPage(w, lib); err != nil {
				log.LogWithError(err).Warn("cannot watch new content")
			}
			return cfg, lib, nil
		}))
	}

	m := tui.New(cfg, lib, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running TUI")
	}
	return nil
}

// watchPage watches the config file, every source directory and every
// file read from disk.
func watchPage(w *watch.Watcher, lib *content.Library) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	paths := append([]string{path}, lib.Dirs()...)
	for _, section := range lib.Sections() {
		for _, f := range lib.Files(section) {
			if f.Path != "" {
				paths = append(paths, f.Path)
			}
		}
	}

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			if errors.IsFileNotFound(err) {
				log.LogWithError(err).Warn("not watching missing path")
				continue
			}
			return err
		}
	}
	return nil
}
