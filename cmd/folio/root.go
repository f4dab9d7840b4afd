package main

import (
	"io"
	"os"

	"folio/cmd/folio/cli"
	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	logFile string
	debug   bool

	logger *log.Logger
)

// NewRootCmd creates the root command. Run without a subcommand it opens
// the page, same as "folio tui".
func NewRootCmd() *cobra.Command {
	var opts tuiOptions

	rootCmd := &cobra.Command{
		Use:     "folio",
		Short:   "A portfolio page for the terminal",
		Long:    `Folio renders a personal portfolio as a terminal page of tabbed file viewers.`,
		Version: version,
		Args:    cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupOutput(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				logger.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	// Help renders before any PreRun, so the color choice is made here
	applyColorEnv()

	// Prepend logo to help message
	helpTemplate := cli.DrawFolioLogo() + "\n" + rootCmd.UsageTemplate()
	rootCmd.SetUsageTemplate(helpTemplate)
	rootCmd.SetHelpTemplate(helpTemplate)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/folio/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug messages")
	bindTUIFlags(rootCmd, &opts)

	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(catCmd())
	rootCmd.AddCommand(lsCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

func applyColorEnv() {
	if os.Getenv("NO_COLOR") != "" {
		cli.CurrentTheme = cli.PlainTheme
	}
}

func setupOutput(cmd *cobra.Command) error {
	cli.Output = cmd.OutOrStdout()
	cli.ErrOutput = cmd.ErrOrStderr()
	applyColorEnv()

	opt := log.WithOutput(cmd.ErrOrStderr())
	if logFile != "" {
		opt = log.WithFile(logFile)
	}
	l, err := log.Configure(opt)
	if err != nil {
		return err
	}
	logger = l
	log.SetDebug(debug)
	return nil
}

// quietLogs drops log output unless it goes to a file.
func quietLogs() error {
	if logFile != "" {
		return nil
	}
	l, err := log.Configure(log.WithOutput(io.Discard))
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// configPath returns --config or the default location.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		return config.LoadNamedConfigFile(path)
	}
	return config.LoadConfigFile(path)
}

// loadPage loads the config and resolves every section's files.
func loadPage() (*config.Config, *content.Library, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	lib, err := content.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, lib, nil
}
