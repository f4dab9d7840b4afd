package main

import (
	"fmt"
	"text/tabwriter"

	"folio/cmd/folio/cli"

	"github.com/spf13/cobra"
)

// lsCmd lists sections and their files
func lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List sections and their files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lib, err := loadPage()
			if err != nil {
				return err
			}

			for _, s := range cfg.Sections {
				cli.PrintHeader(fmt.Sprintf("%s (%s)", s.Title, s.ID))

				files := lib.Files(s.ID)
				if len(files) == 0 {
					cli.PrintWarning("no files")
					continue
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, f := range files {
					marker := " "
					if f.Name == s.Active {
						marker = "*"
					}
					source := f.Path
					if source == "" {
						source = "inline"
					}
					fmt.Fprintf(tw, "%s %s\t%s\t%s\n", marker, f.Name, f.HumanSize(), source)
				}
				tw.Flush()
			}
			return nil
		},
	}
}
