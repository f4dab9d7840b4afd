package main

import (
	"fmt"
	"strings"

	"folio/internal/errors"
	"folio/internal/highlight"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// catCmd prints one virtual file
func catCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "cat <section> <file>",
		Short: "Print a file from a section",
		Long:  `Print one virtual file, highlighted by its extension unless --plain is given.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, lib, err := loadPage()
			if err != nil {
				return err
			}

			section, name := args[0], args[1]
			f, ok := lib.File(section, name)
			if !ok {
				return errors.NewFileError("file not found", section+"/"+name, errors.FileNotFound, nil)
			}

			text := f.Content
			if !plain {
				text = highlight.Code(f.Name, text, highlight.StyleFor(lipgloss.HasDarkBackground()))
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, text)
			if !strings.HasSuffix(text, "\n") {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&plain, "plain", "p", false, "print without highlighting")

	return cmd
}
