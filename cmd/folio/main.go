package main

import (
	"os"

	"folio/cmd/folio/cli"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
