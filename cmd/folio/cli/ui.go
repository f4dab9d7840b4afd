package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ColorTheme represents a set of colors for the CLI
type ColorTheme struct {
	Name    string
	Success string
	Error   string
	Warning string
	Info    string
	Header  string
	Logo    string
}

var (
	DefaultTheme = ColorTheme{
		Name:    "default",
		Success: colorGreen,
		Error:   colorRed,
		Warning: colorYellow,
		Info:    colorBlue,
		Header:  colorCyan + colorBold,
		Logo:    colorCyan,
	}

	// PlainTheme writes no escape codes, for NO_COLOR and pipes
	PlainTheme = ColorTheme{Name: "plain"}
)

// Current active theme, starts with default
var CurrentTheme = DefaultTheme

// Output receives everything the Print helpers write except errors
var Output io.Writer = os.Stdout

// ErrOutput receives PrintError
var ErrOutput io.Writer = os.Stderr

// Terminal colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

func paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + colorReset
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Fprintln(Output, paint(CurrentTheme.Success, "✓ "+message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintln(ErrOutput, paint(CurrentTheme.Error, "✗ "+message))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintln(Output, paint(CurrentTheme.Warning, "! "+message))
}

// PrintInfo prints an informational message
func PrintInfo(message string) {
	fmt.Fprintln(Output, paint(CurrentTheme.Info, "ℹ "+message))
}

// PrintHeader prints a section header
func PrintHeader(message string) {
	fmt.Fprintln(Output, "\n"+paint(CurrentTheme.Header, message))
	fmt.Fprintln(Output, strings.Repeat("─", len([]rune(message))))
}

// DrawFolioLogo generates the ASCII art logo shown above the help text.
func DrawFolioLogo() string {
	logo := `
   ___     _ _
  / __\__ | (_) ___
 / _\/ _ \| | |/ _ \
/ / | (_) | | | (_) |
\/   \___/|_|_|\___/
`
	return paint(CurrentTheme.Logo, logo)
}
