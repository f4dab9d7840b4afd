// Package highlight colours virtual file content for the terminal.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Style names per page mode.
const (
	DarkStyle  = "monokai"
	LightStyle = "github"
)

// Code returns source coloured for a 256-colour terminal, picking the
// lexer from filename. Content no lexer claims is returned unchanged, as
// is anything that fails to tokenise.
func Code(filename, source, style string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return source
	}
	lexer = chroma.Coalesce(lexer)

	st := styles.Get(style)
	if st == nil {
		st = styles.Fallback
	}

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var b strings.Builder
	if err := formatters.Get("terminal256").Format(&b, st, it); err != nil {
		return source
	}
	return b.String()
}

// StyleFor returns the chroma style used in dark or light mode.
func StyleFor(dark bool) string {
	if dark {
		return DarkStyle
	}
	return LightStyle
}
