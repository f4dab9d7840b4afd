package viewer

import (
	"fmt"

	"folio/internal/config"
)

// templates are the simulated commands a viewer types when a tab opens.
var templates = []string{"cat", "less", "nano"}

// Identity is the simulated shell identity shown before the command.
type Identity = config.Prompt

// Prompt is the command line a viewer owns: a static prefix built once from
// the identity, and the command being typed out.
type Prompt struct {
	prefix  string
	command []rune // Full chosen command, empty when no file is open
	shown   int    // Runes of command revealed so far
}

func newPrompt(id Identity) *Prompt {
	if id.User == "" {
		id.User = config.DefaultUser
	}
	if id.Host == "" {
		id.Host = config.DefaultHost
	}
	if id.Directory == "" {
		id.Directory = config.DefaultDirectory
	}
	return &Prompt{prefix: fmt.Sprintf("%s@%s:%s$ ", id.User, id.Host, id.Directory)}
}

// Prefix returns the static "user@host:directory$ " part.
func (p *Prompt) Prefix() string { return p.prefix }

// Command returns the full command chosen for the open file.
func (p *Prompt) Command() string { return string(p.command) }

// Revealed returns the part of the command typed so far.
func (p *Prompt) Revealed() string { return string(p.command[:p.shown]) }

// Typing reports whether characters remain to be revealed.
func (p *Prompt) Typing() bool { return p.shown < len(p.command) }

// String renders the prompt line as currently shown.
func (p *Prompt) String() string { return p.prefix + p.Revealed() }

func (p *Prompt) start(command string) {
	p.command = []rune(command)
	p.shown = 0
}

func (p *Prompt) clear() {
	p.command = nil
	p.shown = 0
}

// step reveals one more rune and reports whether more remain.
func (p *Prompt) step() bool {
	if p.shown < len(p.command) {
		p.shown++
	}
	return p.Typing()
}
