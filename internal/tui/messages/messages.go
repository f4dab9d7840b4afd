package messages

import (
	"folio/internal/config"
	"folio/internal/content"
)

type ErrorMsg struct {
	Err error
}

// ContentChangedMsg reports a change under a watched path.
type ContentChangedMsg struct {
	Path string
}

// WatchClosedMsg is sent once the watcher's channel is closed.
type WatchClosedMsg struct{}

// ReloadedMsg carries a freshly loaded page.
type ReloadedMsg struct {
	Config  *config.Config
	Library *content.Library
}
