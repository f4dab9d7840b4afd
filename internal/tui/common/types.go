package common

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Title() string
	ThemeIcon() string
	Scrolled() bool
	Booting() bool
	Splash() string
	Body() string
	Status() string
	Help() string
	Width() int
}
