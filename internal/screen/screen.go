package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/transitwatch/grtschedule/internal/ui/layout"
	"github.com/transitwatch/grtschedule/internal/window"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is pushed.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// Windowed is implemented by screens backed by a window. The router loads
// the window on push and unloads it on removal.
type Windowed interface {
	Window() *window.Window
}

// BackHandler is implemented by screens that consume the Back button
// themselves instead of letting the app pop them.
type BackHandler interface {
	HandlesBack() bool
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
