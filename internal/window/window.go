// Package window provides the identity and load/unload lifecycle shared by
// every screen controller.
package window

import (
	"github.com/google/uuid"

	"github.com/transitwatch/grtschedule/internal/logging"
)

// Handlers are invoked when a window's widgets must be built or released.
type Handlers struct {
	Load   func()
	Unload func()
}

// Window is a modal, full-screen surface owned by one screen controller.
type Window struct {
	id        uuid.UUID
	name      string
	handlers  Handlers
	loaded    bool
	destroyed bool
}

// New creates a window named name. Handlers may be nil.
func New(name string, h Handlers) *Window {
	w := &Window{id: uuid.New(), name: name, handlers: h}
	logging.Debug("window created", "window", name, "id", w.id.String())
	return w
}

func (w *Window) ID() uuid.UUID   { return w.id }
func (w *Window) Name() string    { return w.name }
func (w *Window) Loaded() bool    { return w.loaded }
func (w *Window) Destroyed() bool { return w.destroyed }

// Load runs the load handler once per unload cycle. Destroyed windows never
// load again.
func (w *Window) Load() {
	if w.loaded || w.destroyed {
		return
	}
	w.loaded = true
	logging.Info("window load", "window", w.name, "id", w.id.String())
	if w.handlers.Load != nil {
		w.handlers.Load()
	}
}

// Unload runs the unload handler if the window is loaded.
func (w *Window) Unload() {
	if !w.loaded {
		return
	}
	w.loaded = false
	logging.Info("window unload", "window", w.name, "id", w.id.String())
	if w.handlers.Unload != nil {
		w.handlers.Unload()
	}
}

// Destroy unloads the window and marks it dead. Safe to call repeatedly.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.Unload()
	w.destroyed = true
	logging.Debug("window destroyed", "window", w.name, "id", w.id.String())
}
