package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/transitwatch/grtschedule/internal/logging"
	"github.com/transitwatch/grtschedule/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// RemoveScreenMsg requests the router to remove a specific screen wherever
// it sits in the stack.
type RemoveScreenMsg struct {
	Screen screen.Screen
}

// ReplaceScreenMsg requests the router to replace the top screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Push returns a command requesting s be pushed.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Remove returns a command requesting s be removed.
func Remove(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return RemoveScreenMsg{Screen: s} }
}

// Router manages a stack of screens.
type Router struct {
	stack []screen.Screen
}

// New creates a new Router with the given initial screen.
func New(initial screen.Screen) *Router {
	load(initial)
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Push adds a screen on top of the stack, loads it and calls its Init().
// Pushing a screen that is already stacked moves it to the top. A screen
// whose window has been destroyed is dropped.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	if destroyed(s) {
		logging.Warn("push of destroyed screen ignored", "title", s.Title())
		return nil
	}
	if i := r.indexOf(s); i >= 0 {
		r.stack = append(r.stack[:i], r.stack[i+1:]...)
	}
	r.stack = append(r.stack, s)
	load(s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	unload(top)
	return nil
}

// Remove takes s out of the stack wherever it is. No-op if s is not stacked
// or is the only screen.
func (r *Router) Remove(s screen.Screen) tea.Cmd {
	i := r.indexOf(s)
	if i < 0 || len(r.stack) <= 1 {
		return nil
	}
	r.stack = append(r.stack[:i], r.stack[i+1:]...)
	unload(s)
	return nil
}

// Replace swaps the top screen for s and calls its Init(). A screen whose
// window has been destroyed is dropped and the top stays in place.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if destroyed(s) {
		logging.Warn("replace with destroyed screen ignored", "title", s.Title())
		return nil
	}
	if len(r.stack) == 0 {
		r.stack = append(r.stack, s)
	} else {
		top := r.stack[len(r.stack)-1]
		r.stack[len(r.stack)-1] = s
		unload(top)
	}
	load(s)
	return s.Init()
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Contains reports whether s is somewhere in the stack.
func (r *Router) Contains(s screen.Screen) bool {
	return r.indexOf(s) >= 0
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case RemoveScreenMsg:
		return r.Remove(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

func (r *Router) indexOf(s screen.Screen) int {
	for i, entry := range r.stack {
		if entry == s {
			return i
		}
	}
	return -1
}

func destroyed(s screen.Screen) bool {
	w, ok := s.(screen.Windowed)
	return ok && w.Window().Destroyed()
}

func load(s screen.Screen) {
	if w, ok := s.(screen.Windowed); ok {
		w.Window().Load()
		return
	}
	logging.Debug("screen pushed without window", "title", s.Title())
}

func unload(s screen.Screen) {
	if w, ok := s.(screen.Windowed); ok {
		w.Window().Unload()
	}
}
