package button

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Button is one of the four watch buttons.
type Button int

const (
	Up Button = iota
	Down
	Select
	Back
)

func (b Button) String() string {
	switch b {
	case Up:
		return "up"
	case Down:
		return "down"
	case Select:
		return "select"
	case Back:
		return "back"
	}
	return "unknown"
}

// PressMsg is delivered to the topmost screen when a button is pressed.
type PressMsg struct {
	Button Button
}

// KeyMap binds terminal keys to watch buttons.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

// DefaultKeyMap returns the standard arrow/vim/enter/esc bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "Up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "Down")),
		Select: key.NewBinding(key.WithKeys("enter", "space", "right", "l"), key.WithHelp("Enter", "Select")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace", "left", "h"), key.WithHelp("Esc", "Back")),
	}
}

// Lookup reports which button, if any, msg is bound to.
func (k KeyMap) Lookup(msg tea.KeyPressMsg) (Button, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return Up, true
	case key.Matches(msg, k.Down):
		return Down, true
	case key.Matches(msg, k.Select):
		return Select, true
	case key.Matches(msg, k.Back):
		return Back, true
	}
	return 0, false
}

// Binding returns the key binding for b.
func (k KeyMap) Binding(b Button) key.Binding {
	switch b {
	case Up:
		return k.Up
	case Down:
		return k.Down
	case Select:
		return k.Select
	default:
		return k.Back
	}
}
