// Package stopselection implements the four-digit stop number spinner.
package stopselection

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/transitwatch/grtschedule/internal/button"
	"github.com/transitwatch/grtschedule/internal/digits"
	"github.com/transitwatch/grtschedule/internal/logging"
	"github.com/transitwatch/grtschedule/internal/router"
	"github.com/transitwatch/grtschedule/internal/screen"
	"github.com/transitwatch/grtschedule/internal/ui/components"
	"github.com/transitwatch/grtschedule/internal/ui/layout"
	"github.com/transitwatch/grtschedule/internal/ui/theme"
	"github.com/transitwatch/grtschedule/internal/window"
)

// CompleteFunc receives the entered stop id.
type CompleteFunc func(stopID int) tea.Cmd

// CancelFunc is called when the user backs out of the first digit.
type CancelFunc func() tea.Cmd

// StopSelection lets the user spin four digits into a stop id. Once it has
// completed or been cancelled it ignores further input and its owner is
// expected to destroy it.
type StopSelection struct {
	win        *window.Window
	entry      digits.Entry
	layers     [digits.Count]*components.TextLayer
	onComplete CompleteFunc
	onCancel   CancelFunc
	finished   bool
}

var _ screen.Screen = (*StopSelection)(nil)
var _ screen.Windowed = (*StopSelection)(nil)
var _ screen.BackHandler = (*StopSelection)(nil)
var _ screen.KeyHintProvider = (*StopSelection)(nil)

// New creates a StopSelection showing "0000" with the first digit active.
// onCancel may be nil.
func New(onComplete CompleteFunc, onCancel CancelFunc) *StopSelection {
	logging.Info("creating stop selection")
	s := &StopSelection{onComplete: onComplete, onCancel: onCancel}
	s.win = window.New("stop_selection", window.Handlers{
		Load:   s.load,
		Unload: s.unload,
	})
	return s
}

// Show pushes the window onto the navigation stack.
func (s *StopSelection) Show() tea.Cmd {
	logging.Info("showing stop selection", "window", s.win.ID().String())
	return router.Push(s)
}

// Hide removes the window from the navigation stack.
func (s *StopSelection) Hide() tea.Cmd {
	logging.Info("hiding stop selection", "window", s.win.ID().String())
	return router.Remove(s)
}

// Destroy releases the window and its layers. The instance must not be used
// afterwards.
func (s *StopSelection) Destroy() tea.Cmd {
	logging.Info("destroying stop selection", "window", s.win.ID().String())
	s.finished = true
	s.win.Destroy()
	return router.Remove(s)
}

func (s *StopSelection) Window() *window.Window { return s.win }
func (s *StopSelection) HandlesBack() bool      { return true }
func (s *StopSelection) Init() tea.Cmd          { return nil }
func (s *StopSelection) Title() string          { return "Stop Number" }

// Entry returns the current digit state.
func (s *StopSelection) Entry() digits.Entry { return s.entry }

// Layer returns the text layer for digit i, or nil while unloaded.
func (s *StopSelection) Layer(i int) *components.TextLayer {
	if i < 0 || i >= digits.Count {
		return nil
	}
	return s.layers[i]
}

func (s *StopSelection) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Digit"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StopSelection) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	press, ok := msg.(button.PressMsg)
	if !ok || s.finished {
		return s, nil
	}
	logging.Debug("button pressed on stop selection", "button", press.Button.String())

	next, outcome := digits.Step(s.entry, press.Button)
	switch outcome {
	case digits.OutcomeComplete:
		s.finished = true
		stopID := next.Value()
		logging.Info("stop selection complete", "stop_id", stopID)
		cmds := []tea.Cmd{s.Hide()}
		if s.onComplete != nil {
			cmds = append(cmds, s.onComplete(stopID))
		}
		return s, tea.Batch(cmds...)

	case digits.OutcomeCancel:
		s.finished = true
		logging.Info("stop selection cancelled")
		cmds := []tea.Cmd{s.Hide()}
		if s.onCancel != nil {
			cmds = append(cmds, s.onCancel())
		}
		return s, tea.Batch(cmds...)
	}

	if next.Active != s.entry.Active {
		s.entry.Digits = next.Digits
		s.activateDigit(next.Active)
	} else {
		s.entry = next
		s.syncText(s.entry.Active)
	}
	return s, nil
}

// activateDigit moves the highlight to digit i. Out-of-range indices are
// logged and ignored.
func (s *StopSelection) activateDigit(i int) {
	prev := s.entry.Active
	if !s.entry.Activate(i) {
		logging.Warn("invalid digit index", "index", i)
		return
	}
	logging.Info("changing active digit", "index", i)
	s.paint(prev)
	s.paint(i)
}

// paint applies active/inactive colours to layer i.
func (s *StopSelection) paint(i int) {
	l := s.layers[i]
	if l == nil {
		return
	}
	if i == s.entry.Active {
		l.SetBackgroundColor(theme.Black)
		l.SetTextColor(theme.White)
	} else {
		l.SetBackgroundColor(theme.White)
		l.SetTextColor(theme.Black)
	}
}

func (s *StopSelection) syncText(i int) {
	if l := s.layers[i]; l != nil {
		l.SetText(strconv.Itoa(s.entry.Digits[i]))
	}
}

func (s *StopSelection) load() {
	logging.Info("initializing stop selection layers")
	for i := range s.layers {
		l := components.NewTextLayer("")
		l.SetFont(components.FontNumbers)
		l.SetAlignment(lipgloss.Center)
		s.layers[i] = l
		s.syncText(i)
		s.paint(i)
	}
	s.activateDigit(s.entry.Active)
}

func (s *StopSelection) unload() {
	logging.Info("releasing stop selection layers")
	for i := range s.layers {
		s.layers[i] = nil
	}
}

func (s *StopSelection) View(width, height int) string {
	if !s.win.Loaded() {
		return ""
	}

	digitWidth := width / digits.Count
	views := make([]string, 0, digits.Count)
	for _, l := range s.layers {
		views = append(views, l.View(digitWidth))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, views...)

	caption := theme.Hint.Render("Enter a stop number")
	body := strings.Join([]string{caption, "", row}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
