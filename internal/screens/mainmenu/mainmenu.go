package mainmenu

import (
	tea "charm.land/bubbletea/v2"

	"github.com/transitwatch/grtschedule/internal/logging"
	"github.com/transitwatch/grtschedule/internal/router"
	"github.com/transitwatch/grtschedule/internal/screen"
	"github.com/transitwatch/grtschedule/internal/screens/stopdetails"
	"github.com/transitwatch/grtschedule/internal/screens/stopselection"
	"github.com/transitwatch/grtschedule/internal/ui/components"
	"github.com/transitwatch/grtschedule/internal/ui/layout"
	"github.com/transitwatch/grtschedule/internal/window"
)

// About holds the informational rows of the menu.
type About struct {
	Version string
	Source  string
}

// child is a screen the main menu owns and must destroy.
type child interface {
	screen.Screen
	Destroy() tea.Cmd
}

// MainMenu is the root screen. It owns at most one child screen at a time.
type MainMenu struct {
	win   *window.Window
	menu  *components.SimpleMenu
	about About
	child child
}

var _ screen.Screen = (*MainMenu)(nil)
var _ screen.Windowed = (*MainMenu)(nil)
var _ screen.KeyHintProvider = (*MainMenu)(nil)

// New creates the main menu.
func New(about About) *MainMenu {
	logging.Info("creating main menu")
	m := &MainMenu{about: about}
	m.win = window.New("main_menu", window.Handlers{
		Load:   m.load,
		Unload: m.unload,
	})
	return m
}

// Show pushes the window onto the navigation stack.
func (m *MainMenu) Show() tea.Cmd {
	logging.Info("showing main menu")
	return router.Push(m)
}

// Hide removes the window from the navigation stack.
func (m *MainMenu) Hide() tea.Cmd {
	logging.Info("hiding main menu")
	return router.Remove(m)
}

// Destroy releases the owned child and the window.
func (m *MainMenu) Destroy() tea.Cmd {
	logging.Info("destroying main menu")
	cmd := m.adopt(nil)
	m.win.Destroy()
	return tea.Batch(cmd, router.Remove(m))
}

func (m *MainMenu) Window() *window.Window { return m.win }
func (m *MainMenu) Init() tea.Cmd          { return nil }
func (m *MainMenu) Title() string          { return "GRT Schedule" }

// Child returns the owned child screen, or nil.
func (m *MainMenu) Child() screen.Screen {
	if m.child == nil {
		return nil
	}
	return m.child
}

// Menu returns the loaded menu widget, or nil while unloaded.
func (m *MainMenu) Menu() *components.SimpleMenu { return m.menu }

func (m *MainMenu) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (m *MainMenu) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m.menu == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MainMenu) View(width, height int) string {
	if m.menu == nil {
		return ""
	}
	return m.menu.View(width, height)
}

// adopt makes c the owned child, destroying the previous one. It is the only
// place children are destroyed.
func (m *MainMenu) adopt(c child) tea.Cmd {
	var cmd tea.Cmd
	if m.child != nil {
		cmd = m.child.Destroy()
	}
	m.child = c
	return cmd
}

func (m *MainMenu) stopScheduleSelected(int) tea.Cmd {
	logging.Info("showing stop selection to get a stop id")
	sel := stopselection.New(m.showStopSchedule, m.stopSelectionCancelled)
	return tea.Batch(m.adopt(sel), sel.Show())
}

func (m *MainMenu) showStopSchedule(stopID int) tea.Cmd {
	logging.Info("stop selected", "stop_id", stopID)
	details := stopdetails.New(stopID)
	return tea.Batch(m.adopt(details), details.Show())
}

func (m *MainMenu) stopSelectionCancelled() tea.Cmd {
	logging.Info("stop selection cancelled, releasing it")
	return m.adopt(nil)
}

func (m *MainMenu) load() {
	logging.Info("initializing main menu")
	menu := components.NewSimpleMenu([]components.MenuSection{
		{Title: "GRT Schedule", Items: []components.MenuItem{
			{
				Title:    "Stop Schedule...",
				Subtitle: "View schedule for a stop",
				Callback: m.stopScheduleSelected,
			},
		}},
		{Title: "About", Items: []components.MenuItem{
			{Title: "Version", Subtitle: m.about.Version},
			{Title: "Source", Subtitle: m.about.Source},
		}},
	})
	m.menu = &menu
}

func (m *MainMenu) unload() {
	logging.Info("releasing main menu")
	m.menu = nil
}
