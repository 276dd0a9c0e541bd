package stopdetails

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/transitwatch/grtschedule/internal/logging"
	"github.com/transitwatch/grtschedule/internal/router"
	"github.com/transitwatch/grtschedule/internal/screen"
	"github.com/transitwatch/grtschedule/internal/ui/components"
	"github.com/transitwatch/grtschedule/internal/ui/layout"
	"github.com/transitwatch/grtschedule/internal/window"
)

// NextBusRows is the number of arrival rows shown for a stop.
const NextBusRows = 5

const placeholder = "--"

// FormatStopID renders id as a four-digit, zero-padded stop number.
func FormatStopID(id int) string {
	return fmt.Sprintf("%04d", id)
}

// StopDetailsScreen shows a stop id and its upcoming buses.
type StopDetailsScreen struct {
	stopID int
	win    *window.Window
	menu   *components.SimpleMenu
}

var _ screen.Screen = (*StopDetailsScreen)(nil)
var _ screen.Windowed = (*StopDetailsScreen)(nil)
var _ screen.KeyHintProvider = (*StopDetailsScreen)(nil)

// New creates a details screen for stopID. Widgets are built when the window
// loads.
func New(stopID int) *StopDetailsScreen {
	logging.Info("creating stop details", "stop_id", stopID)
	d := &StopDetailsScreen{stopID: stopID}
	d.win = window.New("stop_details", window.Handlers{
		Load:   d.load,
		Unload: d.unload,
	})
	return d
}

// Show pushes the window onto the navigation stack.
func (d *StopDetailsScreen) Show() tea.Cmd {
	logging.Info("showing stop details", "stop_id", d.stopID)
	return router.Push(d)
}

// Hide removes the window from the navigation stack.
func (d *StopDetailsScreen) Hide() tea.Cmd {
	logging.Info("hiding stop details", "stop_id", d.stopID)
	return router.Remove(d)
}

// Destroy releases the window. The instance must not be used afterwards.
func (d *StopDetailsScreen) Destroy() tea.Cmd {
	logging.Info("destroying stop details", "stop_id", d.stopID)
	d.win.Destroy()
	return router.Remove(d)
}

func (d *StopDetailsScreen) StopID() int            { return d.stopID }
func (d *StopDetailsScreen) Window() *window.Window { return d.win }
func (d *StopDetailsScreen) Init() tea.Cmd          { return nil }
func (d *StopDetailsScreen) Title() string          { return "Stop " + FormatStopID(d.stopID) }

// Menu returns the loaded menu widget, or nil while unloaded.
func (d *StopDetailsScreen) Menu() *components.SimpleMenu { return d.menu }

func (d *StopDetailsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *StopDetailsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if d.menu == nil {
		return d, nil
	}
	var cmd tea.Cmd
	*d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *StopDetailsScreen) View(width, height int) string {
	if d.menu == nil {
		return ""
	}
	return d.menu.View(width, height)
}

func (d *StopDetailsScreen) load() {
	logging.Info("initializing stop details menu")
	id := FormatStopID(d.stopID)

	buses := make([]components.MenuItem, NextBusRows)
	for i := range buses {
		buses[i] = components.MenuItem{Title: placeholder, Subtitle: placeholder}
	}

	menu := components.NewSimpleMenu([]components.MenuSection{
		{Title: "Stop Details", Items: []components.MenuItem{
			{Title: "Stop ID: " + id, Subtitle: id},
		}},
		{Title: "Next Buses", Items: buses},
	})
	d.menu = &menu
}

func (d *StopDetailsScreen) unload() {
	logging.Info("releasing stop details menu")
	d.menu = nil
}
