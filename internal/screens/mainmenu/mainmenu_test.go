package mainmenu

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitwatch/grtschedule/internal/button"
	"github.com/transitwatch/grtschedule/internal/router"
	"github.com/transitwatch/grtschedule/internal/screens/stopdetails"
	"github.com/transitwatch/grtschedule/internal/screens/stopselection"
)

// run feeds msgs through the router, executing every command produced until
// the queue is empty.
func run(r *router.Router, msgs ...tea.Msg) {
	queue := append([]tea.Msg(nil), msgs...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c != nil {
					queue = append(queue, c())
				}
			}
			continue
		}
		if cmd := r.Update(msg); cmd != nil {
			queue = append(queue, cmd())
		}
	}
}

func pressN(b button.Button, n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = button.PressMsg{Button: b}
	}
	return msgs
}

func newRouter() (*router.Router, *MainMenu) {
	m := New(About{Version: "test", Source: "example.com/grt"})
	return router.New(m), m
}

func TestMenuSections(t *testing.T) {
	_, m := newRouter()
	menu := m.Menu()
	require.NotNil(t, menu)
	require.Len(t, menu.Sections, 2)

	assert.Equal(t, "GRT Schedule", menu.Sections[0].Title)
	require.Len(t, menu.Sections[0].Items, 1)
	assert.Equal(t, "Stop Schedule...", menu.Sections[0].Items[0].Title)
	assert.NotNil(t, menu.Sections[0].Items[0].Callback)

	assert.Equal(t, "About", menu.Sections[1].Title)
	require.Len(t, menu.Sections[1].Items, 2)
	for _, item := range menu.Sections[1].Items {
		assert.Nil(t, item.Callback)
	}
	assert.Equal(t, "test", menu.Sections[1].Items[0].Subtitle)
}

func TestSelectingStopScheduleShowsSelection(t *testing.T) {
	r, m := newRouter()
	run(r, button.PressMsg{Button: button.Select})

	sel, ok := r.Active().(*stopselection.StopSelection)
	require.True(t, ok, "expected stop selection on top, got %T", r.Active())
	assert.Same(t, sel, m.Child())
	assert.Equal(t, 2, r.Depth())
}

func TestCompletingEntryShowsDetails(t *testing.T) {
	r, m := newRouter()
	run(r, button.PressMsg{Button: button.Select})
	sel := m.Child().(*stopselection.StopSelection)

	// 0042: advance twice, Up x4, advance, Up x2, confirm.
	run(r, pressN(button.Select, 2)...)
	run(r, pressN(button.Up, 4)...)
	run(r, button.PressMsg{Button: button.Select})
	run(r, pressN(button.Up, 2)...)
	run(r, button.PressMsg{Button: button.Select})

	details, ok := r.Active().(*stopdetails.StopDetailsScreen)
	require.True(t, ok, "expected stop details on top, got %T", r.Active())
	assert.Equal(t, 42, details.StopID())
	assert.Same(t, details, m.Child())
	assert.Equal(t, 2, r.Depth())
	assert.False(t, r.Contains(sel))
	assert.True(t, sel.Window().Destroyed())

	view := r.View(40, 40)
	assert.Contains(t, view, "Stop ID: 0042")
}

func TestCancelReleasesSelection(t *testing.T) {
	r, m := newRouter()
	run(r, button.PressMsg{Button: button.Select})
	sel := m.Child().(*stopselection.StopSelection)

	run(r, button.PressMsg{Button: button.Back})

	assert.Nil(t, m.Child())
	assert.True(t, sel.Window().Destroyed())
	assert.Same(t, m, r.Active())
	assert.Equal(t, 1, r.Depth())
}

func TestNewEntryDestroysPreviousDetails(t *testing.T) {
	r, m := newRouter()
	run(r, button.PressMsg{Button: button.Select})
	run(r, pressN(button.Select, 4)...)
	details := m.Child().(*stopdetails.StopDetailsScreen)

	run(r, router.PopScreenMsg{})
	require.Same(t, m, r.Active())
	assert.Same(t, details, m.Child(), "details stay owned after being popped")

	run(r, button.PressMsg{Button: button.Select})
	assert.True(t, details.Window().Destroyed())
	_, isSel := m.Child().(*stopselection.StopSelection)
	assert.True(t, isSel)
}

func TestDestroyReleasesChild(t *testing.T) {
	r, m := newRouter()
	run(r, button.PressMsg{Button: button.Select})
	run(r, pressN(button.Select, 4)...)
	details := m.Child().(*stopdetails.StopDetailsScreen)

	m.Destroy()
	assert.Nil(t, m.Child())
	assert.True(t, details.Window().Destroyed())
	assert.True(t, m.Window().Destroyed())
	assert.Nil(t, m.Menu())
}

func TestViewListsRows(t *testing.T) {
	r, _ := newRouter()
	view := r.View(40, 20)
	for _, want := range []string{"GRT Schedule", "Stop Schedule...", "About", "Version", "Source"} {
		assert.Contains(t, view, want)
	}
}
