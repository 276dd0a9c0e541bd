package stopselection

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitwatch/grtschedule/internal/button"
	"github.com/transitwatch/grtschedule/internal/digits"
	"github.com/transitwatch/grtschedule/internal/router"
	"github.com/transitwatch/grtschedule/internal/ui/theme"
)

type completedMsg struct{ stopID int }
type cancelledMsg struct{}

// harness records callback invocations.
type harness struct {
	completed []int
	cancelled int
}

func (h *harness) complete(id int) tea.Cmd {
	h.completed = append(h.completed, id)
	return func() tea.Msg { return completedMsg{stopID: id} }
}

func (h *harness) cancel() tea.Cmd {
	h.cancelled++
	return func() tea.Msg { return cancelledMsg{} }
}

func newLoaded(t *testing.T) (*StopSelection, *harness) {
	t.Helper()
	h := &harness{}
	s := New(h.complete, h.cancel)
	s.Window().Load()
	return s, h
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func press(s *StopSelection, buttons ...button.Button) []tea.Msg {
	var msgs []tea.Msg
	for _, b := range buttons {
		_, cmd := s.Update(button.PressMsg{Button: b})
		msgs = append(msgs, drain(cmd)...)
	}
	return msgs
}

func assertSingleActive(t *testing.T, s *StopSelection) {
	t.Helper()
	active := 0
	for i := 0; i < digits.Count; i++ {
		l := s.Layer(i)
		require.NotNil(t, l)
		if assert.ObjectsAreEqual(theme.Black, l.BackgroundColor()) {
			active++
			assert.Equal(t, theme.White, l.TextColor())
			assert.Equal(t, s.Entry().Active, i)
		} else {
			assert.Equal(t, theme.White, l.BackgroundColor())
			assert.Equal(t, theme.Black, l.TextColor())
		}
	}
	assert.Equal(t, 1, active)
}

func TestNewStartsAtZero(t *testing.T) {
	s := New(nil, nil)
	assert.Equal(t, digits.Entry{}, s.Entry())
	assert.Nil(t, s.Layer(0), "layers are built on load")
	assert.False(t, s.Window().Loaded())
}

func TestLoadBuildsLayers(t *testing.T) {
	s, _ := newLoaded(t)
	for i := 0; i < digits.Count; i++ {
		assert.Equal(t, "0", s.Layer(i).Text())
	}
	assertSingleActive(t, s)
	assert.Nil(t, s.Layer(digits.Count))
}

func TestUpDownUpdateLayerText(t *testing.T) {
	s, _ := newLoaded(t)

	press(s, button.Down)
	assert.Equal(t, "9", s.Layer(0).Text())

	press(s, button.Up, button.Up)
	assert.Equal(t, "1", s.Layer(0).Text())
	assert.Equal(t, "0", s.Layer(1).Text())
}

func TestHighlightFollowsActiveDigit(t *testing.T) {
	s, _ := newLoaded(t)
	seq := []button.Button{button.Select, button.Select, button.Back, button.Up, button.Select, button.Select}
	for _, b := range seq {
		press(s, b)
		assertSingleActive(t, s)
	}
	assert.Equal(t, 3, s.Entry().Active)
}

func TestSelectFourTimesCompletesWithZero(t *testing.T) {
	s, h := newLoaded(t)
	msgs := press(s, button.Select, button.Select, button.Select, button.Select)

	assert.Equal(t, []int{0}, h.completed)
	assert.Zero(t, h.cancelled)
	assert.Contains(t, msgs, tea.Msg(router.RemoveScreenMsg{Screen: s}))
	assert.Contains(t, msgs, tea.Msg(completedMsg{stopID: 0}))
}

func TestEnter1234(t *testing.T) {
	s, h := newLoaded(t)
	press(s,
		button.Up, button.Select,
		button.Up, button.Up, button.Select,
		button.Up, button.Up, button.Up, button.Select,
		button.Up, button.Up, button.Up, button.Up, button.Select,
	)
	assert.Equal(t, []int{1234}, h.completed)
}

func TestBackFromThirdDigitThenCancel(t *testing.T) {
	s, h := newLoaded(t)
	press(s, button.Select, button.Select)
	require.Equal(t, 2, s.Entry().Active)

	msgs := press(s, button.Back, button.Back)
	assert.Empty(t, msgs)
	assert.Equal(t, 0, s.Entry().Active)
	assertSingleActive(t, s)

	msgs = press(s, button.Back)
	assert.Equal(t, 1, h.cancelled)
	assert.Empty(t, h.completed)
	assert.Contains(t, msgs, tea.Msg(router.RemoveScreenMsg{Screen: s}))
	assert.Contains(t, msgs, tea.Msg(cancelledMsg{}))
}

func TestCancelWithoutCallbackOnlyHides(t *testing.T) {
	s := New(func(int) tea.Cmd { return nil }, nil)
	s.Window().Load()

	msgs := press(s, button.Back)
	assert.Equal(t, []tea.Msg{router.RemoveScreenMsg{Screen: s}}, msgs)
}

func TestInputIgnoredAfterFinish(t *testing.T) {
	s, h := newLoaded(t)
	press(s, button.Back)
	msgs := press(s, button.Up, button.Back, button.Select)

	assert.Empty(t, msgs)
	assert.Equal(t, 1, h.cancelled)
	assert.Equal(t, 0, s.Entry().Digits[0])
}

func TestActivateDigitRejectsOutOfRange(t *testing.T) {
	s, _ := newLoaded(t)
	s.activateDigit(digits.Count)
	s.activateDigit(-1)
	assert.Equal(t, 0, s.Entry().Active)
	assertSingleActive(t, s)
}

func TestUnloadReleasesLayersAndReloadKeepsDigits(t *testing.T) {
	s, _ := newLoaded(t)
	press(s, button.Up, button.Up, button.Select)

	s.Window().Unload()
	assert.Nil(t, s.Layer(0))
	assert.Empty(t, s.View(40, 10))

	s.Window().Load()
	assert.Equal(t, "2", s.Layer(0).Text())
	assert.Equal(t, 1, s.Entry().Active)
	assertSingleActive(t, s)
}

func TestDestroyIsFinal(t *testing.T) {
	s, h := newLoaded(t)
	cmd := s.Destroy()
	assert.Equal(t, router.RemoveScreenMsg{Screen: s}, cmd())
	assert.True(t, s.Window().Destroyed())
	assert.Nil(t, s.Layer(0))

	assert.Empty(t, press(s, button.Back))
	assert.Zero(t, h.cancelled)
}

func TestShowHideCommands(t *testing.T) {
	s := New(nil, nil)
	assert.Equal(t, router.PushScreenMsg{Screen: s}, s.Show()())
	assert.Equal(t, router.RemoveScreenMsg{Screen: s}, s.Hide()())
	assert.True(t, s.HandlesBack())
}

func TestViewRendersDigits(t *testing.T) {
	s, _ := newLoaded(t)
	view := s.View(40, 12)
	assert.Contains(t, view, "Enter a stop number")
	assert.Contains(t, view, "███")
}
