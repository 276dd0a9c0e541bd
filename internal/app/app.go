package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/transitwatch/grtschedule/internal/button"
	"github.com/transitwatch/grtschedule/internal/logging"
	"github.com/transitwatch/grtschedule/internal/router"
	"github.com/transitwatch/grtschedule/internal/screen"
	"github.com/transitwatch/grtschedule/internal/screens/mainmenu"
	"github.com/transitwatch/grtschedule/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	About mainmenu.About

	// Width and Height pin the watch face size. Zero follows the terminal.
	Width  int
	Height int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	menu   *mainmenu.MainMenu
	keys   button.KeyMap
	opts   Options
	now    func() time.Time
	width  int
	height int
}

// newAppModel creates a new AppModel with the main menu at the root.
func newAppModel(opts Options) AppModel {
	menu := mainmenu.New(opts.About)
	return AppModel{
		router: router.New(menu),
		menu:   menu,
		keys:   button.DefaultKeyMap(),
		opts:   opts,
		now:    time.Now,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		b, ok := m.keys.Lookup(msg)
		if !ok {
			return m, nil
		}
		if b == button.Back && !m.activeHandlesBack() {
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			logging.Info("back pressed on root screen, exiting")
			return m, tea.Quit
		}
		return m, m.router.Update(button.PressMsg{Button: b})
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) activeHandlesBack() bool {
	h, ok := m.router.Active().(screen.BackHandler)
	return ok && h.HandlesBack()
}

func (m AppModel) faceSize() (int, int) {
	w, h := m.width, m.height
	if m.opts.Width > 0 {
		w = min(w, m.opts.Width)
	}
	if m.opts.Height > 0 {
		h = min(h, m.opts.Height)
	}
	if m.opts.Width == 0 && m.opts.Height == 0 {
		w, h = layout.FaceSize(w, h)
	}
	return w, h
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the whole terminal frame.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	width, height := m.faceSize()
	if layout.IsTooSmall(width, height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}
	return m.renderFace(width, height)
}

func (m AppModel) renderFace(width, height int) string {
	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	inner := width - 2
	header := layout.RenderHeader(title, m.now().Format("15:04"), inner)
	footer := layout.RenderFooter(m.footerHints(active), inner)

	contentWidth, contentHeight := layout.ContentSize(header, footer, width, height)
	content := m.router.View(contentWidth, contentHeight)
	return layout.RenderFrame(header, content, footer, width, height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	hints := []layout.KeyHint{}
	for _, b := range []button.Button{button.Select, button.Back} {
		h := m.keys.Binding(b).Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// Run starts the Bubble Tea program and destroys the main menu on exit.
func Run(opts Options) error {
	model := newAppModel(opts)
	defer model.menu.Destroy()

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
