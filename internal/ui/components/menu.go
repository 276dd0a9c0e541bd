package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/transitwatch/grtschedule/internal/button"
	"github.com/transitwatch/grtschedule/internal/ui/theme"
)

// MenuItem is a single row in a SimpleMenu. Rows without a Callback are
// informational and can be highlighted but not activated.
type MenuItem struct {
	Title    string
	Subtitle string
	Callback func(index int) tea.Cmd
}

// MenuSection groups rows under a header.
type MenuSection struct {
	Title string
	Items []MenuItem
}

// SimpleMenu is a sectioned list driven by watch buttons.
type SimpleMenu struct {
	Sections []MenuSection
	// Selected is the flat row index across all sections.
	Selected int
}

// NewSimpleMenu creates a menu with the first row highlighted.
func NewSimpleMenu(sections []MenuSection) SimpleMenu {
	return SimpleMenu{Sections: sections}
}

// Rows returns the total number of rows across all sections.
func (m SimpleMenu) Rows() int {
	n := 0
	for _, s := range m.Sections {
		n += len(s.Items)
	}
	return n
}

// Locate maps a flat row index to its section and row within that section.
func (m SimpleMenu) Locate(flat int) (section, row int, ok bool) {
	if flat < 0 {
		return 0, 0, false
	}
	for si, s := range m.Sections {
		if flat < len(s.Items) {
			return si, flat, true
		}
		flat -= len(s.Items)
	}
	return 0, 0, false
}

// SelectedItem returns the highlighted row.
func (m SimpleMenu) SelectedItem() (MenuItem, bool) {
	si, ri, ok := m.Locate(m.Selected)
	if !ok {
		return MenuItem{}, false
	}
	return m.Sections[si].Items[ri], true
}

// Update handles button presses.
func (m SimpleMenu) Update(msg tea.Msg) (SimpleMenu, tea.Cmd) {
	press, ok := msg.(button.PressMsg)
	if !ok {
		return m, nil
	}

	switch press.Button {
	case button.Up:
		if m.Selected > 0 {
			m.Selected--
		}
	case button.Down:
		if m.Selected < m.Rows()-1 {
			m.Selected++
		}
	case button.Select:
		si, ri, ok := m.Locate(m.Selected)
		if !ok {
			return m, nil
		}
		if cb := m.Sections[si].Items[ri].Callback; cb != nil {
			return m, cb(ri)
		}
	}

	return m, nil
}

// View renders the menu, scrolled so the highlighted row is visible.
func (m SimpleMenu) View(width, height int) string {
	var lines []string
	selStart, selEnd := 0, 0
	flat := 0

	for _, s := range m.Sections {
		lines = append(lines, theme.SectionHeader.Width(width).Render(s.Title))
		for _, item := range s.Items {
			titleStyle, subStyle := theme.RowTitle, theme.RowSubtitle
			if flat == m.Selected {
				titleStyle, subStyle = theme.RowSelected, theme.RowSelectedSubtitle
				selStart = len(lines)
			}
			lines = append(lines, titleStyle.Width(width).Render(item.Title))
			if item.Subtitle != "" {
				lines = append(lines, subStyle.Width(width).Render(item.Subtitle))
			}
			if flat == m.Selected {
				selEnd = len(lines)
			}
			flat++
		}
	}

	offset := 0
	if height > 0 && selEnd > height {
		offset = selEnd - height
		if offset > selStart {
			offset = selStart
		}
	}
	lines = lines[offset:]
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}
