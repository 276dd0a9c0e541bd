package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/transitwatch/grtschedule/internal/ui/theme"
)

// Font selects how a TextLayer draws its text.
type Font int

const (
	FontDefault Font = iota
	// FontNumbers draws digits as large block numerals.
	FontNumbers
)

// TextLayer is a single-line text widget with its own colours.
type TextLayer struct {
	text       string
	font       Font
	alignment  lipgloss.Position
	foreground color.Color
	background color.Color
}

// NewTextLayer creates a left-aligned layer drawing dark text on a light
// background.
func NewTextLayer(text string) *TextLayer {
	return &TextLayer{
		text:       text,
		alignment:  lipgloss.Left,
		foreground: theme.Black,
		background: theme.White,
	}
}

func (t *TextLayer) Text() string        { return t.text }
func (t *TextLayer) SetText(text string) { t.text = text }
func (t *TextLayer) Font() Font          { return t.font }
func (t *TextLayer) SetFont(f Font)      { t.font = f }

func (t *TextLayer) Alignment() lipgloss.Position     { return t.alignment }
func (t *TextLayer) SetAlignment(p lipgloss.Position) { t.alignment = p }

func (t *TextLayer) TextColor() color.Color           { return t.foreground }
func (t *TextLayer) SetTextColor(c color.Color)       { t.foreground = c }
func (t *TextLayer) BackgroundColor() color.Color     { return t.background }
func (t *TextLayer) SetBackgroundColor(c color.Color) { t.background = c }

// Height returns the number of rows the layer occupies.
func (t *TextLayer) Height() int {
	if t.font == FontNumbers {
		return numeralHeight
	}
	return 1
}

// View renders the layer width cells wide.
func (t *TextLayer) View(width int) string {
	body := t.text
	if t.font == FontNumbers {
		body = renderNumerals(t.text)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(t.alignment).
		Foreground(t.foreground).
		Background(t.background).
		Render(body)
}
