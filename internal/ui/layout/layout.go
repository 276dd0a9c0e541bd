package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/transitwatch/grtschedule/internal/ui/theme"
)

const (
	MinWidth  = 32
	MinHeight = 14

	// FaceWidth and FaceHeight bound the watch face when the terminal is
	// larger than a watch.
	FaceWidth  = 48
	FaceHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// FaceSize clamps the terminal size to the watch face.
func FaceSize(width, height int) (int, int) {
	return min(width, FaceWidth), min(height, FaceHeight)
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nResize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the status bar: app name, screen title and clock.
func RenderHeader(title, clock string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("GRT")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(clock)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Padding(0, 1).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Padding(0, 1).
		Render(strings.Join(parts, "  "))
}

// RenderFrame composes the full frame: header + content + footer, wrapped in
// a rounded bezel.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	// Two rows and columns go to the bezel.
	contentHeight := height - headerHeight - footerHeight - 2
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width - 2).
		Height(contentHeight).
		Render(content)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(header + "\n" + styledContent + "\n" + footer)
}

// ContentSize returns the space left for a screen inside the frame.
func ContentSize(header, footer string, width, height int) (int, int) {
	h := height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if h < 0 {
		h = 0
	}
	w := width - 2
	if w < 0 {
		w = 0
	}
	return w, h
}
