package theme

import (
	"charm.land/lipgloss/v2"
)

// Monochrome watch palette
var (
	Black     = lipgloss.Color("#000000")
	White     = lipgloss.Color("#FFFFFF")
	Primary   = lipgloss.Color("#F59E0B") // Transit Amber
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	Highlight = lipgloss.Color("#0F172A") // Deep Navy
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Menu
var (
	SectionHeader = lipgloss.NewStyle().
			Foreground(Black).
			Background(TextDim).
			Bold(true).
			Padding(0, 1)

	RowTitle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	RowSubtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)

	RowSelected = lipgloss.NewStyle().
			Foreground(Black).
			Background(White).
			Bold(true).
			Padding(0, 1)

	RowSelectedSubtitle = lipgloss.NewStyle().
				Foreground(Black).
				Background(White).
				Padding(0, 1)
)
