package components

import "strings"

// numeralHeight is the row count of a large numeral glyph.
const numeralHeight = 5

var numerals = map[rune][numeralHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", " ██", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", " █ ", " █ ", " █ "},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
}

// renderNumerals draws text in the large numeral font. Runes without a
// glyph are drawn at normal size on the middle row.
func renderNumerals(text string) string {
	var rows [numeralHeight][]string
	for _, r := range text {
		glyph, ok := numerals[r]
		if !ok {
			blank := strings.Repeat(" ", 3)
			glyph = [numeralHeight]string{blank, blank, " " + string(r) + " ", blank, blank}
		}
		for i := range rows {
			rows[i] = append(rows[i], glyph[i])
		}
	}

	lines := make([]string, numeralHeight)
	for i, parts := range rows {
		lines[i] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}
