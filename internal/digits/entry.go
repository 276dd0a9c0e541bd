// Package digits models fixed-width numeric entry driven by watch buttons.
package digits

import (
	"strings"

	"github.com/transitwatch/grtschedule/internal/button"
)

// Count is the number of digits in an entry.
const Count = 4

// Outcome is the result of applying a button press to an Entry.
type Outcome int

const (
	// OutcomeNone means entry continues.
	OutcomeNone Outcome = iota
	// OutcomeComplete means Select was pressed on the last digit.
	OutcomeComplete
	// OutcomeCancel means Back was pressed on the first digit.
	OutcomeCancel
)

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeCancel:
		return "cancel"
	}
	return "none"
}

// Entry is the state of a four-digit spinner: the value of each digit and
// the index of the digit receiving Up/Down.
type Entry struct {
	Digits [Count]int
	Active int
}

// Activate makes digit i the active one. Indices outside [0, Count) are
// rejected and leave e unchanged.
func (e *Entry) Activate(i int) bool {
	if i < 0 || i >= Count {
		return false
	}
	e.Active = i
	return true
}

// Value returns the assembled number, most significant digit first.
func (e Entry) Value() int {
	v := 0
	for _, d := range e.Digits {
		v = v*10 + d
	}
	return v
}

// String renders the digits, e.g. "0042".
func (e Entry) String() string {
	var b strings.Builder
	for _, d := range e.Digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// Step applies one button press and returns the next state.
func Step(e Entry, b button.Button) (Entry, Outcome) {
	switch b {
	case button.Up:
		e.Digits[e.Active] = (e.Digits[e.Active] + 1) % 10
	case button.Down:
		e.Digits[e.Active] = (e.Digits[e.Active] + 9) % 10
	case button.Select:
		if e.Active == Count-1 {
			return e, OutcomeComplete
		}
		e.Active++
	case button.Back:
		if e.Active == 0 {
			return e, OutcomeCancel
		}
		e.Active--
	}
	return e, OutcomeNone
}
