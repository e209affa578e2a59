// Package format renders tasks, changelog entries and menus as chat text
// with inline button layouts. Everything here is pure: same input, same
// output, no storage access.
package format

import (
	"github.com/bigcommunity/taskbot/internal/domain"
)

// Display timestamp layouts.
const (
	dateTimeLayout  = "02/01/2006 15:04"
	shortDateLayout = "02/01 15:04"
)

// List truncation limits.
const (
	ownTasksLimit      = 10
	changelogListLimit = 15
	categoryListLimit  = 20
)

const titleLabelLimit = 30

// Button is one inline button: a label the user sees and the callback data
// sent back when pressed.
type Button struct {
	Label string
	Data  string
}

// Keyboard is rows of buttons.
type Keyboard [][]Button

// StatusEmoji returns the marker for a task status, ❓ for unknown values.
func StatusEmoji(s domain.Status) string {
	switch s {
	case domain.StatusPending:
		return "⏳"
	case domain.StatusInProgress:
		return "🔄"
	case domain.StatusDone:
		return "✅"
	}
	return "❓"
}

// PriorityEmoji returns the marker for a priority, ⚪ for unknown values.
func PriorityEmoji(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "🔴"
	case domain.PriorityMedium:
		return "🟡"
	case domain.PriorityLow:
		return "🟢"
	}
	return "⚪"
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
