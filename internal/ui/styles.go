// Package ui provides terminal styling for grid and attendance output.
package ui

import (
	"fmt"

	"github.com/andeibuite/checkin/internal/model"
)

// ANSI256 codes for non-status accents.
const (
	colorAccent = 74  // blue
	colorMuted  = 245 // medium gray
)

var noColor bool

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorAccent, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorMuted, s)
}

// RenderStatus colors s with the status palette: green for checked, red for
// unchecked, yellow for marked.
func RenderStatus(s string, status model.AttendanceStatus) string {
	if noColor {
		return s
	}
	r, g, b := status.RGB()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}
