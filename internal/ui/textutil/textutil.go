// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Center truncates s to width columns and returns it with the left and right
// padding that centers it. Odd slack goes to the right.
func Center(s string, width int) (left int, text string, right int) {
	if width <= 0 {
		return 0, "", 0
	}
	text = Truncate(s, width)
	slack := width - VisualWidth(text)
	left = slack / 2
	return left, text, slack - left
}

// PadRight pads s to width columns, truncating if it is wider.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}
