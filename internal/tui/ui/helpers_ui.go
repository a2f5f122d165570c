// Package ui holds display-width helpers shared by the components.
package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// RunesWidth returns the number of cells the runes occupy.
func RunesWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// Flatten replaces line breaks and tabs with spaces so a value can be laid
// out one cell per rune.
func Flatten(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s)
}
