// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package util

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most width terminal cells, appending "..." when
// anything was cut. Width is measured in display cells, not runes, so wide
// characters count double.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// PadRight pads s with spaces to exactly width terminal cells, truncating
// first when s is too long. Used to keep table columns aligned.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// FirstLine returns the text up to the first newline, trimmed. Scan output is
// multi-line; list rows show only the head of it.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
