// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package components

import (
	"github.com/oEg8/pentest-tui/internal/ui/styles"
	"github.com/oEg8/pentest-tui/internal/util"
)

// Alert is the single-message error banner. One message at a time; setting a
// new one replaces the old, and views clear it when the user acts again.
type Alert struct {
	message string
	Width   int
	theme   *styles.Theme
}

// NewAlert creates an empty alert banner.
func NewAlert(theme *styles.Theme) *Alert {
	return &Alert{Width: 80, theme: theme}
}

// SetWidth updates the banner width.
func (a *Alert) SetWidth(width int) {
	a.Width = width
}

// Show replaces the banner text.
func (a *Alert) Show(message string) {
	a.message = message
}

// Clear removes the banner.
func (a *Alert) Clear() {
	a.message = ""
}

// Active reports whether a message is showing.
func (a *Alert) Active() bool {
	return a.message != ""
}

// Message returns the current banner text.
func (a *Alert) Message() string {
	return a.message
}

// View renders the banner, or "" when there is nothing to show.
func (a *Alert) View() string {
	if a.message == "" {
		return ""
	}
	text := styles.IndicatorError + " " + util.FirstLine(a.message)
	inner := a.Width - 6
	if inner > 0 {
		text = util.Truncate(text, inner)
	}
	return a.theme.AlertBox.Width(a.Width - 2).Render(a.theme.AlertText.Render(text))
}
