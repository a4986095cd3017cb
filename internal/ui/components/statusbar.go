// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oEg8/pentest-tui/internal/ui/styles"
)

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar: connection state, credit balance, the running
// scan indicator, and key hints for the current view.
type StatusBar struct {
	Backend    string
	Running    bool
	HasCredits bool
	Credits    float64
	Shortcuts  []Shortcut
	Width      int
	theme      *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetBackend sets the backend host shown on the left.
func (s *StatusBar) SetBackend(host string) {
	s.Backend = host
}

// SetRunning toggles the running-scan indicator.
func (s *StatusBar) SetRunning(running bool) {
	s.Running = running
}

// SetCredits sets the credit balance. ok is false when the backend did not
// report one, in which case the bar shows nothing rather than a stale number.
func (s *StatusBar) SetCredits(v float64, ok bool) {
	s.Credits = v
	s.HasCredits = ok
}

// SetShortcuts replaces the key hints for the current view.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.Shortcuts = shortcuts
}

// View renders the status bar.
func (s *StatusBar) View() string {
	separator := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	var left []string
	if s.Backend != "" {
		left = append(left, s.theme.Muted.Render(s.Backend))
	}
	if s.Running {
		left = append(left, s.theme.Warning.Render(styles.IndicatorActive+" scanning"))
	}
	if s.HasCredits {
		left = append(left, s.theme.Credits.Render(fmt.Sprintf("credits: %g", s.Credits)))
	}
	leftSection := strings.Join(left, separator)

	var hints []string
	for _, sc := range s.Shortcuts {
		hints = append(hints, s.theme.ShortcutKey.Render(sc.Key)+s.theme.ShortcutDesc.Render(" "+sc.Desc))
	}
	rightSection := strings.Join(hints, "  ")

	gap := s.Width - lipgloss.Width(leftSection) - lipgloss.Width(rightSection) - 2
	if gap < 1 {
		gap = 1
	}

	return s.theme.StatusBar.Width(s.Width).Render(
		leftSection + strings.Repeat(" ", gap) + rightSection,
	)
}
