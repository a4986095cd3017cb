// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application. It detects the
// terminal's color capability once at startup.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions, updated on every window resize.
	Width  int
	Height int

	// Application chrome.
	App       lipgloss.Style
	Container lipgloss.Style
	Header    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style

	// Alert banner. One alert at a time, dismissed on the next action.
	AlertBox  lipgloss.Style
	AlertText lipgloss.Style

	// Forms.
	FormBox      lipgloss.Style
	FormLabel    lipgloss.Style
	FieldFocused lipgloss.Style
	FieldBlurred lipgloss.Style
	FormHint     lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	// Engine picker and selections.
	Item         lipgloss.Style
	ItemSelected lipgloss.Style

	// Scan output and history.
	OutputBox    lipgloss.Style
	ScanMeta     lipgloss.Style
	ScanFinished lipgloss.Style
	ScanFailed   lipgloss.Style
	ScanPending  lipgloss.Style
	Credits      lipgloss.Style

	// MFA challenge.
	MfaBox   lipgloss.Style
	MfaTitle lipgloss.Style
	MfaHint  lipgloss.Style
	MfaCode  lipgloss.Style

	// Status bar.
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	UserBadge    lipgloss.Style

	// Spinner while a request is in flight.
	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// Semantic one-offs.
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme creates a theme from the detected terminal capabilities. mode is
// "dark", "light", or "auto"; anything but the first two defers to termenv's
// background detection.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch mode {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Green).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Green).
		Padding(0, 2)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.AlertBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Rose).
		Background(RoseDeep).
		PaddingLeft(2).
		PaddingRight(2)

	t.AlertText = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)

	t.FormLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(16)

	t.FieldFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Purple).
		PaddingLeft(1)

	t.FieldBlurred = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Overlay).
		PaddingLeft(1)

	t.FormHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 2).
		MarginRight(1)

	t.ButtonActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 2).
		MarginRight(1)

	t.Item = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ItemSelected = lipgloss.NewStyle().
		Background(Purple).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	t.OutputBox = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)

	t.ScanMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ScanFinished = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	t.ScanFailed = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ScanPending = lipgloss.NewStyle().
		Foreground(Amber)

	t.Credits = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.MfaBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(1, 2)

	t.MfaTitle = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.MfaHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.MfaCode = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.UserBadge = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Success = lipgloss.NewStyle().Foreground(Green).Bold(true)
	t.Error = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// GetLayoutMode returns the layout mode for the current width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// StatusStyle returns the style for an intake-board status string.
func (t *Theme) StatusStyle(status string) lipgloss.Style {
	switch status {
	case "complete":
		return lipgloss.NewStyle().Foreground(StatusCompleteColor)
	case "in_progress":
		return lipgloss.NewStyle().Foreground(StatusInProgressColor)
	default:
		return lipgloss.NewStyle().Foreground(StatusPendingColor)
	}
}
