// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oEg8/pentest-tui/internal/ui/styles"
)

// Header is the title bar: brand, the current view's title, and the signed-in
// user when there is one.
type Header struct {
	Brand    string
	Title    string
	Username string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a header with the application brand.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Brand: "pentest-tui",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTitle updates the view title shown next to the brand.
func (h *Header) SetTitle(title string) {
	h.Title = title
}

// SetUser updates the signed-in username ("" when logged out).
func (h *Header) SetUser(username string) {
	h.Username = username
}

// View renders the header.
func (h *Header) View() string {
	if h.Width < 60 {
		return h.viewCompact()
	}

	width := h.Width
	innerWidth := width - 6

	accent := lipgloss.NewStyle().Foreground(styles.Purple)
	brand := accent.Render("< ") +
		lipgloss.NewStyle().Bold(true).Foreground(styles.Green).Render(h.Brand) +
		accent.Render(" >")

	parts := []string{h.theme.Subtitle.Render(h.Title)}
	if h.Username != "" {
		parts = append(parts, h.theme.UserBadge.Render("@"+h.Username))
	}
	subtitle := strings.Join(parts, "  ")

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)
	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(subtitle)

	content := lipgloss.JoinVertical(lipgloss.Center, brandLine, subtitleLine)

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Green).
		Background(styles.SurfaceDim).
		Padding(0, 2).
		Width(width).
		Render(content)
}

// viewCompact renders a single-line header for narrow terminals.
func (h *Header) viewCompact() string {
	accent := lipgloss.NewStyle().Foreground(styles.Purple)
	brand := accent.Render("<") +
		lipgloss.NewStyle().Bold(true).Foreground(styles.Green).Render(h.Brand) +
		accent.Render(">")

	parts := []string{brand, h.theme.Subtitle.Render(h.Title)}
	if h.Username != "" {
		parts = append(parts, h.theme.UserBadge.Render("@"+h.Username))
	}

	separator := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")
	return strings.Join(parts, separator)
}
