// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package styles provides the visual styling for the pentest TUI.
// All colors use Lip Gloss AdaptiveColor so the same palette works on
// light and dark terminals.
package styles

import "github.com/charmbracelet/lipgloss"

// Primary accents.
var (
	// Green - brand color, success states, finished scans.
	Green = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

	// Cyan - shortcut keys, links, selected values.
	Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

	// Purple - focus, selections, the running-scan spinner.
	Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
)

// Semantic colors.
var (
	// Rose - errors, failed scans, the alert banner.
	Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

	// RoseDeep - alert banner background.
	RoseDeep = lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#4C0519"}

	// Amber - pending states, the MFA challenge prompt.
	Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
)

// Surfaces and chrome.
var (
	Surface    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
	SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}
	Overlay    = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}
)

// Text.
var (
	TextPrimary   = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}
	TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}
	TextMuted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}
	TextInverse   = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
)

// Intake-board status colors, keyed to the request lifecycle.
var (
	StatusPendingColor    = Amber
	StatusInProgressColor = Cyan
	StatusCompleteColor   = Green
)

// ASCII status indicators. Shapes carry meaning alongside color so states
// stay readable without color support.
const (
	IndicatorOK      = "[OK]"
	IndicatorError   = "[X]"
	IndicatorWarning = "[!]"
	IndicatorPending = "[ ]"
	IndicatorActive  = "[*]"
)
