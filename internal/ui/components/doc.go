// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package components provides the reusable visual pieces of the pentest TUI:
// the header, the alert banner, the status bar, spinners, and the rendered
// scan output view.
package components
