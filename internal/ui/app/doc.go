// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package app is the main Bubble Tea model: the five views (sign in,
// register, MFA verification, run pentest, dashboard), the session that gates
// them, and the scan lifecycle.
//
// Navigation is explicit: every view change goes through navigate(), which
// applies the auth guard and fires the view's load commands. Session
// hydration happens exactly once at startup; afterwards the session only
// changes through login, MFA verification, registration, or logout.
package app
