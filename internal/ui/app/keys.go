// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application key bindings.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Up        key.Binding
	Down      key.Binding

	Switch    key.Binding
	Pentest   key.Binding
	Dashboard key.Binding
	Refresh   key.Binding
	Logout    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down", "down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^R", "login/register"),
		),
		Pentest: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("^P", "pentest"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("^D", "dashboard"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("^G", "refresh"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("^L", "logout"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^C", "quit"),
		),
	}
}
