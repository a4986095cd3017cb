// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// form is a vertical stack of text inputs with one focused field. Enter on
// the last field submits; tab cycles.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...formField) form {
	f := form{}
	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.CharLimit = 128
		ti.Width = 32
		if field.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '*'
		}
		if i == 0 {
			ti.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, ti)
	}
	return f
}

type formField struct {
	label       string
	placeholder string
	secret      bool
}

// value returns the trimmed text of field i.
func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// reset clears every field and refocuses the first.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

// next moves focus forward, wrapping.
func (f *form) next() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

// prev moves focus backward, wrapping.
func (f *form) prev() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

// onLast reports whether the focused field is the final one.
func (f *form) onLast() bool {
	return f.focus == len(f.inputs)-1
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// newLoginForm builds the sign-in form: username, password.
func newLoginForm() form {
	return newForm(
		formField{label: "Username", placeholder: "username"},
		formField{label: "Password", placeholder: "password", secret: true},
	)
}

// newRegisterForm builds the registration form: username, email, password,
// target IP.
func newRegisterForm() form {
	return newForm(
		formField{label: "Username", placeholder: "username"},
		formField{label: "Email", placeholder: "you@example.com"},
		formField{label: "Password", placeholder: "password", secret: true},
		formField{label: "Target IP", placeholder: "192.168.1.10"},
	)
}

// newMfaForm builds the single-field code entry form.
func newMfaForm() form {
	return newForm(
		formField{label: "Code", placeholder: "6-digit code"},
	)
}
