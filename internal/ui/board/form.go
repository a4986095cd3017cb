// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package board

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/oEg8/pentest-tui/internal/api"
)

// requestForm is the intake submission form.
type requestForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newRequestForm() requestForm {
	fields := []struct {
		label       string
		placeholder string
	}{
		{"Client name", "Acme Corp"},
		{"Contact email", "security@acme.example"},
		{"Scope", "10.0.0.0/24, public web apps"},
		{"Preferred window", "weeknights 20:00-02:00"},
	}

	f := requestForm{}
	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.CharLimit = 256
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, ti)
	}
	return f
}

func (f *requestForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// input assembles the submission payload.
func (f *requestForm) input() api.CreateRequestInput {
	return api.CreateRequestInput{
		ClientName:      f.value(0),
		ContactEmail:    f.value(1),
		Scope:           f.value(2),
		PreferredWindow: f.value(3),
	}
}

// valid reports whether the required fields are filled.
func (f *requestForm) valid() bool {
	return f.value(0) != "" && f.value(1) != "" && f.value(2) != ""
}

func (f *requestForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *requestForm) next() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *requestForm) prev() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *requestForm) onLast() bool {
	return f.focus == len(f.inputs)-1
}

func (f *requestForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}
