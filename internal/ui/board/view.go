// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oEg8/pentest-tui/internal/model"
	"github.com/oEg8/pentest-tui/internal/ui/styles"
	"github.com/oEg8/pentest-tui/internal/util"
)

// View renders the board.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(styles.Green).Render("Pentest requests")

	var body string
	switch m.mode {
	case modeForm:
		body = m.viewForm()
	case modeOfferings:
		body = m.viewOfferings()
	default:
		body = m.viewList()
	}

	sections := []string{title}
	if m.alert.Active() {
		sections = append(sections, m.alert.View())
	}
	sections = append(sections, body)
	if m.spinner.IsActive() {
		sections = append(sections, m.spinner.View())
	}
	sections = append(sections, m.viewHints())

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(sections, "\n\n"))
}

func (m *Model) viewList() string {
	if len(m.requests) == 0 {
		return m.theme.Muted.Render("No requests yet. Press n to submit one.")
	}
	return m.table.View()
}

func (m *Model) viewForm() string {
	var rows []string
	for i := range m.form.inputs {
		label := m.theme.FormLabel.Render(m.form.labels[i])
		field := m.theme.FieldBlurred
		if i == m.form.focus {
			field = m.theme.FieldFocused
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, field.Render(m.form.inputs[i].View())))
	}
	hint := m.theme.FormHint.Render("enter to submit  -  esc to cancel")
	return m.theme.FormBox.Render(strings.Join(rows, "\n") + "\n\n" + hint)
}

func (m *Model) viewOfferings() string {
	if len(m.offerings) == 0 {
		return m.theme.Muted.Render("No offerings published.")
	}
	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render("What we offer") + "\n")
	for _, o := range m.offerings {
		b.WriteString(m.theme.Item.Render("- "+fmtOffering(o)) + "\n")
	}
	return b.String()
}

func fmtOffering(o model.Offering) string {
	// Pad names so the descriptions line up in a column.
	return util.PadRight(o.Name, 20) + o.Description
}

func (m *Model) viewHints() string {
	hints := [][2]string{}
	switch m.mode {
	case modeForm:
		hints = append(hints, [2]string{"esc", "back"})
	case modeOfferings:
		hints = append(hints, [2]string{"esc", "back"})
	default:
		hints = append(hints,
			[2]string{"n", "new"},
			[2]string{"s", "status"},
			[2]string{"o", "offerings"},
			[2]string{"r", "refresh"},
		)
	}
	hints = append(hints, [2]string{"q", "quit"})

	keyStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h[0])+m.theme.Muted.Render(" "+h[1]))
	}
	return strings.Join(parts, "  ")
}
