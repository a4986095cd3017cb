// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oEg8/pentest-tui/internal/model"
	"github.com/oEg8/pentest-tui/internal/ui/components"
	"github.com/oEg8/pentest-tui/internal/ui/styles"
	"github.com/oEg8/pentest-tui/internal/util"
)

// View renders the current frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.booting {
		return m.theme.Container.Render(
			m.header.View() + "\n\n" + m.spinner.View(),
		)
	}

	var body string
	switch m.route {
	case model.RouteRegister:
		body = m.viewRegister()
	case model.RouteMfa:
		body = m.viewMfa()
	case model.RoutePentest:
		body = m.viewPentest()
	case model.RouteDashboard:
		body = m.viewDashboard()
	default:
		body = m.viewLogin()
	}

	sections := []string{m.header.View()}
	if m.alert.Active() {
		sections = append(sections, m.alert.View())
	}
	sections = append(sections, body)
	if m.spinner.IsActive() {
		sections = append(sections, m.spinner.View())
	}

	m.statusBar.SetShortcuts(m.shortcuts())
	sections = append(sections, m.statusBar.View())

	return m.theme.Container.Render(strings.Join(sections, "\n\n"))
}

func (m *Model) viewLogin() string {
	hint := m.theme.FormHint.Render("enter to sign in  -  ^R to register")
	return m.theme.FormBox.Render(m.renderForm(&m.loginForm, "Sign in") + "\n\n" + hint)
}

func (m *Model) viewRegister() string {
	mfaLine := m.theme.FormLabel.Render("MFA") + "  "
	if m.registerMFA {
		mfaLine += m.theme.Success.Render(styles.IndicatorActive + " enabled")
	} else {
		mfaLine += m.theme.Muted.Render(styles.IndicatorPending + " disabled")
	}
	hint := m.theme.FormHint.Render("enter to register  -  ^T toggle MFA  -  ^R back to sign in")
	return m.theme.FormBox.Render(
		m.renderForm(&m.registerForm, "Create account") + "\n" + mfaLine + "\n\n" + hint,
	)
}

func (m *Model) viewMfa() string {
	title := m.theme.MfaTitle.Render("Two-factor verification")
	who := m.theme.MfaHint.Render("Verifying " + m.challenge.Username)

	lines := []string{title, who, "", m.renderForm(&m.mfaForm, "Verify")}
	if m.challenge.Code != "" {
		lines = append(lines, "", m.theme.MfaHint.Render("dev code: ")+m.theme.MfaCode.Render(m.challenge.Code))
	}
	return m.theme.MfaBox.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewPentest() string {
	var b strings.Builder

	target := "(unknown)"
	if m.session.Profile != nil && m.session.Profile.TargetIP != "" {
		target = m.session.Profile.TargetIP
	}
	b.WriteString(m.theme.Title.Render("Target ") + m.theme.Credits.Render(target) + "\n\n")

	if len(m.engines) == 0 {
		b.WriteString(m.theme.Muted.Render("No engines available.") + "\n")
	} else {
		b.WriteString(m.theme.Subtitle.Render("Engine") + "\n")
		for i, engine := range m.engines {
			if i == m.engineCursor {
				b.WriteString(m.theme.ItemSelected.Render("> "+engine) + "\n")
			} else {
				b.WriteString(m.theme.Item.Render("  "+engine) + "\n")
			}
		}
	}

	if m.scan.Latest != nil {
		b.WriteString("\n" + m.output.RenderResult(m.scan.Latest))
	}

	return b.String()
}

func (m *Model) viewDashboard() string {
	if len(m.scans) == 0 {
		return m.theme.Muted.Render("No scans yet. Run one from the pentest view (^P).")
	}

	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("Scan history (%d)", len(m.scans))) + "\n")

	listWidth := m.width - 8
	if listWidth < 30 {
		listWidth = 30
	}

	// Window the list around the cursor so long histories stay on screen.
	const window = 8
	start := 0
	if m.scanCursor >= window {
		start = m.scanCursor - window + 1
	}
	end := start + window
	if end > len(m.scans) {
		end = len(m.scans)
	}

	for i := start; i < end; i++ {
		s := m.scans[i]
		line := fmt.Sprintf("#%-5d %-10s %-16s %s",
			s.ID, s.Status, s.TargetIP, s.CreatedAt.Local().Format("2006-01-02 15:04"))
		line = util.Truncate(line, listWidth)
		if i == m.scanCursor {
			b.WriteString(m.theme.ItemSelected.Render(line) + "\n")
		} else {
			b.WriteString(m.theme.Item.Render(line) + "\n")
		}
	}

	sel := m.scans[m.scanCursor]
	b.WriteString("\n" + m.output.RenderResult(&sel))
	return b.String()
}

// renderForm draws labels and inputs, marking the focused field. The submit
// button lights up once focus reaches the last field, where enter dispatches.
func (m *Model) renderForm(f *form, submit string) string {
	var rows []string
	for i := range f.inputs {
		label := m.theme.FormLabel.Render(f.labels[i])
		field := m.theme.FieldBlurred
		if i == f.focus {
			field = m.theme.FieldFocused
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, field.Render(f.inputs[i].View())))
	}
	btn := m.theme.Button
	if f.onLast() {
		btn = m.theme.ButtonActive
	}
	rows = append(rows, "", btn.Render(submit))
	return strings.Join(rows, "\n")
}

// shortcuts returns the status-bar key hints for the current view.
func (m *Model) shortcuts() []components.Shortcut {
	base := []components.Shortcut{{Key: "^C", Desc: "quit"}}
	switch m.route {
	case model.RouteLogin:
		return append([]components.Shortcut{
			{Key: "enter", Desc: "sign in"},
			{Key: "^R", Desc: "register"},
		}, base...)
	case model.RouteRegister:
		return append([]components.Shortcut{
			{Key: "enter", Desc: "register"},
			{Key: "^T", Desc: "mfa"},
			{Key: "^R", Desc: "sign in"},
		}, base...)
	case model.RouteMfa:
		return append([]components.Shortcut{
			{Key: "enter", Desc: "verify"},
		}, base...)
	case model.RoutePentest:
		return append([]components.Shortcut{
			{Key: "enter", Desc: "run scan"},
			{Key: "^D", Desc: "dashboard"},
			{Key: "^G", Desc: "refresh"},
			{Key: "^L", Desc: "logout"},
		}, base...)
	case model.RouteDashboard:
		return append([]components.Shortcut{
			{Key: "^P", Desc: "pentest"},
			{Key: "^G", Desc: "refresh"},
			{Key: "^L", Desc: "logout"},
		}, base...)
	}
	return base
}
