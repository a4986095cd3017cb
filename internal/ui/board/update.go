// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package board

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/model"
)

// Update is the board message loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.alert.SetWidth(msg.Width)
		m.table.SetHeight(clampInt(msg.Height-10, 4, 20))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case requestsMsg:
		m.spinner.Stop()
		if msg.err != nil {
			m.alert.Show(api.Message(msg.err, "Could not load requests."))
			return m, nil
		}
		m.requests = msg.requests
		m.syncTable()
		return m, nil

	case offeringsMsg:
		// Offerings are decorative; a failed load just leaves the pane empty.
		if msg.err == nil {
			m.offerings = msg.offerings
		}
		return m, nil

	case createdMsg:
		m.spinner.Stop()
		if msg.err != nil {
			m.alert.Show(api.Message(msg.err, "Could not submit the request."))
			return m, nil
		}
		m.requests = append([]model.PentestRequest{*msg.request}, m.requests...)
		m.syncTable()
		m.form.reset()
		m.mode = modeList
		return m, nil

	case statusUpdatedMsg:
		m.spinner.Stop()
		if msg.err != nil {
			m.alert.Show(api.Message(msg.err, "Could not update the status."))
			return m, nil
		}
		m.replaceRequest(msg.request)
		m.syncTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeForm && key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeOfferings:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Offerings) {
			m.mode = modeList
		}
		return m, nil
	}
	return m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.New):
		m.alert.Clear()
		m.form.reset()
		m.mode = modeForm
		return m, nil

	case key.Matches(msg, m.keys.Offerings):
		m.mode = modeOfferings
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.alert.Clear()
		m.spinner.SetMessage("Loading requests")
		return m, tea.Batch(m.spinner.Start(), m.fetchRequestsCmd())

	case key.Matches(msg, m.keys.Cycle):
		sel := m.selected()
		if sel == nil {
			return m, nil
		}
		m.alert.Clear()
		m.spinner.SetMessage("Updating status")
		return m, tea.Batch(m.spinner.Start(), m.cycleStatusCmd(sel.ID, sel.Status.Next()))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = modeList
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.form.next()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.form.prev()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if !m.form.onLast() {
			m.form.next()
			return m, nil
		}
		if !m.form.valid() {
			m.alert.Show("Client name, contact email, and scope are required.")
			return m, nil
		}
		m.alert.Clear()
		m.spinner.SetMessage("Submitting")
		return m, tea.Batch(m.spinner.Start(), m.createCmd(m.form.input()))
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
