// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package board is the pentest request intake board: a table of incoming
// requests, a submission form, and the offering catalogue. It is a separate
// demo app from the scan runner and needs no account.
package board

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/model"
	"github.com/oEg8/pentest-tui/internal/ui/components"
	"github.com/oEg8/pentest-tui/internal/ui/styles"
)

// mode is the board's active pane.
type mode int

const (
	modeList mode = iota
	modeForm
	modeOfferings
)

// Async results.
type requestsMsg struct {
	requests []model.PentestRequest
	err      error
}

type offeringsMsg struct {
	offerings []model.Offering
	err       error
}

type createdMsg struct {
	request *model.PentestRequest
	err     error
}

type statusUpdatedMsg struct {
	request *model.PentestRequest
	err     error
}

// KeyMap holds the board key bindings.
type KeyMap struct {
	New       key.Binding
	Cycle     key.Binding
	Offerings key.Binding
	Refresh   key.Binding
	Back      key.Binding
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard board bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new request")),
		Cycle:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle status")),
		Offerings: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "offerings")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// Model is the intake-board Bubble Tea model.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	mode      mode
	requests  []model.PentestRequest
	offerings []model.Offering

	table   table.Model
	form    requestForm
	alert   *components.Alert
	spinner components.Spinner
	keys    KeyMap

	width  int
	height int

	quitting bool
}

// New creates the board model.
func New(client *api.Client, theme *styles.Theme) *Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Client", Width: 20},
		{Title: "Scope", Width: 28},
		{Title: "Window", Width: 14},
		{Title: "Status", Width: 12},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(styles.Green)
	st.Selected = st.Selected.Background(styles.Purple).Foreground(styles.TextInverse).Bold(true)
	t.SetStyles(st)

	return &Model{
		client:  client,
		theme:   theme,
		table:   t,
		form:    newRequestForm(),
		alert:   components.NewAlert(theme),
		spinner: components.NewSpinner(theme),
		keys:    DefaultKeyMap(),
		width:   80,
		height:  24,
	}
}

// Init loads the request list and the offering catalogue.
func (m *Model) Init() tea.Cmd {
	m.spinner.SetMessage("Loading requests")
	return tea.Batch(m.spinner.Start(), m.fetchRequestsCmd(), m.fetchOfferingsCmd())
}

func (m *Model) fetchRequestsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		requests, err := client.Requests(context.Background())
		return requestsMsg{requests: requests, err: err}
	}
}

func (m *Model) fetchOfferingsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		offerings, err := client.Offerings(context.Background())
		return offeringsMsg{offerings: offerings, err: err}
	}
}

func (m *Model) createCmd(in api.CreateRequestInput) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		req, err := client.CreateRequest(context.Background(), in)
		return createdMsg{request: req, err: err}
	}
}

func (m *Model) cycleStatusCmd(id int64, next model.RequestStatus) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		req, err := client.UpdateRequestStatus(context.Background(), id, next)
		return statusUpdatedMsg{request: req, err: err}
	}
}

// selected returns the request under the cursor, or nil.
func (m *Model) selected() *model.PentestRequest {
	row := m.table.Cursor()
	if row < 0 || row >= len(m.requests) {
		return nil
	}
	return &m.requests[row]
}

// syncTable rebuilds the table rows from the request list.
func (m *Model) syncTable() {
	rows := make([]table.Row, 0, len(m.requests))
	for _, r := range m.requests {
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			r.ClientName,
			r.Scope,
			r.PreferredWindow,
			r.Status.Display(),
		})
	}
	m.table.SetRows(rows)
}

// replaceRequest swaps the updated request into the list in place.
func (m *Model) replaceRequest(updated *model.PentestRequest) {
	for i := range m.requests {
		if m.requests[i].ID == updated.ID {
			// Backends that return partial bodies still keep the row whole.
			if updated.ClientName != "" {
				m.requests[i] = *updated
			} else {
				m.requests[i].Status = updated.Status
			}
			return
		}
	}
}
