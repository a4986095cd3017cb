// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package board

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/model"
	"github.com/oEg8/pentest-tui/internal/ui/styles"
)

func newTestBoard() *Model {
	return New(api.NewClient(""), styles.NewTheme("dark"))
}

func sampleRequests() []model.PentestRequest {
	return []model.PentestRequest{
		{ID: 2, ClientName: "Acme", Scope: "webapps", Status: model.StatusPending},
		{ID: 1, ClientName: "Globex", Scope: "10.0.0.0/24", Status: model.StatusInProgress},
	}
}

func TestRequestsLoadFillsTable(t *testing.T) {
	m := newTestBoard()
	m.Update(requestsMsg{requests: sampleRequests()})

	if len(m.table.Rows()) != 2 {
		t.Fatalf("table has %d rows, want 2", len(m.table.Rows()))
	}
	if m.table.Rows()[0][1] != "Acme" {
		t.Errorf("first row client = %q", m.table.Rows()[0][1])
	}
	if m.table.Rows()[1][4] != "in progress" {
		t.Errorf("status display = %q, want humanized form", m.table.Rows()[1][4])
	}
}

func TestCreatePrependsAndReturnsToList(t *testing.T) {
	m := newTestBoard()
	m.Update(requestsMsg{requests: sampleRequests()})
	m.mode = modeForm

	m.Update(createdMsg{request: &model.PentestRequest{
		ID: 3, ClientName: "Initech", Scope: "vpn", Status: model.StatusPending,
	}})

	if m.mode != modeList {
		t.Error("board should return to the list after submission")
	}
	if len(m.requests) != 3 || m.requests[0].ID != 3 {
		t.Errorf("new request should be first, got %+v", m.requests)
	}
}

func TestStatusCycleTargetsSelectedRow(t *testing.T) {
	m := newTestBoard()
	m.Update(requestsMsg{requests: sampleRequests()})

	sel := m.selected()
	if sel == nil || sel.ID != 2 {
		t.Fatalf("selected = %+v, want request 2", sel)
	}
	if next := sel.Status.Next(); next != model.StatusInProgress {
		t.Errorf("Next() from pending = %v", next)
	}

	m.Update(statusUpdatedMsg{request: &model.PentestRequest{
		ID: 2, ClientName: "Acme", Scope: "webapps", Status: model.StatusInProgress,
	}})
	if m.requests[0].Status != model.StatusInProgress {
		t.Errorf("status not applied: %+v", m.requests[0])
	}
}

func TestStatusUpdateWithPartialBodyKeepsRow(t *testing.T) {
	m := newTestBoard()
	m.Update(requestsMsg{requests: sampleRequests()})

	// Only id and status in the response; the rest of the row must survive.
	m.Update(statusUpdatedMsg{request: &model.PentestRequest{ID: 2, Status: model.StatusComplete}})

	if m.requests[0].ClientName != "Acme" {
		t.Errorf("client name lost on partial update: %+v", m.requests[0])
	}
	if m.requests[0].Status != model.StatusComplete {
		t.Errorf("status = %v, want complete", m.requests[0].Status)
	}
}

func TestFormValidation(t *testing.T) {
	m := newTestBoard()
	m.mode = modeForm
	// Jump to the last field and submit with everything empty.
	m.form.setFocus(len(m.form.inputs) - 1)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !m.alert.Active() {
		t.Error("empty form should raise a validation alert")
	}
	if m.mode != modeForm {
		t.Error("invalid submission should stay on the form")
	}
}

func TestLoadFailureShowsAlert(t *testing.T) {
	m := newTestBoard()
	m.Update(requestsMsg{err: &api.Error{Status: 500, Message: "Database unavailable."}})
	if m.alert.Message() != "Database unavailable." {
		t.Errorf("alert = %q", m.alert.Message())
	}
}

func TestOfferingsPane(t *testing.T) {
	m := newTestBoard()
	m.Update(offeringsMsg{offerings: []model.Offering{
		{ID: 1, Name: "External pentest", Description: "perimeter assessment"},
	}})
	m.mode = modeOfferings

	out := m.View()
	if !strings.Contains(out, "External pentest") {
		t.Errorf("offerings pane missing entry: %q", out)
	}
}

func TestOfferingColumnsAlign(t *testing.T) {
	got := fmtOffering(model.Offering{Name: "Web app", Description: "OWASP top ten"})
	if !strings.HasPrefix(got, "Web app") || !strings.HasSuffix(got, "OWASP top ten") {
		t.Fatalf("fmtOffering() = %q", got)
	}
	if !strings.Contains(got, "Web app      ") {
		t.Errorf("offering name should pad to a fixed column, got %q", got)
	}
}
