// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/oEg8/pentest-tui/internal/model"
	"github.com/oEg8/pentest-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme("dark")
}

func TestAlertLifecycle(t *testing.T) {
	a := NewAlert(testTheme())
	if a.Active() {
		t.Error("new alert should be inactive")
	}
	if a.View() != "" {
		t.Error("inactive alert should render nothing")
	}

	a.Show("Login failed.")
	if !a.Active() {
		t.Error("alert should be active after Show")
	}
	if !strings.Contains(a.View(), "Login failed.") {
		t.Errorf("alert view missing message: %q", a.View())
	}

	// A new message replaces the old one; there is never more than one.
	a.Show("Scan failed.")
	if strings.Contains(a.View(), "Login failed.") {
		t.Error("old message still visible after replacement")
	}

	a.Clear()
	if a.Active() || a.View() != "" {
		t.Error("alert should be empty after Clear")
	}
}

func TestAlertTruncatesToWidth(t *testing.T) {
	a := NewAlert(testTheme())
	a.SetWidth(30)
	a.Show(strings.Repeat("x", 200))
	if strings.Contains(a.View(), strings.Repeat("x", 100)) {
		t.Error("long message should be truncated to the banner width")
	}
}

func TestHeaderShowsUser(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetTitle("Dashboard")
	h.SetUser("alice")

	out := h.View()
	if !strings.Contains(out, "pentest-tui") {
		t.Error("header missing brand")
	}
	if !strings.Contains(out, "Dashboard") {
		t.Error("header missing title")
	}
	if !strings.Contains(out, "@alice") {
		t.Error("header missing user badge")
	}

	h.SetUser("")
	if strings.Contains(h.View(), "@alice") {
		t.Error("user badge should disappear after logout")
	}
}

func TestHeaderCompactAtNarrowWidth(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(40)
	h.SetTitle("Sign in")
	out := h.View()
	if strings.Count(out, "\n") > 0 {
		t.Errorf("narrow header should be a single line, got %d lines", strings.Count(out, "\n")+1)
	}
}

func TestStatusBarCredits(t *testing.T) {
	s := NewStatusBar(testTheme())
	s.SetBackend("localhost:8000")

	if strings.Contains(s.View(), "credits") {
		t.Error("credits shown before any balance was reported")
	}

	s.SetCredits(4.5, true)
	if !strings.Contains(s.View(), "credits: 4.5") {
		t.Errorf("credits missing from status bar: %q", s.View())
	}

	// An absent balance hides the figure instead of showing a stale one.
	s.SetCredits(0, false)
	if strings.Contains(s.View(), "credits") {
		t.Error("credits still shown after balance became unknown")
	}
}

func TestStatusBarRunningIndicator(t *testing.T) {
	s := NewStatusBar(testTheme())
	s.SetRunning(true)
	if !strings.Contains(s.View(), "scanning") {
		t.Error("running indicator missing")
	}
	s.SetRunning(false)
	if strings.Contains(s.View(), "scanning") {
		t.Error("running indicator should clear")
	}
}

func TestSpinnerInactiveRendersNothing(t *testing.T) {
	sp := NewSpinner(testTheme())
	if sp.View() != "" {
		t.Error("inactive spinner should render nothing")
	}
	cmd := sp.Start()
	if cmd == nil {
		t.Error("Start should return a tick command")
	}
	if sp.View() == "" {
		t.Error("active spinner should render")
	}
	sp.Stop()
	if sp.View() != "" {
		t.Error("stopped spinner should render nothing")
	}
}

func TestOutputRendererFallsBackOnEmpty(t *testing.T) {
	o := NewOutputRenderer(testTheme(), 80)
	if !strings.Contains(o.Render("   "), "no output") {
		t.Error("blank output should render a placeholder")
	}
}

func TestRenderResultIncludesMetadata(t *testing.T) {
	o := NewOutputRenderer(testTheme(), 80)
	res := &model.ScanResult{
		ID:        12,
		Status:    "finished",
		TargetIP:  "192.168.1.10",
		Output:    "## Ports\n\n- 22/tcp open",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	out := o.RenderResult(res)
	if !strings.Contains(out, "scan #12") {
		t.Error("result metadata missing scan id")
	}
	if !strings.Contains(out, "192.168.1.10") {
		t.Error("result metadata missing target")
	}
	if !strings.Contains(out, styles.IndicatorOK) {
		t.Error("finished scan should carry the OK indicator")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5s"},
		{59 * time.Second, "59s"},
		{90 * time.Second, "1m 30s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
