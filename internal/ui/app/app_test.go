// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/config"
	"github.com/oEg8/pentest-tui/internal/model"
	"github.com/oEg8/pentest-tui/internal/session"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	return New(cfg, api.NewClient(""), store, nil)
}

func authedModel(t *testing.T) *Model {
	t.Helper()
	m := newTestModel(t)
	m.booting = false
	m.hydrated = true
	m.applySession("tok-test", model.User{ID: 1, Username: "alice"},
		model.Profile{TargetIP: "192.168.1.10", Credits: 5})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestHydrationWithoutToken(t *testing.T) {
	m := newTestModel(t)
	if !m.Booting() {
		t.Fatal("model should start booting")
	}

	m.Update(hydrateResultMsg{})

	if m.Booting() {
		t.Error("boot should end after hydration")
	}
	if m.Session().Authenticated() {
		t.Error("no token should mean no session")
	}
	if m.Route() != model.RouteLogin {
		t.Errorf("route = %v, want login", m.Route())
	}
}

func TestHydrationWithValidToken(t *testing.T) {
	m := newTestModel(t)
	m.Update(hydrateResultMsg{session: model.Session{
		Token:   "tok-1",
		User:    &model.User{ID: 1, Username: "alice"},
		Profile: &model.Profile{TargetIP: "10.0.0.1", Credits: 3},
	}})

	if !m.Session().Authenticated() {
		t.Fatal("session should be restored")
	}
	if m.Route() != model.RoutePentest {
		t.Errorf("route after restore = %v, want pentest", m.Route())
	}
}

func TestHydrationRunsOnce(t *testing.T) {
	m := newTestModel(t)
	m.Update(hydrateResultMsg{})

	// A second result must not resurrect a session out of nowhere.
	m.Update(hydrateResultMsg{session: model.Session{
		Token: "tok-late",
		User:  &model.User{Username: "ghost"},
	}})

	if m.Session().Authenticated() {
		t.Error("late hydration result should be ignored")
	}
}

func TestGuardRedirectsAnonymous(t *testing.T) {
	m := newTestModel(t)
	m.booting = false
	m.hydrated = true

	for _, target := range []model.Route{model.RoutePentest, model.RouteDashboard} {
		m.navigate(target.Location())
		if m.Route() != model.RouteLogin {
			t.Errorf("navigate(%v) without session landed on %v, want login", target, m.Route())
		}
	}
}

func TestGuardAllowsAuthenticated(t *testing.T) {
	m := authedModel(t)
	m.navigate(model.RouteDashboard.Location())
	if m.Route() != model.RouteDashboard {
		t.Errorf("route = %v, want dashboard", m.Route())
	}
}

func TestUnknownLocationFallsBackToLogin(t *testing.T) {
	m := newTestModel(t)
	m.booting = false
	m.hydrated = true
	m.navigate("/no-such-view")
	if m.Route() != model.RouteLogin {
		t.Errorf("route = %v, want login", m.Route())
	}
}

func TestMfaChallengeDoesNotPersistToken(t *testing.T) {
	m := newTestModel(t)
	m.booting = false
	m.hydrated = true

	m.Update(loginResultMsg{resp: &api.LoginResponse{
		MfaRequired: true,
		Username:    "bob",
		MfaCode:     "123456",
	}})

	if m.Session().Authenticated() {
		t.Error("mfa_required must not create a session")
	}
	if m.Route() != model.RouteMfa {
		t.Errorf("route = %v, want mfa", m.Route())
	}
	if m.challenge.Username != "bob" || m.challenge.Code != "123456" {
		t.Errorf("challenge = %+v", m.challenge)
	}

	token, err := m.store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		t.Errorf("token file should stay empty during a challenge, got %q", token)
	}
}

func TestLoginSuccessPersistsToken(t *testing.T) {
	m := newTestModel(t)
	m.booting = false
	m.hydrated = true

	m.Update(loginResultMsg{resp: &api.LoginResponse{
		Token:   "tok-9",
		User:    &model.User{ID: 2, Username: "carol"},
		Profile: &model.Profile{TargetIP: "10.1.1.1", Credits: 7},
	}})

	if !m.Session().Authenticated() {
		t.Fatal("session should exist after login")
	}
	if m.Route() != model.RoutePentest {
		t.Errorf("route = %v, want pentest", m.Route())
	}
	token, _ := m.store.Load()
	if token != "tok-9" {
		t.Errorf("stored token = %q, want tok-9", token)
	}
}

func TestMfaVerifySuccessClearsChallenge(t *testing.T) {
	m := newTestModel(t)
	m.booting = false
	m.hydrated = true
	m.challenge = model.MfaChallenge{Required: true, Username: "bob"}
	m.route = model.RouteMfa

	m.Update(mfaResultMsg{resp: &api.AuthResponse{
		Token: "tok-mfa",
		User:  model.User{ID: 3, Username: "bob"},
	}})

	if m.challenge != (model.MfaChallenge{}) {
		t.Errorf("challenge should reset to zero, got %+v", m.challenge)
	}
	if !m.Session().Authenticated() {
		t.Error("verification should grant a session")
	}
}

func TestLoginFailureShowsSingleAlert(t *testing.T) {
	m := newTestModel(t)
	m.booting = false
	m.hydrated = true

	m.Update(loginResultMsg{err: &api.Error{Status: 400, Message: "Invalid credentials."}})
	if got := m.alert.Message(); got != "Invalid credentials." {
		t.Errorf("alert = %q, want backend message", got)
	}

	// A second failure replaces, never stacks.
	m.Update(loginResultMsg{err: errors.New("dial tcp: connection refused")})
	if got := m.alert.Message(); got != "Login failed." {
		t.Errorf("alert = %q, want fallback", got)
	}
}

func TestEngineSelectionReset(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		engines  []string
		want     string
	}{
		{"selection kept when listed", "nikto", []string{"nmap", "nikto"}, "nikto"},
		{"selection reset when missing", "zap", []string{"nmap", "nikto"}, "nmap"},
		{"empty listing leaves selection", "zap", nil, "zap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := authedModel(t)
			m.selectedEngine = tt.selected
			m.Update(enginesResultMsg{engines: tt.engines})
			if m.selectedEngine != tt.want {
				t.Errorf("selectedEngine = %q, want %q", m.selectedEngine, tt.want)
			}
		})
	}
}

func TestRunningGateDropsSecondScan(t *testing.T) {
	m := authedModel(t)
	m.route = model.RoutePentest
	m.engines = []string{"nmap"}
	m.selectedEngine = "nmap"
	m.scan.Running = true

	_, cmd := m.handleKey(keyMsg("enter"))
	if cmd != nil {
		t.Error("enter during a running scan must be a no-op")
	}
}

func TestScanTriggerClearsPreviousResult(t *testing.T) {
	m := authedModel(t)
	m.route = model.RoutePentest
	m.engines = []string{"nmap"}
	m.selectedEngine = "nmap"
	m.scan.Latest = &model.ScanResult{ID: 7, Status: "finished"}

	_, cmd := m.handleKey(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should dispatch a scan")
	}
	if !m.scan.Running {
		t.Error("running flag should set on dispatch")
	}
	if m.scan.Latest != nil {
		t.Errorf("latest should be absent while a scan is in flight, got %+v", m.scan.Latest)
	}
}

func TestScanSuccessPrependsAndReconcilesCredits(t *testing.T) {
	m := authedModel(t)
	m.scans = []model.ScanResult{{ID: 1}}
	m.scan.Running = true

	res := &model.ScanResult{
		ID:        2,
		Status:    "finished",
		Output:    "done",
		CreatedAt: time.Now(),
		Credits:   model.NewCredits(4),
	}
	m.Update(scanResultMsg{res: res})

	if m.scan.Running {
		t.Error("running flag should clear")
	}
	if len(m.scans) != 2 || m.scans[0].ID != 2 {
		t.Errorf("history should be prepended, got %+v", m.scans)
	}
	if m.session.Profile.Credits != 4 {
		t.Errorf("credits = %v, want 4", m.session.Profile.Credits)
	}
}

func TestScanWithoutNumericCreditsLeavesBalance(t *testing.T) {
	m := authedModel(t)
	m.scan.Running = true

	m.Update(scanResultMsg{res: &model.ScanResult{ID: 3, Status: "finished"}})

	if m.session.Profile.Credits != 5 {
		t.Errorf("credits = %v, want untouched 5", m.session.Profile.Credits)
	}
}

func TestScanFailureClearsLatest(t *testing.T) {
	m := authedModel(t)
	m.scan.Running = true
	m.scan.Latest = &model.ScanResult{ID: 1}

	m.Update(scanResultMsg{err: &api.Error{Status: 402, Message: "Not enough credits."}})

	if m.scan.Running {
		t.Error("running flag should clear on failure")
	}
	if m.scan.Latest != nil {
		t.Error("a failed scan must not leave a stale latest result")
	}
	if m.alert.Message() != "Not enough credits." {
		t.Errorf("alert = %q", m.alert.Message())
	}
}

func TestDashboardReplacesWholesale(t *testing.T) {
	m := authedModel(t)
	m.scans = []model.ScanResult{{ID: 99}, {ID: 98}}

	m.Update(scansResultMsg{scans: []model.ScanResult{{ID: 5}}})

	if len(m.scans) != 1 || m.scans[0].ID != 5 {
		t.Errorf("scans = %+v, want server list only", m.scans)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	m := authedModel(t)
	m.scans = []model.ScanResult{{ID: 1}}
	m.scan = model.ScanState{Running: false, Latest: &model.ScanResult{ID: 1}}

	m.logout()

	if m.Session().Authenticated() {
		t.Error("session should clear")
	}
	if m.scans != nil {
		t.Error("scan history should clear")
	}
	if m.scan.Latest != nil {
		t.Error("latest result should clear")
	}
	if m.Route() != model.RouteLogin {
		t.Errorf("route = %v, want login", m.Route())
	}
	token, _ := m.store.Load()
	if token != "" {
		t.Errorf("token file should be gone, got %q", token)
	}
}

func TestLoginViewShowsSubmitButton(t *testing.T) {
	m := newTestModel(t)
	m.booting = false
	m.hydrated = true
	m.route = model.RouteLogin

	if out := m.View(); !strings.Contains(out, "Sign in") {
		t.Errorf("login view missing the submit button: %q", out)
	}
}

func TestConfigReloadRetargetsClient(t *testing.T) {
	m := authedModel(t)

	cfg := config.Default()
	cfg.Backend.URL = "http://10.9.9.9:8000/api"
	config.SetGlobal(cfg)
	defer config.ResetGlobalForTesting()

	m.Update(ConfigReloadedMsg{})

	if got := m.client.BaseURL(); got != "http://10.9.9.9:8000/api" {
		t.Errorf("client base URL after reload = %q, want the new backend", got)
	}
}

func TestViewRendersEveryRoute(t *testing.T) {
	m := authedModel(t)
	m.engines = []string{"nmap", "nikto"}
	m.scans = []model.ScanResult{{ID: 1, Status: "finished", CreatedAt: time.Now()}}

	for _, r := range []model.Route{
		model.RouteLogin, model.RouteRegister, model.RouteMfa,
		model.RoutePentest, model.RouteDashboard,
	} {
		m.route = r
		m.challenge = model.MfaChallenge{Required: true, Username: "alice"}
		if m.View() == "" {
			t.Errorf("View() for %v rendered nothing", r)
		}
	}
}
