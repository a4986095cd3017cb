// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/config"
	"github.com/oEg8/pentest-tui/internal/model"
)

// Update is the message loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.alert.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.output.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case hydrateResultMsg:
		return m.handleHydrate(msg)

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case registerResultMsg:
		return m.handleRegisterResult(msg)

	case mfaResultMsg:
		return m.handleMfaResult(msg)

	case enginesResultMsg:
		return m.handleEngines(msg)

	case scansResultMsg:
		return m.handleScans(msg)

	case scanResultMsg:
		return m.handleScanResult(msg)

	case ConfigReloadedMsg:
		m.cfg = config.Global()
		m.client.
			WithBaseURL(m.cfg.Backend.URL).
			WithTimeout(time.Duration(m.cfg.Backend.TimeoutSecs) * time.Second).
			WithScanTimeout(time.Duration(m.cfg.Backend.ScanTimeoutSecs) * time.Second).
			WithRateLimit(m.cfg.Backend.RateLimitRPS)
		m.statusBar.SetBackend(m.client.BaseURL())
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleHydrate completes the one-shot boot. Whatever the outcome, booting
// ends and never restarts.
func (m *Model) handleHydrate(msg hydrateResultMsg) (tea.Model, tea.Cmd) {
	if m.hydrated {
		return m, nil
	}
	m.hydrated = true
	m.booting = false
	m.spinner.Stop()

	if msg.session.Authenticated() {
		m.session = msg.session
		m.header.SetUser(msg.session.User.Username)
		m.statusBar.SetCredits(msg.session.Profile.Credits, true)
		return m, m.navigate(model.RoutePentest.Location())
	}
	return m, m.navigate(model.RouteLogin.Location())
}

func (m *Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.spinner.Stop()
	if msg.err != nil {
		m.alert.Show(api.Message(msg.err, "Login failed."))
		return m, nil
	}

	if msg.resp.MfaRequired {
		// Challenge only; no token exists yet and none is persisted.
		m.challenge = model.MfaChallenge{
			Required: true,
			Username: msg.resp.Username,
			Code:     msg.resp.MfaCode,
		}
		m.mfaForm.reset()
		if m.challenge.Code != "" {
			// Dev backends echo the expected code; prefill it.
			m.mfaForm.inputs[0].SetValue(m.challenge.Code)
		}
		return m, m.navigate(model.RouteMfa.Location())
	}

	var user model.User
	if msg.resp.User != nil {
		user = *msg.resp.User
	}
	var profile model.Profile
	if msg.resp.Profile != nil {
		profile = *msg.resp.Profile
	}
	m.applySession(msg.resp.Token, user, profile)
	m.loginForm.reset()
	return m, m.navigate(model.RoutePentest.Location())
}

func (m *Model) handleRegisterResult(msg registerResultMsg) (tea.Model, tea.Cmd) {
	m.spinner.Stop()
	if msg.err != nil {
		m.alert.Show(api.Message(msg.err, "Registration failed."))
		return m, nil
	}
	m.applySession(msg.resp.Token, msg.resp.User, msg.resp.Profile)
	m.registerForm.reset()
	m.registerMFA = false
	return m, m.navigate(model.RoutePentest.Location())
}

func (m *Model) handleMfaResult(msg mfaResultMsg) (tea.Model, tea.Cmd) {
	m.spinner.Stop()
	if msg.err != nil {
		m.alert.Show(api.Message(msg.err, "MFA verification failed."))
		return m, nil
	}
	m.applySession(msg.resp.Token, msg.resp.User, msg.resp.Profile)
	m.mfaForm.reset()
	return m, m.navigate(model.RoutePentest.Location())
}

func (m *Model) handleEngines(msg enginesResultMsg) (tea.Model, tea.Cmd) {
	m.spinner.Stop()
	if msg.err != nil {
		m.alert.Show(api.Message(msg.err, "Could not load engines."))
		return m, nil
	}
	m.engines = msg.engines

	// Keep the selection when it still exists; otherwise fall back to the
	// first engine. An empty listing leaves the selection untouched.
	if len(m.engines) > 0 && !containsString(m.engines, m.selectedEngine) {
		m.selectedEngine = m.engines[0]
	}
	m.engineCursor = indexOfString(m.engines, m.selectedEngine)
	if m.engineCursor < 0 {
		m.engineCursor = 0
	}
	return m, nil
}

func (m *Model) handleScans(msg scansResultMsg) (tea.Model, tea.Cmd) {
	m.spinner.Stop()
	if msg.err != nil {
		m.alert.Show(api.Message(msg.err, "Could not load scans."))
		return m, nil
	}
	// Wholesale replace; the server's ordering wins over any local prepends.
	m.scans = msg.scans
	m.scanCursor = 0
	return m, nil
}

func (m *Model) handleScanResult(msg scanResultMsg) (tea.Model, tea.Cmd) {
	m.spinner.Stop()
	m.scan.Running = false
	m.statusBar.SetRunning(false)

	if msg.err != nil {
		m.scan.Latest = nil
		m.alert.Show(api.Message(msg.err, "Scan failed."))
		return m, nil
	}

	m.scan.Latest = msg.res
	m.scans = append([]model.ScanResult{*msg.res}, m.scans...)

	// Credits only move when the response carried a numeric balance.
	if v, ok := msg.res.Credits.Value(); ok {
		if m.session.Profile != nil {
			m.session.Profile.Credits = v
		}
		m.statusBar.SetCredits(v, true)
	}

	if m.archive != nil && m.session.User != nil {
		_ = m.archive.Record(m.session.User.Username, m.selectedEngine, *msg.res)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.booting {
		return m, nil
	}

	// Session-scoped navigation.
	if m.session.Authenticated() {
		switch {
		case key.Matches(msg, m.keys.Pentest):
			m.alert.Clear()
			return m, m.navigate(model.RoutePentest.Location())
		case key.Matches(msg, m.keys.Dashboard):
			m.alert.Clear()
			return m, m.navigate(model.RouteDashboard.Location())
		case key.Matches(msg, m.keys.Logout):
			return m, m.logout()
		}
	}

	switch m.route {
	case model.RouteLogin:
		return m.handleLoginKey(msg)
	case model.RouteRegister:
		return m.handleRegisterKey(msg)
	case model.RouteMfa:
		return m.handleMfaKey(msg)
	case model.RoutePentest:
		return m.handlePentestKey(msg)
	case model.RouteDashboard:
		return m.handleDashboardKey(msg)
	}
	return m, nil
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Switch):
		m.alert.Clear()
		return m, m.navigate(model.RouteRegister.Location())
	case key.Matches(msg, m.keys.NextField):
		m.loginForm.next()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.loginForm.prev()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if !m.loginForm.onLast() {
			m.loginForm.next()
			return m, nil
		}
		username := m.loginForm.value(0)
		password := m.loginForm.value(1)
		if username == "" || password == "" {
			m.alert.Show("Username and password are required.")
			return m, nil
		}
		m.alert.Clear()
		m.spinner.SetMessage("Signing in")
		return m, tea.Batch(m.spinner.Start(), m.loginCmd(username, password))
	}
	return m, m.updateFormInput(&m.loginForm, msg)
}

func (m *Model) handleRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Switch):
		m.alert.Clear()
		return m, m.navigate(model.RouteLogin.Location())
	case key.Matches(msg, m.keys.NextField):
		m.registerForm.next()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.registerForm.prev()
		return m, nil
	case msg.String() == "ctrl+t":
		m.registerMFA = !m.registerMFA
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if !m.registerForm.onLast() {
			m.registerForm.next()
			return m, nil
		}
		req := api.RegisterRequest{
			Username:   m.registerForm.value(0),
			Email:      m.registerForm.value(1),
			Password:   m.registerForm.value(2),
			TargetIP:   m.registerForm.value(3),
			MFAEnabled: m.registerMFA,
		}
		if req.Username == "" || req.Password == "" {
			m.alert.Show("Username and password are required.")
			return m, nil
		}
		m.alert.Clear()
		m.spinner.SetMessage("Creating account")
		return m, tea.Batch(m.spinner.Start(), m.registerCmd(req))
	}
	return m, m.updateFormInput(&m.registerForm, msg)
}

func (m *Model) handleMfaKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.challenge.Required {
		// No pending challenge; the view is meaningless without one.
		return m, m.navigate(model.RouteLogin.Location())
	}
	if key.Matches(msg, m.keys.Submit) {
		code := m.mfaForm.value(0)
		if code == "" {
			m.alert.Show("Enter the verification code.")
			return m, nil
		}
		m.alert.Clear()
		m.spinner.SetMessage("Verifying")
		return m, tea.Batch(m.spinner.Start(), m.verifyMfaCmd(m.challenge.Username, code))
	}
	return m, m.updateFormInput(&m.mfaForm, msg)
}

func (m *Model) handlePentestKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.engineCursor > 0 {
			m.engineCursor--
			m.selectedEngine = m.engines[m.engineCursor]
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.engineCursor < len(m.engines)-1 {
			m.engineCursor++
			m.selectedEngine = m.engines[m.engineCursor]
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.alert.Clear()
		m.spinner.SetMessage("Loading engines")
		return m, tea.Batch(m.spinner.Start(), m.fetchEnginesCmd())
	case key.Matches(msg, m.keys.Submit):
		if m.scan.Running {
			// One scan at a time; the keypress is dropped, not queued.
			return m, nil
		}
		if m.selectedEngine == "" {
			m.alert.Show("No engine selected.")
			return m, nil
		}
		m.alert.Clear()
		// The stale result leaves the screen while the new scan runs.
		m.scan.Running = true
		m.scan.Latest = nil
		m.statusBar.SetRunning(true)
		m.spinner.SetMessage("Running " + m.selectedEngine)
		return m, tea.Batch(m.spinner.Start(), m.runScanCmd())
	}
	return m, nil
}

func (m *Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.scanCursor > 0 {
			m.scanCursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.scanCursor < len(m.scans)-1 {
			m.scanCursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.alert.Clear()
		m.spinner.SetMessage("Loading scans")
		return m, tea.Batch(m.spinner.Start(), m.fetchScansCmd())
	}
	return m, nil
}

// updateFormInput forwards a key to the focused text input.
func (m *Model) updateFormInput(f *form, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func indexOfString(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
