// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/model"
)

// Async results arrive as typed messages, one per operation. Commands capture
// the model fields they need before the closure so the running goroutine
// never touches the model.

// hydrateResultMsg finishes the one-shot boot sequence. Session is the zero
// value when there was no stored token or the token was rejected.
type hydrateResultMsg struct {
	session    model.Session
	staleToken bool // a stored token was rejected and has been discarded
}

// loginResultMsg carries the password-login outcome.
type loginResultMsg struct {
	resp *api.LoginResponse
	err  error
}

// registerResultMsg carries the registration outcome.
type registerResultMsg struct {
	resp *api.AuthResponse
	err  error
}

// mfaResultMsg carries the code-verification outcome.
type mfaResultMsg struct {
	resp *api.AuthResponse
	err  error
}

// enginesResultMsg carries the engine listing for the pentest view.
type enginesResultMsg struct {
	engines []string
	err     error
}

// scansResultMsg carries the full scan history for the dashboard.
type scansResultMsg struct {
	scans []model.ScanResult
	err   error
}

// scanResultMsg resolves a running scan.
type scanResultMsg struct {
	res *model.ScanResult
	err error
}

// ConfigReloadedMsg is sent from outside the program when the config file
// changes on disk.
type ConfigReloadedMsg struct{}

// hydrateCmd reads the stored token and validates it against the backend.
// Any failure discards the token; boot always completes.
func (m *Model) hydrateCmd() tea.Cmd {
	client := m.client
	store := m.store
	return func() tea.Msg {
		token, err := store.Load()
		if err != nil || token == "" {
			return hydrateResultMsg{}
		}
		me, err := client.Me(context.Background(), token)
		if err != nil {
			// Token no longer valid; drop it so the next boot is clean.
			_ = store.Clear()
			return hydrateResultMsg{staleToken: true}
		}
		return hydrateResultMsg{session: model.Session{
			Token:   token,
			User:    &me.User,
			Profile: &me.Profile,
		}}
	}
}

func (m *Model) loginCmd(username, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Login(context.Background(), api.Credentials{
			Username: username,
			Password: password,
		})
		return loginResultMsg{resp: resp, err: err}
	}
}

func (m *Model) registerCmd(req api.RegisterRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Register(context.Background(), req)
		return registerResultMsg{resp: resp, err: err}
	}
}

func (m *Model) verifyMfaCmd(username, code string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.VerifyMFA(context.Background(), username, code)
		return mfaResultMsg{resp: resp, err: err}
	}
}

func (m *Model) fetchEnginesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		engines, err := client.Engines(context.Background())
		return enginesResultMsg{engines: engines, err: err}
	}
}

func (m *Model) fetchScansCmd() tea.Cmd {
	client := m.client
	token := m.session.Token
	return func() tea.Msg {
		scans, err := client.Scans(context.Background(), token)
		return scansResultMsg{scans: scans, err: err}
	}
}

func (m *Model) runScanCmd() tea.Cmd {
	client := m.client
	token := m.session.Token
	engine := m.selectedEngine
	return func() tea.Msg {
		res, err := client.RunScan(context.Background(), token, engine)
		return scanResultMsg{res: res, err: err}
	}
}
