// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/config"
	"github.com/oEg8/pentest-tui/internal/model"
	"github.com/oEg8/pentest-tui/internal/session"
	"github.com/oEg8/pentest-tui/internal/storage"
	"github.com/oEg8/pentest-tui/internal/ui/components"
	"github.com/oEg8/pentest-tui/internal/ui/styles"
)

// Model is the top-level Bubble Tea model.
type Model struct {
	cfg     *config.Config
	client  *api.Client
	store   *session.Store
	archive *storage.Archive // nil when history is disabled

	theme *styles.Theme

	// Navigation. location is the raw string; route is its parsed view.
	// navigate() is the only writer.
	location string
	route    model.Route

	// Boot. booting is true until the one-shot hydration resolves; hydrated
	// guards against a second run.
	booting  bool
	hydrated bool

	// Auth state.
	session   model.Session
	challenge model.MfaChallenge

	// Pentest view.
	engines        []string
	selectedEngine string
	engineCursor   int
	scan           model.ScanState

	// Dashboard view. Replaced wholesale on every load.
	scans      []model.ScanResult
	scanCursor int

	// Forms.
	loginForm    form
	registerForm form
	mfaForm      form
	registerMFA  bool

	// Components.
	header    *components.Header
	alert     *components.Alert
	statusBar *components.StatusBar
	spinner   components.Spinner
	output    *components.OutputRenderer

	keys KeyMap

	width  int
	height int

	quitting bool
}

// New creates the application model. archive may be nil.
func New(cfg *config.Config, client *api.Client, store *session.Store, archive *storage.Archive) *Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	m := &Model{
		cfg:            cfg,
		client:         client,
		store:          store,
		archive:        archive,
		theme:          theme,
		booting:        true,
		location:       model.RouteLogin.Location(),
		route:          model.RouteLogin,
		selectedEngine: cfg.Scan.DefaultEngine,
		loginForm:      newLoginForm(),
		registerForm:   newRegisterForm(),
		mfaForm:        newMfaForm(),
		header:         components.NewHeader(theme),
		alert:          components.NewAlert(theme),
		statusBar:      components.NewStatusBar(theme),
		spinner:        components.NewSpinner(theme),
		output:         components.NewOutputRenderer(theme, 80),
		keys:           DefaultKeyMap(),
		width:          80,
		height:         24,
	}
	m.statusBar.SetBackend(client.BaseURL())
	return m
}

// Init starts the one-shot session hydration.
func (m *Model) Init() tea.Cmd {
	m.spinner.SetMessage("Restoring session")
	return tea.Batch(m.spinner.Start(), m.hydrateCmd())
}

// Route returns the current view.
func (m *Model) Route() model.Route {
	return m.route
}

// Session returns the current session state.
func (m *Model) Session() model.Session {
	return m.session
}

// Booting reports whether startup hydration is still in flight.
func (m *Model) Booting() bool {
	return m.booting
}

// navigate switches views. The guard runs first: a protected view without a
// session becomes the login view. Entering a view fires its load commands.
func (m *Model) navigate(location string) tea.Cmd {
	route := model.ParseRoute(location)
	if route.Protected() && !m.session.Authenticated() {
		route = model.RouteLogin
	}
	m.location = route.Location()
	m.route = route
	m.header.SetTitle(route.Title())

	switch route {
	case model.RouteDashboard:
		m.spinner.SetMessage("Loading scans")
		return tea.Batch(m.spinner.Start(), m.fetchScansCmd())
	case model.RoutePentest:
		m.spinner.SetMessage("Loading engines")
		return tea.Batch(m.spinner.Start(), m.fetchEnginesCmd())
	}
	return nil
}

// applySession installs a granted session, persists the token, and syncs the
// dependent UI state. It is the single entry point for becoming logged in.
func (m *Model) applySession(token string, user model.User, profile model.Profile) {
	m.session = model.Session{Token: token, User: &user, Profile: &profile}
	m.challenge = model.MfaChallenge{}
	m.header.SetUser(user.Username)
	m.statusBar.SetCredits(profile.Credits, true)
	if err := m.store.Save(token); err != nil {
		m.alert.Show("Could not save the session token.")
	}
}

// logout drops the token and every piece of state derived from the session.
func (m *Model) logout() tea.Cmd {
	_ = m.store.Clear()
	m.session.Clear()
	m.challenge = model.MfaChallenge{}
	m.scans = nil
	m.scanCursor = 0
	m.scan = model.ScanState{}
	m.header.SetUser("")
	m.statusBar.SetCredits(0, false)
	m.statusBar.SetRunning(false)
	m.alert.Clear()
	return m.navigate(model.RouteLogin.Location())
}
