// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package model

import "strings"

// Route names one of the five navigable views. Values match the location
// fragments the browser frontend used, without the leading slash.
type Route string

const (
	RouteLogin     Route = "login"
	RouteRegister  Route = "register"
	RouteMfa       Route = "mfa"
	RoutePentest   Route = "pentest"
	RouteDashboard Route = "dashboard"
)

// ParseRoute maps a raw location string to a view. Empty and unrecognized
// locations fall back to the login view. The function is pure; the guard
// side effects live in the app model.
func ParseRoute(location string) Route {
	raw := strings.TrimPrefix(strings.TrimPrefix(location, "#"), "/")
	switch Route(raw) {
	case RouteLogin, RouteRegister, RouteMfa, RoutePentest, RouteDashboard:
		return Route(raw)
	default:
		return RouteLogin
	}
}

// Location returns the canonical location string for the route.
func (r Route) Location() string {
	return "/" + string(r)
}

// Protected reports whether the view requires an authenticated session.
// Anonymous navigation to a protected view forces a redirect to login.
func (r Route) Protected() bool {
	return r == RoutePentest || r == RouteDashboard
}

// Title is the page heading shown for the route.
func (r Route) Title() string {
	switch r {
	case RouteRegister:
		return "Register"
	case RouteMfa:
		return "MFA verification"
	case RoutePentest:
		return "Run pentest"
	case RouteDashboard:
		return "Dashboard"
	default:
		return "Sign in"
	}
}
