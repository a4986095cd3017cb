// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package model

import "testing"

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     Route
	}{
		{"empty defaults to login", "", RouteLogin},
		{"login", "/login", RouteLogin},
		{"register", "/register", RouteRegister},
		{"mfa", "/mfa", RouteMfa},
		{"pentest", "/pentest", RoutePentest},
		{"dashboard", "/dashboard", RouteDashboard},
		{"bare name", "dashboard", RouteDashboard},
		{"hash prefix", "#/pentest", RoutePentest},
		{"unknown defaults to login", "/admin", RouteLogin},
		{"garbage defaults to login", "///", RouteLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRoute(tt.location); got != tt.want {
				t.Errorf("ParseRoute(%q) = %q, want %q", tt.location, got, tt.want)
			}
		})
	}
}

func TestRouteProtected(t *testing.T) {
	protected := map[Route]bool{
		RouteLogin:     false,
		RouteRegister:  false,
		RouteMfa:       false,
		RoutePentest:   true,
		RouteDashboard: true,
	}
	for r, want := range protected {
		if got := r.Protected(); got != want {
			t.Errorf("%s.Protected() = %v, want %v", r, got, want)
		}
	}
}

func TestRouteLocationRoundTrip(t *testing.T) {
	for _, r := range []Route{RouteLogin, RouteRegister, RouteMfa, RoutePentest, RouteDashboard} {
		if got := ParseRoute(r.Location()); got != r {
			t.Errorf("ParseRoute(%q) = %q, want %q", r.Location(), got, r)
		}
	}
}

func TestRouteTitle(t *testing.T) {
	if RouteLogin.Title() != "Sign in" {
		t.Errorf("login title = %q", RouteLogin.Title())
	}
	if RouteMfa.Title() != "MFA verification" {
		t.Errorf("mfa title = %q", RouteMfa.Title())
	}
}
