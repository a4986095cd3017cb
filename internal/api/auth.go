// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"

	"github.com/oEg8/pentest-tui/internal/model"
)

// RegisterRequest is the registration form payload. Fields are forwarded
// as-is; validation is the backend's job.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email"`
	TargetIP   string `json:"target_ip"`
	MFAEnabled bool   `json:"mfa_enabled"`
}

// Credentials is the password-login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is a granted session: token plus the account it belongs to.
type AuthResponse struct {
	Token   string        `json:"token"`
	User    model.User    `json:"user"`
	Profile model.Profile `json:"profile"`
}

// LoginResponse is either a granted session or an MFA challenge. When
// MfaRequired is true the token fields are empty and the server echoes the
// username (and, in dev mode, the expected code).
type LoginResponse struct {
	MfaRequired bool   `json:"mfa_required"`
	Username    string `json:"username"`
	MfaCode     string `json:"mfa_code"`

	Token   string         `json:"token"`
	User    *model.User    `json:"user"`
	Profile *model.Profile `json:"profile"`
}

// MeResponse is the current-session lookup result.
type MeResponse struct {
	User    model.User    `json:"user"`
	Profile model.Profile `json:"profile"`
}

// Register creates an account. On success the backend grants a session
// immediately; registration never goes through the MFA step.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, c.httpClient, http.MethodPost, "/auth/register/", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login performs password authentication. Callers must check MfaRequired
// before treating the response as a session.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, c.httpClient, http.MethodPost, "/auth/login/", "", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyMFA exchanges a challenge answer for a session.
func (c *Client) VerifyMFA(ctx context.Context, username, code string) (*AuthResponse, error) {
	payload := struct {
		Username string `json:"username"`
		Code     string `json:"code"`
	}{Username: username, Code: code}

	var out AuthResponse
	if err := c.do(ctx, c.httpClient, http.MethodPost, "/auth/mfa/verify/", "", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me resolves a stored token to its account. Any error means the token is
// invalid or expired; hydration discards it either way.
func (c *Client) Me(ctx context.Context, token string) (*MeResponse, error) {
	var out MeResponse
	if err := c.do(ctx, c.httpClient, http.MethodGet, "/auth/me/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
