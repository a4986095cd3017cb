// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package model

// User is the account identity echoed by the auth endpoints.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Profile carries the per-account scan settings. Credits is only ever
// rewritten from a scan response that includes a numeric credits value.
type Profile struct {
	TargetIP string  `json:"target_ip"`
	Credits  float64 `json:"credits"`
}

// Session is the authenticated state. The token is the single source of
// truth: an empty token means User and Profile must be nil, and a populated
// session always carries all three. No partial sessions are ever rendered.
type Session struct {
	Token   string
	User    *User
	Profile *Profile
}

// Authenticated reports whether a server-recognized session exists.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Clear resets the session to its anonymous zero form.
func (s *Session) Clear() {
	*s = Session{}
}

// MfaChallenge tracks the transient state between a password login that
// answered mfa_required and the follow-up code verification. Code is the
// dev-mode hint echoed by the backend; it may be empty.
//
// The zero value is the reset form: {Required: false, Username: "", Code: ""}.
type MfaChallenge struct {
	Required bool
	Username string
	Code     string
}
