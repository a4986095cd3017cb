// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package model

import "time"

// RequestStatus is the lifecycle stage of an intake request.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in_progress"
	StatusComplete   RequestStatus = "complete"
)

// RequestStatuses lists the valid stages in order.
var RequestStatuses = []RequestStatus{StatusPending, StatusInProgress, StatusComplete}

// Valid reports whether s is a known status.
func (s RequestStatus) Valid() bool {
	for _, v := range RequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the following stage, wrapping from complete back to pending.
// The board cycles statuses with a single key.
func (s RequestStatus) Next() RequestStatus {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusComplete
	default:
		return StatusPending
	}
}

// Display renders the status for humans ("in_progress" -> "in progress").
func (s RequestStatus) Display() string {
	if s == StatusInProgress {
		return "in progress"
	}
	return string(s)
}

// PentestRequest is one intake-board entry.
type PentestRequest struct {
	ID              int64         `json:"id"`
	ClientName      string        `json:"client_name"`
	ContactEmail    string        `json:"contact_email"`
	Scope           string        `json:"scope"`
	PreferredWindow string        `json:"preferred_window,omitempty"`
	Status          RequestStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Offering is a pentest profile the intake board advertises.
type Offering struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
