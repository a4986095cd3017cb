// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Credits is an optional numeric credit balance attached to a scan response.
// The backend may omit the field or, in older builds, send junk in it; only a
// JSON number counts as present. A malformed value decodes as absent instead
// of failing the surrounding scan result.
type Credits struct {
	value float64
	valid bool
}

// NewCredits returns a present credit value. Used by tests and the archive.
func NewCredits(v float64) Credits {
	return Credits{value: v, valid: true}
}

// Value returns the balance and whether it was present in the response.
func (c Credits) Value() (float64, bool) {
	return c.value, c.valid
}

// UnmarshalJSON accepts a JSON number and treats anything else as absent.
// A literal null would unmarshal into a float64 as a no-op, so it needs its
// own branch.
func (c *Credits) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*c = Credits{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*c = Credits{}
		return nil
	}
	*c = Credits{value: v, valid: true}
	return nil
}

// MarshalJSON emits the number, or null when absent.
func (c Credits) MarshalJSON() ([]byte, error) {
	if !c.valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.value)
}

// ScanResult is a single scan execution as reported by the backend.
type ScanResult struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	TargetIP  string    `json:"target_ip"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
	Credits   Credits   `json:"credits"`
}

// ScanState tracks the in-flight scan. Running is true only between dispatch
// and resolution; Latest holds the most recent successful result and nothing
// else (a failed scan clears it rather than showing a partial result).
type ScanState struct {
	Running bool
	Latest  *ScanResult
}
