// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package session persists the opaque backend session token across runs and
// provides the dev-mode TOTP helper.
package session

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oEg8/pentest-tui/internal/util"
)

// Store persists a single session token in a file. The token is written on
// every successful auth step and deleted on logout or failed hydration; there
// is never more than one.
type Store struct {
	path string
}

// NewStore creates a token store at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted token, or "" when none is stored.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save persists the token. The file is written atomically and is readable by
// the owner only.
func (s *Store) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("refusing to store empty token")
	}
	if err := util.AtomicWriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Fingerprint returns a short non-reversible tag for log lines. Tokens never
// appear in logs.
func Fingerprint(token string) string {
	if token == "" {
		return "none"
	}
	var sum uint32 = 2166136261
	for i := 0; i < len(token); i++ {
		sum ^= uint32(token[i])
		sum *= 16777619
	}
	return fmt.Sprintf("%08x", sum)
}
