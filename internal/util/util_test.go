// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "token")

	if err := AtomicWriteFile(path, []byte("tok-1"), 0o600); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "tok-1" {
		t.Errorf("content = %q, want %q", data, "tok-1")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %v, want 0600", perm)
	}

	// Overwrite must replace, not append.
	if err := AtomicWriteFile(path, []byte("tok-2"), 0o600); err != nil {
		t.Fatalf("AtomicWriteFile() overwrite error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "tok-2" {
		t.Errorf("content after overwrite = %q, want %q", data, "tok-2")
	}

	// No temp litter left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "nmap", 10, "nmap"},
		{"exact", "nmap", 4, "nmap"},
		{"cut", "nmap -sV 192.168.1.10", 10, "nmap -s..."},
		{"tiny", "nmap", 2, "nm"},
		{"zero", "nmap", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ok", 5); got != "ok   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("toolong", 4); len(got) != 4 {
		t.Errorf("PadRight should truncate, got %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("PORT   STATE\n22/tcp open\n"); got != "PORT   STATE" {
		t.Errorf("FirstLine = %q", got)
	}
	if got := FirstLine("  single  "); got != "single" {
		t.Errorf("FirstLine trims, got %q", got)
	}
}
