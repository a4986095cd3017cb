// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backend.URL != "http://localhost:8000/api" {
		t.Errorf("default backend URL = %q", cfg.Backend.URL)
	}
	if cfg.Scan.DefaultEngine != "nmap" {
		t.Errorf("default engine = %q, want nmap", cfg.Scan.DefaultEngine)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[backend]
url = "http://10.0.0.2:9000/api"
timeout_secs = 5

[scan]
default_engine = "nikto"

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML() error = %v", err)
	}
	if cfg.Backend.URL != "http://10.0.0.2:9000/api" {
		t.Errorf("backend URL = %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSecs != 5 {
		t.Errorf("timeout = %d, want 5", cfg.Backend.TimeoutSecs)
	}
	if cfg.Scan.DefaultEngine != "nikto" {
		t.Errorf("engine = %q, want nikto", cfg.Scan.DefaultEngine)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.UI.Theme)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PENTEST_BACKEND_URL", "http://env.example:8000/api")
	t.Setenv("PENTEST_DEFAULT_ENGINE", "zap")
	t.Setenv("PENTEST_THEME", "dark")
	t.Setenv("PENTEST_RATE_LIMIT_RPS", "2.5")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Backend.URL != "http://env.example:8000/api" {
		t.Errorf("env URL override not applied, got %q", cfg.Backend.URL)
	}
	if cfg.Scan.DefaultEngine != "zap" {
		t.Errorf("env engine override not applied, got %q", cfg.Scan.DefaultEngine)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("env theme override not applied, got %q", cfg.UI.Theme)
	}
	if cfg.Backend.RateLimitRPS != 2.5 {
		t.Errorf("env rate limit override not applied, got %v", cfg.Backend.RateLimitRPS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"relative url", func(c *Config) { c.Backend.URL = "/api" }, true},
		{"empty url", func(c *Config) { c.Backend.URL = "" }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"negative rps", func(c *Config) { c.Backend.RateLimitRPS = -1 }, true},
		{"negative max entries", func(c *Config) { c.History.MaxEntries = -5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFillDefaultsPatchesHoles(t *testing.T) {
	cfg := &Config{}
	cfg.fillDefaults()
	if cfg.Backend.URL == "" || cfg.Backend.TimeoutSecs <= 0 || cfg.UI.Theme == "" {
		t.Errorf("fillDefaults left holes: %+v", cfg)
	}
}

func TestGlobalSetAndReset(t *testing.T) {
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	want := Default()
	want.Scan.DefaultEngine = "nikto"
	SetGlobal(want)

	if got := Global(); got.Scan.DefaultEngine != "nikto" {
		t.Errorf("Global() did not return the set config")
	}
}
