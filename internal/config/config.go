// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package config provides configuration loading and management for pentest-tui.
//
// Configuration lives in ~/.pentest-tui/config.toml. Defaults are applied
// first, then the file, then PENTEST_* environment overrides, then validation.
package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/oEg8/pentest-tui/internal/util"
)

// Config is the complete pentest-tui configuration.
type Config struct {
	Version string `toml:"version"`

	Backend BackendConfig `toml:"backend"`
	Auth    AuthConfig    `toml:"auth"`
	Scan    ScanConfig    `toml:"scan"`
	History HistoryConfig `toml:"history"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// BackendConfig points the client at the demo backend.
type BackendConfig struct {
	// URL is the API base, e.g. "http://localhost:8000/api".
	URL string `toml:"url"`
	// TimeoutSecs is the HTTP client timeout for non-scan requests.
	TimeoutSecs int `toml:"timeout_secs"`
	// ScanTimeoutSecs is the HTTP client timeout for scan execution, which
	// blocks server-side until the engine finishes.
	ScanTimeoutSecs int `toml:"scan_timeout_secs"`
	// RateLimitRPS caps outgoing request rate. 0 disables the limiter.
	RateLimitRPS float64 `toml:"rate_limit_rps"`
}

// AuthConfig controls session persistence and the dev MFA helper.
type AuthConfig struct {
	// TokenPath is where the session token is persisted across runs.
	// Empty means ~/.pentest-tui/token.
	TokenPath string `toml:"token_path"`
	// TOTPSecret, when set, lets the client compute a current TOTP code for
	// dev backends that require MFA but do not echo the code hint.
	TOTPSecret string `toml:"totp_secret"`
}

// ScanConfig holds scan-runner preferences.
type ScanConfig struct {
	// DefaultEngine is the engine preselected before the first listing fetch.
	DefaultEngine string `toml:"default_engine"`
}

// HistoryConfig controls the local scan archive.
type HistoryConfig struct {
	// Enabled turns the sqlite archive on. Successful scans are recorded
	// locally so `pentest-tui history` works offline.
	Enabled bool `toml:"enabled"`
	// DBPath is the sqlite file. Empty means ~/.pentest-tui/scans.db.
	DBPath string `toml:"db_path"`
	// MaxEntries prunes the archive beyond this count. 0 means unlimited.
	MaxEntries int `toml:"max_entries"`
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	// Theme selects the color scheme: "dark", "light", or "auto".
	Theme string `toml:"theme"`
	// AltScreen runs the TUI in the alternate screen buffer.
	AltScreen bool `toml:"alt_screen"`
	// Mouse enables mouse cell motion events.
	Mouse bool `toml:"mouse"`
}

// LogConfig controls the debug log. A TUI owns stdout, so logging goes to a
// file or nowhere.
type LogConfig struct {
	// Path is the log file. Empty disables logging.
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Backend: BackendConfig{
			URL:             "http://localhost:8000/api",
			TimeoutSecs:     15,
			ScanTimeoutSecs: 300,
			RateLimitRPS:    0,
		},
		Scan: ScanConfig{
			DefaultEngine: "nmap",
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 500,
		},
		UI: UIConfig{
			Theme:     "auto",
			AltScreen: true,
			Mouse:     true,
		},
	}
}

// Dir returns the pentest-tui state directory (~/.pentest-tui), creating it
// if necessary.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".pentest-tui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Path returns the config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file if present, applies environment overrides, fills
// defaults, and validates. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes path into cfg on top of whatever cfg already holds.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Save writes cfg to the config file atomically.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg to path as TOML.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0o600)
}

// ApplyEnvOverrides applies PENTEST_* environment variables on top of the
// loaded values. Environment wins over the file.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PENTEST_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("PENTEST_TOKEN_PATH"); v != "" {
		c.Auth.TokenPath = v
	}
	if v := os.Getenv("PENTEST_TOTP_SECRET"); v != "" {
		c.Auth.TOTPSecret = v
	}
	if v := os.Getenv("PENTEST_DEFAULT_ENGINE"); v != "" {
		c.Scan.DefaultEngine = v
	}
	if v := os.Getenv("PENTEST_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("PENTEST_HISTORY_DB"); v != "" {
		c.History.DBPath = v
	}
	if v := os.Getenv("PENTEST_LOG"); v != "" {
		c.Log.Path = v
	}
	if v := os.Getenv("PENTEST_RATE_LIMIT_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			c.Backend.RateLimitRPS = rps
		}
	}
}

// fillDefaults patches holes left by partial config files.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Backend.URL == "" {
		c.Backend.URL = def.Backend.URL
	}
	if c.Backend.TimeoutSecs <= 0 {
		c.Backend.TimeoutSecs = def.Backend.TimeoutSecs
	}
	if c.Backend.ScanTimeoutSecs <= 0 {
		c.Backend.ScanTimeoutSecs = def.Backend.ScanTimeoutSecs
	}
	if c.Scan.DefaultEngine == "" {
		c.Scan.DefaultEngine = def.Scan.DefaultEngine
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
}

// Validate rejects configurations the client cannot operate with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.url %q is not an absolute URL", c.Backend.URL)
	}
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("ui.theme %q must be dark, light, or auto", c.UI.Theme)
	}
	if c.Backend.RateLimitRPS < 0 {
		return fmt.Errorf("backend.rate_limit_rps must not be negative")
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries must not be negative")
	}
	return nil
}

// TokenPath resolves the effective token file location.
func (c *Config) TokenPath() (string, error) {
	if c.Auth.TokenPath != "" {
		return c.Auth.TokenPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}

// HistoryDBPath resolves the effective archive location.
func (c *Config) HistoryDBPath() (string, error) {
	if c.History.DBPath != "" {
		return c.History.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scans.db"), nil
}

// =============================================================================
// GLOBAL SINGLETON (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first access.
func Global() *Config {
	globalConfigOnce.Do(func() {
		globalConfigMu.Lock()
		defer globalConfigMu.Unlock()
		if globalConfig != nil {
			// Already injected via SetGlobal (tests, CLI flags).
			return
		}
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg

		// First run: seed the config file so users have something to edit.
		if path, pathErr := Path(); pathErr == nil {
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				_ = Save(cfg)
			}
		}
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal re-reads the configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal replaces the global configuration.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting clears singleton state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
