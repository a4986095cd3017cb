// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package cli implements the command-line surface: argument parsing and the
// headless commands (login, status, history) that do not need the TUI.
package cli

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/config"
	"github.com/oEg8/pentest-tui/internal/session"
)

// Version information, synced from main at startup.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command is the top-level subcommand.
type Command int

const (
	CmdTUI Command = iota // default: the scan-runner TUI
	CmdBoard
	CmdLogin
	CmdStatus
	CmdHistory
	CmdVersion
	CmdHelp
)

// Parse reads os.Args and returns the command plus its remaining arguments.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdTUI, nil
	}
	switch args[0] {
	case "tui":
		return CmdTUI, args[1:]
	case "board":
		return CmdBoard, args[1:]
	case "login":
		return CmdLogin, args[1:]
	case "status":
		return CmdStatus, args[1:]
	case "history":
		return CmdHistory, args[1:]
	case "version", "--version", "-v":
		return CmdVersion, args[1:]
	case "help", "--help", "-h":
		return CmdHelp, args[1:]
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		return CmdHelp, nil
	}
}

// Setup loads configuration and builds the shared dependencies. Every command
// goes through it so flags and env overrides behave identically everywhere.
func Setup(args []string) (*config.Config, *api.Client, *session.Store) {
	cfg := config.Global()

	parsed := NewArgParser(args)
	if v := parsed.Flag("backend"); v != "" {
		cfg.Backend.URL = v
	}

	client := api.NewClient(cfg.Backend.URL).
		WithTimeout(time.Duration(cfg.Backend.TimeoutSecs) * time.Second).
		WithScanTimeout(time.Duration(cfg.Backend.ScanTimeoutSecs) * time.Second).
		WithRateLimit(cfg.Backend.RateLimitRPS)

	if cfg.Log.Path != "" {
		if f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
			client.WithLogger(log.New(f, "", log.LstdFlags))
		}
	}

	tokenPath, err := cfg.TokenPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot resolve token path: %v\n", err)
		os.Exit(1)
	}
	return cfg, client, session.NewStore(tokenPath)
}

// HandleVersion prints version information.
func HandleVersion([]string) {
	fmt.Printf("pentest-tui %s (%s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage.
func HandleHelp([]string) {
	fmt.Print(`pentest-tui - terminal client for the pentest demo stack

Usage:
  pentest-tui [command] [flags]

Commands:
  tui        Scan runner TUI (default)
  board      Pentest request intake board
  login      Sign in from the terminal and store the session token
  status     Show the current session
  history    Show locally archived scan results
  version    Print version information
  help       Print this help

Flags:
  --backend URL   Override the backend base URL for this invocation

Environment:
  PENTEST_BACKEND_URL, PENTEST_TOKEN_PATH, PENTEST_DEFAULT_ENGINE,
  PENTEST_THEME, PENTEST_HISTORY_DB, PENTEST_LOG, PENTEST_TOTP_SECRET
`)
}
