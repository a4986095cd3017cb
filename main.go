// pentest-tui - terminal client for the pentest demo stack.
//
// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/cli"
	"github.com/oEg8/pentest-tui/internal/config"
	"github.com/oEg8/pentest-tui/internal/storage"
	"github.com/oEg8/pentest-tui/internal/ui/app"
	"github.com/oEg8/pentest-tui/internal/ui/board"
	"github.com/oEg8/pentest-tui/internal/ui/styles"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
	api.Version = Version
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdBoard:
		runBoard(args)
	case cli.CmdLogin:
		exitOnError(cli.HandleLogin(args))
	case cli.CmdStatus:
		exitOnError(cli.HandleStatus(args))
	case cli.CmdHistory:
		exitOnError(cli.HandleHistory(args))
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp(args)
	}
}

func runTUI(args []string) {
	cfg, client, store := cli.Setup(args)

	var archive *storage.Archive
	if cfg.History.Enabled {
		if dbPath, err := cfg.HistoryDBPath(); err == nil {
			if a, err := storage.Open(dbPath, cfg.History.MaxEntries); err == nil {
				archive = a
				defer a.Close()
			}
		}
		// A broken archive disables history for the session; scanning
		// itself must keep working.
	}

	model := app.New(cfg, client, store, archive)

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	// Hot-reload: edits to the config file reach the running UI.
	if w, err := config.NewWatcher(func(*config.Config) {
		p.Send(app.ConfigReloadedMsg{})
	}); err == nil {
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runBoard(args []string) {
	cfg, client, _ := cli.Setup(args)

	model := board.New(client, styles.NewTheme(cfg.UI.Theme))

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
