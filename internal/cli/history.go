// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/oEg8/pentest-tui/internal/config"
	"github.com/oEg8/pentest-tui/internal/storage"
	"github.com/oEg8/pentest-tui/internal/util"
)

// HandleHistory prints the locally archived scan results, newest first.
func HandleHistory(args []string) error {
	cfg := config.Global()
	parsed := NewArgParser(args)

	if !cfg.History.Enabled {
		fmt.Println("Scan history is disabled in the configuration.")
		return nil
	}

	dbPath, err := cfg.HistoryDBPath()
	if err != nil {
		return fmt.Errorf("resolve history path: %w", err)
	}
	archive, err := storage.Open(dbPath, cfg.History.MaxEntries)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer archive.Close()

	limit := parsed.IntFlag("limit", 20)
	entries, err := archive.List(limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No archived scans.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  #%-5d %-8s %-10s %-16s %s",
			e.RecordedAt.Local().Format("2006-01-02 15:04"),
			e.Result.ID, e.Engine, e.Result.Status, e.Result.TargetIP,
			util.FirstLine(e.Result.Output))
		fmt.Println(util.Truncate(line, 120))
	}
	if total, err := archive.Count(); err == nil && total > len(entries) {
		fmt.Printf("Showing %d of %d archived scans (--limit to see more).\n", len(entries), total)
	}
	return nil
}
