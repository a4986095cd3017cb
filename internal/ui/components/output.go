// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/oEg8/pentest-tui/internal/model"
	"github.com/oEg8/pentest-tui/internal/ui/styles"
)

// OutputRenderer renders scan output. Engines emit markdown-ish text (section
// headings, fenced blocks of tool output), so it goes through glamour; when
// rendering fails the raw text is shown instead.
type OutputRenderer struct {
	width int
	theme *styles.Theme

	mu       sync.Mutex
	renderer *glamour.TermRenderer
}

// NewOutputRenderer creates a renderer at the given wrap width.
func NewOutputRenderer(theme *styles.Theme, width int) *OutputRenderer {
	return &OutputRenderer{width: width, theme: theme}
}

// SetWidth changes the wrap width. The glamour renderer is rebuilt lazily on
// the next render.
func (o *OutputRenderer) SetWidth(width int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if width != o.width {
		o.width = width
		o.renderer = nil
	}
}

func (o *OutputRenderer) glamourRenderer() (*glamour.TermRenderer, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.renderer != nil {
		return o.renderer, nil
	}

	style := glamour.WithStandardStyle("light")
	if o.theme.IsDark {
		style = glamour.WithStandardStyle("dark")
	}
	wrap := o.width - 6
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil, err
	}
	o.renderer = r
	return r, nil
}

// Render renders raw scan output text.
func (o *OutputRenderer) Render(output string) string {
	if strings.TrimSpace(output) == "" {
		return o.theme.Muted.Render("(no output)")
	}
	r, err := o.glamourRenderer()
	if err != nil {
		return output
	}
	rendered, err := r.Render(output)
	if err != nil {
		return output
	}
	return strings.TrimRight(rendered, "\n")
}

// RenderResult renders a full scan result: status line, metadata, output box.
func (o *OutputRenderer) RenderResult(res *model.ScanResult) string {
	if res == nil {
		return ""
	}

	var statusLine string
	switch res.Status {
	case "finished", "complete", "success":
		statusLine = o.theme.ScanFinished.Render(styles.IndicatorOK + " " + res.Status)
	case "failed", "error":
		statusLine = o.theme.ScanFailed.Render(styles.IndicatorError + " " + res.Status)
	case "pending", "queued", "running":
		statusLine = o.theme.ScanPending.Render(styles.IndicatorPending + " " + res.Status)
	default:
		// A status this client does not know about is worth flagging.
		statusLine = o.theme.Warning.Render(styles.IndicatorWarning + " " + res.Status)
	}

	meta := fmt.Sprintf("scan #%d", res.ID)
	if res.TargetIP != "" {
		meta += "  target " + res.TargetIP
	}
	if !res.CreatedAt.IsZero() {
		meta += "  " + res.CreatedAt.Local().Format("2006-01-02 15:04")
	}

	body := o.Render(res.Output)

	return statusLine + "\n" +
		o.theme.ScanMeta.Render(meta) + "\n" +
		o.theme.OutputBox.Width(o.width-2).Render(body)
}
