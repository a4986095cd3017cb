// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package styles

import "testing"

func TestNewThemeModes(t *testing.T) {
	dark := NewTheme("dark")
	if !dark.IsDark {
		t.Error(`NewTheme("dark").IsDark = false`)
	}
	light := NewTheme("light")
	if light.IsDark {
		t.Error(`NewTheme("light").IsDark = true`)
	}
	// "auto" defers to terminal detection; it just has to not panic.
	_ = NewTheme("auto")
}

func TestLayoutModes(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}
	th := NewTheme("dark")
	for _, tt := range tests {
		th.SetSize(tt.width, 40)
		if got := th.GetLayoutMode(); got != tt.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestStatusStyleCoversLifecycle(t *testing.T) {
	th := NewTheme("dark")
	for _, status := range []string{"pending", "in_progress", "complete"} {
		// Styles must render without panicking for every lifecycle stage.
		_ = th.StatusStyle(status).Render(status)
	}
}
