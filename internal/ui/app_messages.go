package ui

import "quickpanel/internal/panel"

// OptionsReloadedMsg replaces the panel's options and placement. The widget
// is remounted, so its state starts over collapsed.
type OptionsReloadedMsg struct {
	Options []panel.Option
	Size    int // 0 keeps the current base size
	Margin  int // applied as given
}

// ToggleTraceMsg shows or hides the trace strip.
type ToggleTraceMsg struct{}
