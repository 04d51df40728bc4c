package ui

import (
	"quickpanel/internal/panel"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the keyboard equivalents of the panel's pointer gestures.
type KeyMap struct {
	Activate key.Binding // tap the launcher, the focused item or the detail panel
	Back     key.Binding // tap the grid background or the detail panel
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Quit     key.Binding
	Trace    key.Binding // toggle the transition trace strip
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "tap"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Trace: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trace"),
		),
	}
}

// ForMode returns a help.KeyMap listing only the bindings that do something
// in mode. debug adds the trace toggle.
func (k KeyMap) ForMode(mode panel.Mode, debug bool) help.KeyMap {
	return modeKeyMap{keys: k, mode: mode, debug: debug}
}

// modeKeyMap implements help.KeyMap for one render mode.
type modeKeyMap struct {
	keys  KeyMap
	mode  panel.Mode
	debug bool
}

// ShortHelp returns bindings for the short help view.
func (m modeKeyMap) ShortHelp() []key.Binding {
	k := m.keys
	var bindings []key.Binding
	switch m.mode {
	case panel.ExpandedGrid:
		activate := k.Activate
		activate.SetHelp("enter", "toggle")
		back := k.Back
		back.SetHelp("esc", "close")
		bindings = []key.Binding{activate, back, k.Up, k.Down, k.Left, k.Right}
	case panel.BluetoothDetail:
		bindings = []key.Binding{k.Activate, k.Back}
	default:
		activate := k.Activate
		activate.SetHelp("enter", "open")
		bindings = []key.Binding{activate}
	}
	if m.debug {
		bindings = append(bindings, k.Trace)
	}
	return append(bindings, k.Quit)
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (m modeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
