// Package panel implements the quick settings view-state machine.
//
// A State holds three booleans; its Mode is derived on every render. Next is
// the only way state changes, so a BluetoothDetail mode can only be reached
// from ExpandedGrid and collapsing always clears the detail flag.
package panel

// Mode is the render mode derived from State.
type Mode int

const (
	Collapsed Mode = iota
	ExpandedGrid
	BluetoothDetail
)

func (m Mode) String() string {
	switch m {
	case Collapsed:
		return "Collapsed"
	case ExpandedGrid:
		return "ExpandedGrid"
	case BluetoothDetail:
		return "BluetoothDetail"
	default:
		return "Unknown"
	}
}

// State is the mutable panel state. The zero value is collapsed and unpressed.
type State struct {
	MainExpanded      bool
	BluetoothExpanded bool
	Pressed           bool // press-scale sub-state, only meaningful while collapsed
}

// Mode derives the render mode.
func (s State) Mode() Mode {
	switch {
	case s.MainExpanded && s.BluetoothExpanded:
		return BluetoothDetail
	case s.MainExpanded:
		return ExpandedGrid
	default:
		return Collapsed
	}
}

// Next applies e to s and returns the resulting state. Events that do not
// apply to the current mode leave the mode unchanged.
func Next(s State, e Event) State {
	if end, ok := e.(PressEnd); ok {
		// Releasing always restores the unpressed scale, even if the
		// mode changed while the pointer was down.
		wasPressed := s.Pressed
		s.Pressed = false
		if s.Mode() == Collapsed && wasPressed && end.Inside {
			s.MainExpanded = true
		}
		return s
	}

	switch s.Mode() {
	case Collapsed:
		if _, ok := e.(PressStart); ok {
			s.Pressed = true
		}
	case ExpandedGrid:
		switch e := e.(type) {
		case BackgroundTap:
			s = collapse(s)
		case ItemTap:
			if IsBluetooth(e.Option) {
				s.BluetoothExpanded = true
			} else {
				s = collapse(s)
			}
		}
	case BluetoothDetail:
		if _, ok := e.(DetailTap); ok {
			s.BluetoothExpanded = false
		}
	}
	return s
}

func collapse(s State) State {
	s.MainExpanded = false
	s.BluetoothExpanded = false
	s.Pressed = false
	return s
}
