package panel

// Event is a discrete input trigger fed to Next.
type Event interface {
	// Trigger names the event for logs and traces.
	Trigger() string
}

// PressStart is a pointer going down on the collapsed launcher.
type PressStart struct{}

// PressEnd is the pointer coming back up. Inside is false when the release
// happened outside the launcher, which cancels the tap.
type PressEnd struct {
	Inside bool
}

// BackgroundTap is a tap on the expanded panel outside any item.
type BackgroundTap struct{}

// ItemTap is a tap on one option of the expanded grid.
type ItemTap struct {
	Option Option
}

// DetailTap is a tap anywhere on the Bluetooth detail panel.
type DetailTap struct{}

func (PressStart) Trigger() string { return "press_start" }

func (e PressEnd) Trigger() string {
	if e.Inside {
		return "press_end"
	}
	return "press_cancel"
}

func (BackgroundTap) Trigger() string { return "background_tap" }
func (ItemTap) Trigger() string       { return "item_tap" }
func (DetailTap) Trigger() string     { return "detail_tap" }

// Tap is the full press-and-release sequence on the launcher, used for
// keyboard activation.
func Tap(s State) State {
	return Next(Next(s, PressStart{}), PressEnd{Inside: true})
}
