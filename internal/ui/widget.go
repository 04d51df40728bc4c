package ui

import (
	"log"
	"sync/atomic"

	"quickpanel/internal/panel"
	"quickpanel/internal/trace"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Spring tuning. The launcher press mirrors a stiff, non-bouncy spring; the
// reveal is slower so the expansion is visible.
const (
	scaleFrequency  = 20.0
	scaleDamping    = 1.0
	revealFrequency = 9.0
	revealDamping   = 1.0
)

// animGen is shared by all widgets so frames scheduled by an unmounted
// widget never match a new one.
var animGen atomic.Int64

type hitKind int

const (
	hitNone hitKind = iota
	hitLauncher
	hitItem
	hitBackground
	hitDetail
)

// hit is the target under a pointer position.
type hit struct {
	kind  hitKind
	index int // option index for hitItem
}

// OptionsWidget is the quick settings panel. It owns its panel.State; the
// only way to change it is through pointer and key input.
type OptionsWidget struct {
	options []panel.Option
	geom    Geometry
	keys    KeyMap

	state  panel.State
	scale  spring // launcher press scale
	reveal spring // 0..1 expansion of the grid from the top-left corner

	gen       int64 // current animation loop, 0 when idle
	animating bool

	scroll int  // first visible grid row
	cursor int  // keyboard focus within the grid
	press  *hit // target under the pointer when the button went down

	recorder *trace.Recorder
}

// Ensure OptionsWidget implements View.
var _ View = (*OptionsWidget)(nil)

// NewOptionsWidget creates a collapsed panel. options is copied; size is the
// base width in columns and is clamped to MinSize.
func NewOptionsWidget(options []panel.Option, size int) *OptionsWidget {
	opts := make([]panel.Option, len(options))
	copy(opts, options)
	return &OptionsWidget{
		options: opts,
		geom:    NewGeometry(size),
		keys:    DefaultKeyMap(),
		scale:   newSpring(1, scaleFrequency, scaleDamping),
		reveal:  newSpring(1, revealFrequency, revealDamping),
	}
}

// SetRecorder attaches a transition recorder. It only observes state.
func (w *OptionsWidget) SetRecorder(r *trace.Recorder) {
	w.recorder = r
}

// State returns a copy of the panel state.
func (w *OptionsWidget) State() panel.State { return w.state }

// Mode returns the current render mode.
func (w *OptionsWidget) Mode() panel.Mode { return w.state.Mode() }

// Scale returns the current launcher scale.
func (w *OptionsWidget) Scale() float64 { return w.scale.pos }

// Cursor returns the index of the focused grid item.
func (w *OptionsWidget) Cursor() int { return w.cursor }

// Scroll returns the first visible grid row.
func (w *OptionsWidget) Scroll() int { return w.scroll }

// Geometry returns the widget's layout.
func (w *OptionsWidget) Geometry() Geometry { return w.geom }

// Footprint returns the area the widget occupies in its current mode.
func (w *OptionsWidget) Footprint() Rect {
	if w.state.Mode() == panel.Collapsed {
		return w.geom.Launcher()
	}
	return w.geom.Expanded()
}

// Init implements View.
func (w *OptionsWidget) Init() tea.Cmd {
	return nil
}

// Update implements View. Mouse coordinates must be local to the widget.
func (w *OptionsWidget) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return w, w.handleMouse(msg)
	case tea.KeyMsg:
		return w, w.handleKey(msg)
	case frameMsg:
		return w, w.handleFrame(msg)
	}
	return w, nil
}

func (w *OptionsWidget) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if w.state.Mode() == panel.ExpandedGrid && w.hitTest(msg.X, msg.Y).kind != hitNone {
				w.scrollBy(-1)
			}
			return nil
		case tea.MouseButtonWheelDown:
			if w.state.Mode() == panel.ExpandedGrid && w.hitTest(msg.X, msg.Y).kind != hitNone {
				w.scrollBy(1)
			}
			return nil
		case tea.MouseButtonLeft:
		default:
			return nil
		}
		target := w.hitTest(msg.X, msg.Y)
		if target.kind == hitNone {
			return nil
		}
		w.press = &target
		if target.kind == hitLauncher {
			return w.apply(panel.PressStart{})
		}
		return nil

	case tea.MouseActionRelease:
		if w.press == nil {
			return nil
		}
		start := *w.press
		w.press = nil
		end := w.hitTest(msg.X, msg.Y)
		switch start.kind {
		case hitLauncher:
			return w.apply(panel.PressEnd{Inside: end.kind == hitLauncher})
		case hitItem:
			if end == start {
				return w.apply(panel.ItemTap{Option: w.options[start.index]})
			}
		case hitBackground:
			if end.kind == hitBackground {
				return w.apply(panel.BackgroundTap{})
			}
		case hitDetail:
			if end.kind == hitDetail {
				return w.apply(panel.DetailTap{})
			}
		}
	}
	return nil
}

func (w *OptionsWidget) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch w.state.Mode() {
	case panel.Collapsed:
		if key.Matches(msg, w.keys.Activate) {
			down := w.apply(panel.PressStart{})
			up := w.apply(panel.PressEnd{Inside: true})
			return tea.Batch(down, up)
		}
	case panel.ExpandedGrid:
		switch {
		case key.Matches(msg, w.keys.Activate):
			if len(w.options) == 0 {
				return w.apply(panel.BackgroundTap{})
			}
			return w.apply(panel.ItemTap{Option: w.options[w.cursor]})
		case key.Matches(msg, w.keys.Back):
			return w.apply(panel.BackgroundTap{})
		case key.Matches(msg, w.keys.Up):
			w.moveCursor(-gridColumns)
		case key.Matches(msg, w.keys.Down):
			w.moveCursor(gridColumns)
		case key.Matches(msg, w.keys.Left):
			w.moveCursor(-1)
		case key.Matches(msg, w.keys.Right):
			w.moveCursor(1)
		}
	case panel.BluetoothDetail:
		if key.Matches(msg, w.keys.Activate, w.keys.Back) {
			return w.apply(panel.DetailTap{})
		}
	}
	return nil
}

// apply feeds e to the state machine and starts any animation the new state
// needs.
func (w *OptionsWidget) apply(e panel.Event) tea.Cmd {
	from := w.state.Mode()
	w.state = panel.Next(w.state, e)
	to := w.state.Mode()

	if from == panel.Collapsed && to == panel.ExpandedGrid {
		w.scroll, w.cursor = 0, 0
		w.reveal.jump(0)
	}
	w.scale.target = 1
	if w.state.Pressed {
		w.scale.target = PressedScale
	}

	w.record(from, to, e)
	return w.animate()
}

func (w *OptionsWidget) record(from, to panel.Mode, e panel.Event) {
	if from != to {
		log.Printf("ui.OptionsWidget: %s -> %s on %s", from, to, e.Trigger())
	}
	if w.recorder == nil {
		return
	}
	var attrs map[string]string
	if tap, ok := e.(panel.ItemTap); ok {
		attrs = map[string]string{
			"option.title": tap.Option.Title,
			"option.icon":  string(tap.Option.Icon),
		}
	}
	w.recorder.Record(from.String(), to.String(), e.Trigger(), attrs)
}

// hitTest maps a local cell to the target under it in the current mode.
func (w *OptionsWidget) hitTest(x, y int) hit {
	switch w.state.Mode() {
	case panel.Collapsed:
		if w.geom.Launcher().Contains(x, y) {
			return hit{kind: hitLauncher}
		}
	case panel.ExpandedGrid:
		for i := range w.options {
			if r, ok := w.geom.ItemRect(i, w.scroll); ok && r.Contains(x, y) {
				return hit{kind: hitItem, index: i}
			}
		}
		if w.geom.Expanded().Contains(x, y) {
			return hit{kind: hitBackground}
		}
	case panel.BluetoothDetail:
		if w.geom.Expanded().Contains(x, y) {
			return hit{kind: hitDetail}
		}
	}
	return hit{kind: hitNone}
}

func (w *OptionsWidget) scrollBy(delta int) {
	w.scroll = min(max(w.scroll+delta, 0), w.geom.MaxScroll(len(w.options)))
}

// moveCursor moves grid focus without wrapping and scrolls it into view.
func (w *OptionsWidget) moveCursor(delta int) {
	next := w.cursor + delta
	if next < 0 || next >= len(w.options) {
		return
	}
	w.cursor = next
	row := next / gridColumns
	visible := w.geom.VisibleRows()
	switch {
	case row < w.scroll:
		w.scroll = row
	case row >= w.scroll+visible:
		w.scroll = row - visible + 1
	}
}

// animate starts a frame loop unless one is running or nothing moves.
func (w *OptionsWidget) animate() tea.Cmd {
	if w.animating || (w.scale.settled() && w.reveal.settled()) {
		return nil
	}
	w.animating = true
	w.gen = animGen.Add(1)
	return frameCmd(w.gen)
}

func (w *OptionsWidget) handleFrame(msg frameMsg) tea.Cmd {
	if !w.animating || msg.gen != w.gen {
		return nil
	}
	w.scale.step()
	w.reveal.step()
	if w.scale.settled() && w.reveal.settled() {
		w.animating = false
		return nil
	}
	return frameCmd(w.gen)
}
