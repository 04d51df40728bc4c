package ui

import (
	"quickpanel/internal/panel"
	"quickpanel/internal/trace"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppConfig configures the root model.
type AppConfig struct {
	Options  []panel.Option
	Size     int             // base size in columns
	Margin   int             // distance from the terminal's left edge
	Recorder *trace.Recorder // optional
	Debug    bool            // enables the trace strip toggle
}

// AppModel is the root model. It hosts a single OptionsWidget in a Panel
// anchored to the top-left corner.
type AppModel struct {
	Widget *OptionsWidget
	Panel  Panel
	Keys   KeyMap
	Trace  *TraceView // nil unless debug is enabled

	recorder *trace.Recorder
	size     int
	width    int
	height   int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(cfg AppConfig) *AppModel {
	m := &AppModel{
		Keys:     DefaultKeyMap(),
		recorder: cfg.Recorder,
		size:     cfg.Size,
	}
	m.Widget = m.mount(cfg.Options)
	m.Panel = m.panel(cfg.Margin)
	if cfg.Debug {
		m.Trace = NewTraceView(cfg.Recorder)
	}
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// panel anchors the current widget margin cells from the top-left corner.
func (m *AppModel) panel(margin int) Panel {
	return Panel{
		ID:   "options",
		View: m.Widget,
		Bounds: AnchorTopLeft(max(margin, 0), func() (int, int) {
			r := m.Widget.Footprint()
			return r.W, r.H
		}),
	}
}

func (m *AppModel) mount(options []panel.Option) *OptionsWidget {
	w := NewOptionsWidget(options, m.size)
	if m.recorder != nil {
		w.SetRecorder(m.recorder)
	}
	return w
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Widget.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.Trace != nil {
			a.Trace.SetWidth(msg.Width)
		}
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.Keys.Quit):
			return a, tea.Quit
		case a.Trace != nil && key.Matches(msg, a.Keys.Trace):
			return a, func() tea.Msg { return ToggleTraceMsg{} }
		}
	case tea.MouseMsg:
		msg.X, msg.Y = a.Panel.Local(a.width, a.height, msg.X, msg.Y)
		return a, a.forward(msg)
	case ToggleTraceMsg:
		if a.Trace != nil {
			a.Trace.SetVisible(!a.Trace.IsVisible())
		}
		return a, nil
	case OptionsReloadedMsg:
		if msg.Size > 0 {
			a.size = msg.Size
		}
		if a.recorder != nil {
			a.recorder.NewSession()
		}
		a.Widget = a.mount(msg.Options)
		a.Panel = a.panel(msg.Margin)
		return a, a.Widget.Init()
	}
	return a, a.forward(msg)
}

func (a *appModelAdapter) forward(msg tea.Msg) tea.Cmd {
	_, cmd := a.Widget.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	r := a.Panel.Rect(a.width, a.height)
	body := inset(a.Widget.View(), Rect{}, r)

	footer := RenderKeybindHelp(a.Keys, a.Widget.Mode(), a.Trace != nil, a.width)
	if a.Trace != nil && a.Trace.IsVisible() {
		footer = a.Trace.View() + "\n" + footer
	}
	if a.height > 0 {
		body = lipgloss.PlaceVertical(max(a.height-lipgloss.Height(footer), 0), lipgloss.Top, body)
	}
	return body + "\n" + footer
}
