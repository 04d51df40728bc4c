package ui

import (
	"fmt"
	"strings"

	"quickpanel/internal/trace"
	"quickpanel/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// TraceView lists the most recent panel transitions, newest last.
type TraceView struct {
	recorder *trace.Recorder
	width    int
	visible  bool
}

// NewTraceView creates a hidden trace view over r.
func NewTraceView(r *trace.Recorder) *TraceView {
	return &TraceView{recorder: r, width: 60}
}

// SetWidth sets the width of the trace view
func (v *TraceView) SetWidth(width int) {
	v.width = width
}

// SetVisible sets whether the trace view is visible
func (v *TraceView) SetVisible(visible bool) {
	v.visible = visible
}

// IsVisible returns whether the trace view is visible
func (v *TraceView) IsVisible() bool {
	return v.visible
}

// View renders the transition list, or "" when hidden.
func (v *TraceView) View() string {
	if !v.visible || v.recorder == nil {
		return ""
	}
	inner := max(v.width-4, 10)

	header := fmt.Sprintf("Trace %s", shortTraceID(v.recorder.TraceID()))
	lines := []string{Styles.HelpKey.Render(textutil.Truncate(header, inner))}

	recent := v.recorder.Recent()
	if len(recent) == 0 {
		lines = append(lines, Styles.Muted.Render("No transitions yet"))
	}
	for _, t := range recent {
		marker := " "
		if t.Changed() {
			marker = "●"
		}
		line := fmt.Sprintf("%s %s %s %s → %s",
			t.Timestamp.Format("15:04:05.000"),
			marker,
			textutil.PadRight(t.Trigger, 14),
			t.From,
			t.To,
		)
		if title, ok := t.Attributes["option.title"]; ok {
			line += " (" + title + ")"
		}
		lines = append(lines, Styles.Muted.Render(textutil.Truncate(line, inner)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}

// shortTraceID returns the first 8 characters of a trace ID.
func shortTraceID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
