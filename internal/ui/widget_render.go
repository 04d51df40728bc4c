package ui

import (
	"strings"

	"quickpanel/internal/panel"
	"quickpanel/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// View implements View.
func (w *OptionsWidget) View() string {
	switch w.state.Mode() {
	case panel.ExpandedGrid:
		return w.clipReveal(w.renderGrid())
	case panel.BluetoothDetail:
		return w.renderDetail()
	default:
		return w.renderCollapsed()
	}
}

// renderCollapsed draws the launcher with up to PreviewLimit icon-only
// items, scaled and centered inside the unscaled footprint.
func (w *OptionsWidget) renderCollapsed() string {
	footprint := w.geom.Launcher()
	r := w.geom.ScaledLauncher(w.scale.pos)
	contentW, contentH := r.W-2*border, r.H-2*border
	cellW := contentW / gridColumns

	preview := panel.Preview(w.options)
	rows := make([]string, 0, GridRows(len(preview)))
	for start := 0; start < len(preview); start += gridColumns {
		var line strings.Builder
		for _, o := range preview[start:min(start+gridColumns, len(preview))] {
			line.WriteString(styledCell(iconDisc(Glyph(o.Icon), cellW), cellW, Styles.Icon))
		}
		rows = append(rows, line.String())
	}
	lines := append(make([]string, max((contentH-len(rows))/2, 0)), rows...)

	style := Styles.Launcher
	if w.state.Pressed {
		style = Styles.Pressed
	}
	return inset(frame(lines, contentW, contentH, style), footprint, r)
}

// renderGrid draws every option with its label, two per row, starting at the
// scroll offset.
func (w *OptionsWidget) renderGrid() string {
	exp := w.geom.Expanded()
	contentW, contentH := exp.W-2*border, exp.H-2*border
	cellW := w.geom.CellWidth()
	n := len(w.options)

	lines := make([]string, gridPadY)
	last := min(w.scroll+w.geom.VisibleRows(), GridRows(n))
	for row := w.scroll; row < last; row++ {
		var icons, labels strings.Builder
		icons.WriteString(surface(gridPadX))
		labels.WriteString(surface(gridPadX))
		for col := 0; col < gridColumns; col++ {
			i := row*gridColumns + col
			if i >= n {
				break
			}
			o := w.options[i]
			iconStyle := Styles.Icon
			if i == w.cursor {
				iconStyle = Styles.IconFocus
			}
			icons.WriteString(styledCell(iconDisc(Glyph(o.Icon), cellW), cellW, iconStyle))
			labels.WriteString(styledCell(o.Title, cellW, Styles.Label))
		}
		lines = append(lines, icons.String(), labels.String(), "")
	}

	var hint string
	if w.scroll > 0 {
		hint += "▲"
	}
	if w.scroll < w.geom.MaxScroll(n) {
		hint += "▼"
	}
	if hint != "" {
		hintStyle := Styles.Label.Foreground(lipgloss.Color(ColorMuted))
		lines[len(lines)-1] = surface(contentW-lipgloss.Width(hint)-gridPadX) + hintStyle.Render(hint)
	}
	return frame(lines, contentW, contentH, Styles.Panel)
}

// renderDetail draws the Bluetooth sub-panel at the expanded footprint.
func (w *OptionsWidget) renderDetail() string {
	exp := w.geom.Expanded()
	contentW, contentH := exp.W-2*border, exp.H-2*border

	lines := make([]string, max(contentH/6, gridPadY))
	lines = append(lines,
		styledCell("( "+Glyph("bluetooth")+" )", contentW, Styles.Detail),
		"",
		styledCell(panel.BluetoothTitle, contentW, Styles.Label),
	)
	return frame(lines, contentW, contentH, Styles.Panel)
}

// clipReveal crops the grid while it grows out of the launcher's corner.
func (w *OptionsWidget) clipReveal(view string) string {
	if w.reveal.settled() && w.reveal.pos >= 1 {
		return view
	}
	from, to := w.geom.Launcher(), w.geom.Expanded()
	p := min(max(w.reveal.pos, 0), 1)
	mw := from.W + int(float64(to.W-from.W)*p)
	mh := from.H + int(float64(to.H-from.H)*p)
	return lipgloss.NewStyle().MaxWidth(mw).MaxHeight(mh).Render(view)
}

// frame pads lines to a contentW x contentH block and draws style's border
// around it.
func frame(lines []string, contentW, contentH int, style lipgloss.Style) string {
	body := make([]string, contentH)
	for i := range body {
		var l string
		if i < len(lines) {
			l = lines[i]
		}
		if gap := contentW - lipgloss.Width(l); gap > 0 {
			l += surface(gap)
		}
		body[i] = l
	}
	return style.Render(strings.Join(body, "\n"))
}

// inset positions block at inner within an outer footprint so the widget
// keeps a stable size while the launcher shrinks.
func inset(block string, outer, inner Rect) string {
	out := make([]string, 0, outer.H)
	for range inner.Y {
		out = append(out, "")
	}
	pad := strings.Repeat(" ", inner.X)
	for _, l := range strings.Split(block, "\n") {
		out = append(out, pad+l)
	}
	for len(out) < outer.H {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// styledCell centers text in width columns; only the text takes style.
func styledCell(text string, width int, style lipgloss.Style) string {
	left, text, right := textutil.Center(text, width)
	return surface(left) + style.Render(text) + surface(right)
}

// surface renders n blank cells in the panel color.
func surface(n int) string {
	if n <= 0 {
		return ""
	}
	return Styles.Label.Render(strings.Repeat(" ", n))
}
