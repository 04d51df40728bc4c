package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within the terminal.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Rect resolves the panel bounds for a terminal size.
func (p Panel) Rect(width, height int) Rect {
	x, y, w, h := p.Bounds(width, height)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Local converts terminal coordinates to panel-local coordinates.
func (p Panel) Local(width, height, x, y int) (int, int) {
	r := p.Rect(width, height)
	return x - r.X, y - r.Y
}

// AnchorTopLeft places a panel of the given size margin cells from the
// top-left corner of the terminal.
func AnchorTopLeft(margin int, size func() (w, h int)) BoundsFunc {
	return func(width, height int) (int, int, int, int) {
		w, h := size()
		return margin, margin / 2, w, h
	}
}
