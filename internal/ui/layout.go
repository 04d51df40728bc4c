package ui

import "math"

const (
	// MinSize is the smallest base size, in columns, the panel renders at.
	MinSize = 8

	gridColumns = 2
	gridPadX    = 2 // columns between the frame and the grid
	gridPadY    = 1 // rows between the top frame and the grid
	itemHeight  = 3 // icon row, label row, gap
	border      = 1

	// PressedScale is the launcher scale while the pointer is held down.
	PressedScale = 0.9
)

// Rect is a cell rectangle relative to some origin.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Geometry computes the panel's cell layout for a base size. Terminal cells
// are roughly twice as tall as wide, so every height is halved.
type Geometry struct {
	Size int
}

// NewGeometry clamps size to MinSize.
func NewGeometry(size int) Geometry {
	return Geometry{Size: max(size, MinSize)}
}

// Launcher is the unscaled footprint of the collapsed launcher. Hit testing
// always uses this rectangle.
func (g Geometry) Launcher() Rect {
	return Rect{W: g.Size, H: g.Size / 2}
}

// ScaledLauncher is the launcher drawn at scale, centered in its footprint.
func (g Geometry) ScaledLauncher(scale float64) Rect {
	fp := g.Launcher()
	w := max(int(math.Round(float64(fp.W)*scale)), 2*border+1)
	h := max(int(math.Round(float64(fp.H)*scale)), 2*border+1)
	return Rect{X: (fp.W - w) / 2, Y: (fp.H - h) / 2, W: w, H: h}
}

// Expanded is the footprint shared by the grid and the detail panel:
// 2.5x the base width and 3.5x the base height.
func (g Geometry) Expanded() Rect {
	return Rect{
		W: int(math.Round(float64(g.Size) * 2.5)),
		H: int(math.Round(float64(g.Size) * 3.5 / 2)),
	}
}

// CellWidth is the width of one grid column.
func (g Geometry) CellWidth() int {
	return (g.Expanded().W - 2*border - 2*gridPadX) / gridColumns
}

// VisibleRows is the number of grid rows that fit in the expanded panel.
func (g Geometry) VisibleRows() int {
	return max((g.Expanded().H-2*border-gridPadY)/itemHeight, 1)
}

// GridRows is the number of rows needed for n items.
func GridRows(n int) int {
	return (n + gridColumns - 1) / gridColumns
}

// MaxScroll is the largest useful scroll offset, in rows, for n items.
func (g Geometry) MaxScroll(n int) int {
	return max(GridRows(n)-g.VisibleRows(), 0)
}

// ItemRect returns the hit rectangle of item i with the grid scrolled by
// scroll rows. ok is false when the item is scrolled out of view.
func (g Geometry) ItemRect(i, scroll int) (r Rect, ok bool) {
	row := i/gridColumns - scroll
	if i < 0 || row < 0 || row >= g.VisibleRows() {
		return Rect{}, false
	}
	col := i % gridColumns
	return Rect{
		X: border + gridPadX + col*g.CellWidth(),
		Y: border + gridPadY + row*itemHeight,
		W: g.CellWidth(),
		H: itemHeight - 1,
	}, true
}
