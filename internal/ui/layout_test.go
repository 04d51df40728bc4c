package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry_Sizes(t *testing.T) {
	g := NewGeometry(16)
	assert.Equal(t, Rect{W: 16, H: 8}, g.Launcher())
	assert.Equal(t, Rect{W: 40, H: 28}, g.Expanded())
	assert.Equal(t, 17, g.CellWidth())
	assert.Equal(t, 8, g.VisibleRows())
}

func TestGeometry_ClampsToMinSize(t *testing.T) {
	assert.Equal(t, MinSize, NewGeometry(0).Size)
	assert.Equal(t, MinSize, NewGeometry(-3).Size)
	assert.Equal(t, 12, NewGeometry(12).Size)
}

func TestGeometry_ScaledLauncherStaysInFootprint(t *testing.T) {
	g := NewGeometry(16)
	full := g.ScaledLauncher(1)
	assert.Equal(t, g.Launcher(), full)

	pressed := g.ScaledLauncher(PressedScale)
	assert.Equal(t, 14, pressed.W)
	assert.Equal(t, 7, pressed.H)
	assert.Equal(t, 1, pressed.X)
	assert.True(t, pressed.X+pressed.W <= full.W)
	assert.True(t, pressed.Y+pressed.H <= full.H)
}

func TestGeometry_ItemRect(t *testing.T) {
	g := NewGeometry(16)

	r, ok := g.ItemRect(0, 0)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 3, Y: 2, W: 17, H: 2}, r)

	r, ok = g.ItemRect(3, 0)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 20, Y: 5, W: 17, H: 2}, r)

	_, ok = g.ItemRect(16, 0)
	assert.False(t, ok, "row 8 is below the fold")

	r, ok = g.ItemRect(16, 1)
	require.True(t, ok)
	assert.Equal(t, 2+7*itemHeight, r.Y)

	_, ok = g.ItemRect(0, 1)
	assert.False(t, ok, "row 0 is scrolled away")
}

func TestGeometry_MaxScroll(t *testing.T) {
	g := NewGeometry(8) // 3 visible rows
	assert.Equal(t, 3, g.VisibleRows())
	assert.Equal(t, 0, g.MaxScroll(6))
	assert.Equal(t, 3, g.MaxScroll(12))
	assert.Equal(t, 0, g.MaxScroll(0))
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 2))
	assert.False(t, r.Contains(2, 3))
	assert.False(t, r.Contains(1, 1))
}
