package ui

import (
	"testing"

	"quickpanel/internal/trace"

	"github.com/stretchr/testify/assert"
)

func TestTraceView_HiddenByDefault(t *testing.T) {
	v := NewTraceView(trace.NewRecorder(3, nil))
	assert.False(t, v.IsVisible())
	assert.Empty(t, v.View())
}

func TestTraceView_ListsTransitions(t *testing.T) {
	rec := trace.NewRecorder(3, nil)
	v := NewTraceView(rec)
	v.SetVisible(true)
	assert.Contains(t, v.View(), "No transitions yet")

	rec.Record("ExpandedGrid", "BluetoothDetail", "item_tap", map[string]string{"option.title": "Bluetooth"})
	out := v.View()
	assert.Contains(t, out, shortTraceID(rec.TraceID()))
	assert.Contains(t, out, "item_tap")
	assert.Contains(t, out, "(Bluetooth)")
}

func TestTraceView_NilRecorder(t *testing.T) {
	v := NewTraceView(nil)
	v.SetVisible(true)
	assert.Empty(t, v.View())
}

func TestShortTraceID(t *testing.T) {
	assert.Equal(t, "abcdef01", shortTraceID("abcdef0123456789"))
	assert.Equal(t, "abc", shortTraceID("abc"))
}
