package trace

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Transition records one state machine step of a panel instance.
type Transition struct {
	TraceID    string            `json:"trace_id"`   // One trace per mounted panel
	SpanID     string            `json:"span_id"`    // Exported span ID, or a local one when export is off
	From       string            `json:"from"`       // Mode before the event
	To         string            `json:"to"`         // Mode after the event
	Trigger    string            `json:"trigger"`    // Event name (item_tap, press_end, ...)
	Timestamp  time.Time         `json:"timestamp"`
	Attributes map[string]string `json:"attributes"` // Extra metadata, e.g. option title
}

// Changed reports whether the transition moved the panel to another mode.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// NewTraceID generates a random 16-byte trace ID as hex string (32 characters)
func NewTraceID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// NewSpanID generates a random 8-byte span ID as hex string (16 characters)
func NewSpanID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
