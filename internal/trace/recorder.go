package trace

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultCapacity is the number of transitions a Recorder keeps.
const DefaultCapacity = 10

// Recorder keeps the most recent transitions of a panel session and
// forwards each one to the OTLP exporter when enabled.
type Recorder struct {
	mu       sync.RWMutex
	traceID  string
	recent   []Transition // Ring buffer, oldest first
	capacity int
	exporter *OTLPExporter
	now      func() time.Time
}

// NewRecorder creates a recorder holding up to capacity transitions.
// The exporter may be nil.
func NewRecorder(capacity int, exporter *OTLPExporter) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{
		traceID:  NewTraceID(),
		recent:   make([]Transition, 0, capacity),
		capacity: capacity,
		exporter: exporter,
		now:      time.Now,
	}
}

// NewSession starts a new trace, used when the panel is remounted.
// Recorded history is cleared.
func (r *Recorder) NewSession() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.traceID = NewTraceID()
	r.recent = r.recent[:0]
}

// TraceID returns the current session's trace ID.
func (r *Recorder) TraceID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.traceID
}

// Record stores a transition and exports it. When the export succeeds the
// stored SpanID is the exported span's ID.
func (r *Recorder) Record(from, to, trigger string, attrs map[string]string) Transition {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := Transition{
		TraceID:    r.traceID,
		SpanID:     NewSpanID(),
		From:       from,
		To:         to,
		Trigger:    trigger,
		Timestamp:  r.now(),
		Attributes: attrs,
	}
	if r.exporter != nil {
		spanID, err := r.exporter.ExportTransition(context.Background(), t)
		if err != nil {
			log.Printf("trace.Record: export %s %s: %v", t.Trigger, t.TraceID, err)
		} else {
			t.SpanID = spanID
		}
	}
	if len(r.recent) == r.capacity {
		copy(r.recent, r.recent[1:])
		r.recent = r.recent[:len(r.recent)-1]
	}
	r.recent = append(r.recent, t)
	return t
}

// Recent returns a copy of the recorded transitions, oldest first.
func (r *Recorder) Recent() []Transition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Transition, len(r.recent))
	copy(out, r.recent)
	return out
}

// Shutdown flushes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	return r.exporter.Shutdown(ctx)
}
