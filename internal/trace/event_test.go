package trace

import (
	"context"
	"encoding/hex"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewTraceID_GeneratesValidHex(t *testing.T) {
	id := NewTraceID()
	if len(id) != 32 {
		t.Errorf("NewTraceID: expected 32 characters, got %d", len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("NewTraceID: generated invalid hex: %v", err)
	}
}

func TestNewSpanID_GeneratesValidHex(t *testing.T) {
	id := NewSpanID()
	if len(id) != 16 {
		t.Errorf("NewSpanID: expected 16 characters, got %d", len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("NewSpanID: generated invalid hex: %v", err)
	}
}

func TestNewSpanID_GeneratesUniqueIDs(t *testing.T) {
	if NewSpanID() == NewSpanID() {
		t.Error("NewSpanID: generated duplicate IDs")
	}
}

func TestExportTransition_RejectsBadTraceID(t *testing.T) {
	e := newExporter(sdktrace.NewTracerProvider())
	for _, id := range []string{"abcd", "zz", ""} {
		if _, err := e.ExportTransition(context.Background(), Transition{TraceID: id}); err == nil {
			t.Errorf("ExportTransition(%q): expected error", id)
		}
	}
}

func TestExportTransition_NilExporter(t *testing.T) {
	var e *OTLPExporter
	id, err := e.ExportTransition(context.Background(), Transition{})
	if err != nil || id != "" {
		t.Errorf("nil exporter: got %q, %v", id, err)
	}
}

func TestEndpointOptions(t *testing.T) {
	if n := len(endpointOptions("localhost:4318")); n != 2 {
		t.Errorf("host:port: expected endpoint and insecure options, got %d", n)
	}
	if n := len(endpointOptions("https://collector.example:4318")); n != 1 {
		t.Errorf("url: expected a single URL option, got %d", n)
	}
}

func TestTransition_Changed(t *testing.T) {
	if (Transition{From: "Collapsed", To: "Collapsed"}).Changed() {
		t.Error("same mode should not count as changed")
	}
}
