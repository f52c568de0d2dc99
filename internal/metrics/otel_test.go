package metrics

import (
	"context"
	"testing"
	"time"
)

func TestSetupDisabledReturnsBareRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even when telemetry is disabled")
	}
	if handler != nil {
		t.Fatal("disabled telemetry should not expose a scrape handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown should be a no-op, got %v", err)
	}
}

func TestSetupEnabledWiresInstruments(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		Port:    "9090",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer shutdown(context.Background())

	if handler == nil {
		t.Fatal("expected a prometheus scrape handler")
	}

	rec.RecordProviderAttempt("cfbd", 50*time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/teams", 200, 10*time.Millisecond)
	rec.RecordNarrative("gpt-4o-mini", 300*time.Millisecond, nil)

	if rec.ProviderCalls("cfbd") != 1 {
		t.Fatalf("expected in-memory stats alongside otel export, got %d", rec.ProviderCalls("cfbd"))
	}
}
