package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
)

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"game_id", "game-opener", "attempt", 2, "payload"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "game_id" || attrs[0].Value.AsString() != "game-opener" {
		t.Fatalf("unexpected game_id attribute")
	}
	if attrs[1].Key != "attempt" || attrs[1].Value.AsInt64() != 2 {
		t.Fatalf("unexpected attempt attribute")
	}
	if attrs[2].Key != "payload" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute")
	}
}

func TestToOTelLogValue(t *testing.T) {
	if got := toOTelLogValue(errors.New("scorebook down")); got.AsString() != "scorebook down" {
		t.Fatalf("unexpected error value %q", got.AsString())
	}
	if got := toOTelLogValue(1500 * time.Millisecond); got.AsString() != "1.5s" {
		t.Fatalf("unexpected duration value %q", got.AsString())
	}
	if got := toOTelLogValue([]string{"hh-01", "rr-02"}); got.Kind() != otellog.KindSlice || len(got.AsSlice()) != 2 {
		t.Fatalf("expected slice value, got %s", got.Kind())
	}
}

func TestToOTelSeverity(t *testing.T) {
	if toOTelSeverity(logging.LevelWarn) != otellog.SeverityWarn {
		t.Fatalf("unexpected warn severity")
	}
	if toOTelSeverity(logging.LevelError) != otellog.SeverityError {
		t.Fatalf("unexpected error severity")
	}
}
