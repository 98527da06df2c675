package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatalf("expected a logger")
	}
	if NewLogger(Config{Format: "json", Level: "debug", Service: "svc", Version: "dev"}) == nil {
		t.Fatalf("expected a json logger")
	}
}

func TestContextRoundTrip(t *testing.T) {
	fallback := slog.Default()
	base := NewLogger(Config{Service: "test"})

	ctx := WithLogger(context.Background(), base)
	if got := FromContext(ctx, fallback); got != base {
		t.Fatalf("expected stored logger back")
	}
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback for bare context")
	}
	if got := FromContext(nil, fallback); got != fallback { //nolint:staticcheck
		t.Fatalf("expected fallback for nil context")
	}
}

func TestNilSafeHelpers(t *testing.T) {
	// Must not panic with a nil logger.
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", nil)
}
