package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"womens-soccer-service/internal/metrics"
)

func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(slog.Default(), nil, next)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/matches/live", nil)
	req.Header.Set("X-Request-ID", "abc-123")

	handler.ServeHTTP(rec, req)

	if captured != "abc-123" {
		t.Fatalf("expected incoming request id propagated, got %q", captured)
	}
	if rec.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("expected request id echoed in response header")
	}
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected inner status preserved, got %d", rec.Code)
	}
}

func TestLoggingMiddlewareRejectsBadRequestID(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
	})

	handler := LoggingMiddleware(nil, nil, next)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!")

	handler.ServeHTTP(rec, req)

	if captured == "" || captured == "bad id with spaces!" {
		t.Fatalf("expected a generated replacement id, got %q", captured)
	}
}

func TestLoggingMiddlewareRecordsMetrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(nil, recorder, next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/standings/4521", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSanitizeRequestID(t *testing.T) {
	if got := sanitizeRequestID("valid_id-123"); got != "valid_id-123" {
		t.Fatalf("valid id should pass through, got %q", got)
	}
	if got := sanitizeRequestID(""); got == "" {
		t.Fatalf("empty id should be replaced")
	}
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	if got := sanitizeRequestID(string(long)); got == string(long) {
		t.Fatalf("overlong id should be replaced")
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/matches/live", "/matches/live"},
		{"/standings/4521", "/standings/:competitionId"},
		{"/standings/4849", "/standings/:competitionId"},
		{"/health", "/health"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
