package upstream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestRateLimitErrorMessageContract(t *testing.T) {
	err := &RateLimitError{StatusCode: 429, RetryAfter: 30 * time.Second}
	msg := err.Error()
	// Callers distinguish failures by substring; the wording matters.
	if !strings.Contains(msg, "429") {
		t.Fatalf("expected message to contain 429, got %q", msg)
	}
	if !strings.Contains(msg, "Rate limit") {
		t.Fatalf("expected message to contain Rate limit, got %q", msg)
	}
}

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	inner := &RateLimitError{StatusCode: 429}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	got, ok := AsRateLimitError(wrapped)
	if !ok || got.StatusCode != 429 {
		t.Fatalf("expected unwrapped rate limit error, got %v ok=%v", got, ok)
	}
	if _, ok := AsRateLimitError(errors.New("plain")); ok {
		t.Fatalf("plain error must not match")
	}
}

func TestTimeoutErrorMessage(t *testing.T) {
	err := &TimeoutError{After: 8 * time.Second}
	if !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("expected timeout in message, got %q", err.Error())
	}
	if !IsTimeout(err) {
		t.Fatalf("expected IsTimeout to match")
	}
	if IsTimeout(errors.New("timeout-ish text")) {
		t.Fatalf("IsTimeout must match the type, not text")
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limit", &RateLimitError{StatusCode: 429}, true},
		{"transient", &TransientError{Reason: "network"}, true},
		{"429 text", errors.New("upstream said 429"), true},
		{"network text", errors.New("network unreachable"), true},
		{"timeout text", errors.New("i/o timeout"), true},
		{"caller deadline", &TimeoutError{After: time.Second}, false},
		{"api error", &APIError{StatusCode: 404, Status: "Not Found"}, false},
		{"cancellation", context.Canceled, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRetryable(tc.err); got != tc.want {
				t.Fatalf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 404, Status: "Not Found", Message: "no such league", Code: "L404"}
	msg := err.Error()
	for _, fragment := range []string{"404", "Not Found", "no such league", "L404"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in message %q", fragment, msg)
		}
	}
}
