package upstream

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// RateLimitError captures HTTP 429 responses from the upstream API.
// Its message keeps the "429" and "Rate limit" substrings callers
// pattern-match on; the wording is part of the contract.
type RateLimitError struct {
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "Rate limit exceeded"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// APIError carries a non-2xx upstream status plus any message/code
// found in the JSON error body.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error: %d %s", e.StatusCode, e.Status)
	if e.Message != "" {
		msg += " - " + e.Message
	}
	if e.Code != "" {
		msg += fmt.Sprintf(" (code: %s)", e.Code)
	}
	return msg
}

// TransientError marks failures worth retrying: network errors,
// client-side timeouts, malformed response bodies.
type TransientError struct {
	Reason string
	Err    error
}

func (e *TransientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transient upstream failure (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("transient upstream failure (%s)", e.Reason)
}

func (e *TransientError) Unwrap() error { return e.Err }

// TimeoutError signals a caller deadline was exceeded. It is distinct
// from upstream failures and is not retried.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	if e.After > 0 {
		return fmt.Sprintf("API timeout after %s", e.After)
	}
	return "API timeout"
}

// IsTimeout reports whether err is a caller-deadline timeout.
func IsTimeout(err error) bool {
	var tErr *TimeoutError
	return errors.As(err, &tErr)
}

// IsRetryable decides whether a failed attempt should be retried.
// Rate limits and transient failures retry; so does any error whose
// text matches the historical "429"/"network"/"timeout" markers.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	var trErr *TransientError
	if errors.As(err, &trErr) {
		return true
	}
	if IsTimeout(err) {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "network") ||
		strings.Contains(msg, "timeout")
}
