package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	cacheHits       int
	cacheMisses     int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordUpstreamAttempt increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordUpstreamAttempt(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordUpstreamAttempt(endpoint, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(endpoint string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(endpoint)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(endpoint, retryAfter)
	}
}

// RecordCacheHit tracks a response-cache hit for an endpoint.
func (r *Recorder) RecordCacheHit(endpoint string) {
	if r == nil {
		return
	}
	r.ensureStats(endpoint).cacheHits++
	if r.otel != nil {
		r.otel.recordCache(endpoint, true)
	}
}

// RecordCacheMiss tracks a response-cache miss for an endpoint.
func (r *Recorder) RecordCacheMiss(endpoint string) {
	if r == nil {
		return
	}
	r.ensureStats(endpoint).cacheMisses++
	if r.otel != nil {
		r.otel.recordCache(endpoint, false)
	}
}

// UpstreamCalls returns the total attempts recorded for an endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// UpstreamErrors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// RateLimitHits returns the number of rate limit events seen for an endpoint.
func (r *Recorder) RateLimitHits(endpoint string) int {
	return r.Snapshot(endpoint).RateLimitHits
}

// CacheHits returns the number of response-cache hits seen for an endpoint.
func (r *Recorder) CacheHits(endpoint string) int {
	return r.Snapshot(endpoint).CacheHits
}

// CacheMisses returns the number of response-cache misses seen for an endpoint.
func (r *Recorder) CacheMisses(endpoint string) int {
	return r.Snapshot(endpoint).CacheMisses
}

// LastRetryAfter returns the most recent Retry-After recorded for an endpoint.
func (r *Recorder) LastRetryAfter(endpoint string) time.Duration {
	return r.Snapshot(endpoint).LastRetryAfter
}

// Snapshot returns a copy of the current stats for an endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	CacheHits       int
	CacheMisses     int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(endpoint)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		CacheHits:       stats.cacheHits,
		CacheMisses:     stats.cacheMisses,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}

func (r *Recorder) snapshot(endpoint string) endpointStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[endpoint]; ok && stats != nil {
		return *stats
	}
	return endpointStats{}
}
