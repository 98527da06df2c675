// Package thesportsdb fetches women's soccer data from the TheSportsDB
// REST API and normalizes it into the canonical domain shapes. All
// upstream access funnels through a single throttled, cached, retried
// fetch path.
package thesportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"womens-soccer-service/internal/cache"
	"womens-soccer-service/internal/logging"
	"womens-soccer-service/internal/metrics"
	"womens-soccer-service/internal/upstream"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	APIKey        string
	BaseURLV1     string
	BaseURLV2     string
	HTTPClient    *http.Client
	MaxConcurrent int
	MaxRetries    int
	RequestDelay  time.Duration
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
	Now           func() time.Time
}

// Client is the data-access facade: LiveMatches, Fixtures, and
// Standings orchestrate the aggregator, season resolver, and the
// shared fetch path. Construct one per process and share it; it owns
// its own cache and concurrency gate so tests can isolate state with
// fresh instances.
type Client struct {
	baseV1     string
	baseV2     string
	apiKey     string
	httpClient httpDoer
	gate       *upstream.Gate
	retry      upstream.Policy
	cache      *cache.Store
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
	delay      time.Duration

	// sleep is injectable for tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	delay := cfg.RequestDelay
	if delay < 0 {
		delay = 0
	} else if delay == 0 {
		delay = defaultRequestDelay
	}
	now := resolveNow(cfg.Now)

	return &Client{
		baseV1:     normalizeBaseURL(cfg.BaseURLV1, defaultBaseURLV1),
		baseV2:     normalizeBaseURL(cfg.BaseURLV2, defaultBaseURLV2),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		gate:       upstream.NewGate(maxConcurrent),
		retry:      upstream.NewPolicy(maxRetries, cfg.Logger),
		cache:      cache.NewStoreWithClock(now),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        now,
		delay:      delay,
		sleep:      sleepCtx,
	}
}

// Configured reports whether a premium API key is present. Absence is
// a valid reduced-functionality state, not an error.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiKey != freeTierKey
}

func (c *Client) premium() bool { return c.Configured() }

// fetch is the single upstream access path: cache lookup, concurrency
// gate, fixed pre-request delay, retried GET, cache write. It returns
// the raw JSON body, or nil for an upstream "no data" empty body.
func (c *Client) fetch(ctx context.Context, endpoint string, useV2 bool) ([]byte, error) {
	version := "v1"
	if useV2 && c.premium() {
		version = "v2"
	}
	cacheKey := version + ":" + endpoint
	metricName := endpointMetricName(endpoint)

	if data, ok := c.cache.Get(cacheKey); ok {
		c.metrics.RecordCacheHit(metricName)
		body, _ := data.([]byte)
		return body, nil
	}
	c.metrics.RecordCacheMiss(metricName)

	if err := c.gate.Acquire(ctx); err != nil {
		return nil, err
	}
	defer c.gate.Release()

	var result []byte
	err := c.retry.Do(ctx, func() error {
		body, attemptErr := c.attempt(ctx, endpoint, useV2, metricName)
		if attemptErr != nil {
			return attemptErr
		}
		result = body
		c.cache.Set(cacheKey, body, cache.TTLForEndpoint(endpoint))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// attempt performs one upstream GET.
func (c *Client) attempt(ctx context.Context, endpoint string, useV2 bool, metricName string) ([]byte, error) {
	if err := c.sleep(ctx, c.delay); err != nil {
		return nil, err
	}

	requestURL, headers := c.buildRequest(endpoint, useV2)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordUpstreamAttempt(metricName, c.now().Sub(start), err)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &upstream.TransientError{Reason: "network", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		c.metrics.RecordRateLimit(metricName, retryAfter)
		logging.Warn(c.logger, "upstream rate limited",
			slog.String(logging.FieldEndpoint, metricName),
			slog.Duration("retry_after", retryAfter),
		)
		return nil, &upstream.RateLimitError{
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter,
			Message:    "Rate limit exceeded",
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &upstream.TransientError{Reason: "read body", Err: err}
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		// Empty body means "no data", not an error.
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, &upstream.TransientError{Reason: "malformed response body"}
	}
	return body, nil
}

// buildRequest constructs the upstream URL and auth header. Premium V2
// authenticates via a header; premium V1 embeds the key as a path
// segment; everything else uses the anonymous free-tier key.
func (c *Client) buildRequest(endpoint string, useV2 bool) (string, map[string]string) {
	headers := map[string]string{"Content-Type": "application/json"}

	if useV2 && c.premium() {
		headers["X-API-KEY"] = c.apiKey
		return c.baseV2 + endpoint, headers
	}
	if c.premium() {
		return c.baseV1 + "/" + c.apiKey + endpoint, headers
	}
	return c.baseV1 + "/" + freeTierKey + endpoint, headers
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &upstream.APIError{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil {
		apiErr.Message = body.Message
		apiErr.Code = body.Error.Code.String()
	}
	return apiErr
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// endpointMetricName strips the query string so metrics group by
// endpoint rather than by individual parameters.
func endpointMetricName(endpoint string) string {
	if idx := strings.IndexByte(endpoint, '?'); idx >= 0 {
		return endpoint[:idx]
	}
	return endpoint
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// --- typed endpoint wrappers ---

func (c *Client) eventsOnDay(ctx context.Context, date string, leagueID int) ([]rawEvent, error) {
	endpoint := fmt.Sprintf("/eventsday.php?d=%s&s=Soccer", url.QueryEscape(date))
	if leagueID > 0 {
		endpoint = fmt.Sprintf("/eventsday.php?d=%s&l=%d", url.QueryEscape(date), leagueID)
	}
	return c.fetchEvents(ctx, endpoint, false)
}

func (c *Client) pastLeagueEvents(ctx context.Context, leagueID int) ([]rawEvent, error) {
	return c.fetchEvents(ctx, fmt.Sprintf("/eventspastleague.php?id=%d", leagueID), false)
}

func (c *Client) nextLeagueEvents(ctx context.Context, leagueID int) ([]rawEvent, error) {
	return c.fetchEvents(ctx, fmt.Sprintf("/eventsnextleague.php?id=%d", leagueID), false)
}

func (c *Client) liveScoreboard(ctx context.Context) ([]rawEvent, error) {
	return c.fetchEvents(ctx, "/livescore/soccer", true)
}

func (c *Client) fetchEvents(ctx context.Context, endpoint string, useV2 bool) ([]rawEvent, error) {
	raw, err := c.fetch(ctx, endpoint, useV2)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var envelope eventsEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.all(), nil
}

func (c *Client) leagueTable(ctx context.Context, leagueID int, season string) ([]rawTableRow, error) {
	endpoint := fmt.Sprintf("/lookuptable.php?l=%d&s=%s", leagueID, url.QueryEscape(season))
	raw, err := c.fetch(ctx, endpoint, false)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var envelope tableEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Table, nil
}

func (c *Client) seasonList(ctx context.Context, leagueID int) ([]string, error) {
	endpoint := fmt.Sprintf("/search_all_seasons.php?id=%d", leagueID)
	raw, err := c.fetch(ctx, endpoint, false)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var envelope seasonsEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	seasons := make([]string, 0, len(envelope.Seasons))
	for _, s := range envelope.Seasons {
		if s.Season != "" {
			seasons = append(seasons, s.Season)
		}
	}
	return seasons, nil
}
