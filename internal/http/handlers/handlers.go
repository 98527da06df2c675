// Package handlers maps the match and standings services onto the
// HTTP envelope contract used by the browser client.
package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"womens-soccer-service/internal/app/matches"
	"womens-soccer-service/internal/app/standings"
	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/logging"
	"womens-soccer-service/internal/timeutil"
	"womens-soccer-service/internal/upstream"
)

// defaultRetryAfterSeconds is the hint returned on rate-limit
// responses when the upstream did not supply one.
const defaultRetryAfterSeconds = 60

// matchesEnvelope is the response shape for match endpoints.
type matchesEnvelope struct {
	Success    bool           `json:"success"`
	Configured bool           `json:"configured"`
	Matches    []domain.Match `json:"matches"`
	Count      int            `json:"count"`
	Message    string         `json:"message,omitempty"`
	Error      string         `json:"error,omitempty"`
	RetryAfter int            `json:"retryAfter,omitempty"`
}

// standingsEnvelope is the response shape for the standings endpoint.
type standingsEnvelope struct {
	Success       bool              `json:"success"`
	Configured    bool              `json:"configured"`
	Standings     []domain.Standing `json:"standings"`
	CompetitionID int               `json:"competitionId"`
	Count         int               `json:"count"`
	Message       string            `json:"message,omitempty"`
	Error         string            `json:"error,omitempty"`
	RetryAfter    int               `json:"retryAfter,omitempty"`
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	matches   *matches.Service
	standings *standings.Service
	logger    *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(matchSvc *matches.Service, standingSvc *standings.Service, logger *slog.Logger) *Handler {
	return &Handler{matches: matchSvc, standings: standingSvc, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// LiveMatches returns matches currently in progress.
func (h *Handler) LiveMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	if !h.matches.Configured() {
		writeJSON(w, nethttp.StatusOK, notConfiguredMatches(), h.logger)
		return
	}

	live, err := h.matches.Live(r.Context())
	if err != nil {
		status, env := failedMatches(err, "Unable to load live matches")
		logger.Warn("live matches fetch failed", "err", err)
		writeJSON(w, status, env, h.logger)
		return
	}

	env := matchesEnvelope{
		Success:    true,
		Configured: true,
		Matches:    live,
		Count:      len(live),
	}
	if len(live) == 0 {
		env.Message = "No live matches right now"
	}
	logger.Info("live matches served", slog.Int(logging.FieldCount, len(live)))
	writeJSON(w, nethttp.StatusOK, env, h.logger)
}

// Fixtures returns upcoming or ranged fixtures. dateFrom/dateTo are
// optional YYYY-MM-DD bounds; malformed values are caller errors.
func (h *Handler) Fixtures(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	dateFrom := r.URL.Query().Get("dateFrom")
	dateTo := r.URL.Query().Get("dateTo")
	for _, date := range []string{dateFrom, dateTo} {
		if date == "" {
			continue
		}
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
	}

	if !h.matches.Configured() {
		writeJSON(w, nethttp.StatusOK, notConfiguredMatches(), h.logger)
		return
	}

	fixtures, err := h.matches.Fixtures(r.Context(), dateFrom, dateTo)
	if err != nil {
		status, env := failedMatches(err, "Unable to load fixtures")
		logger.Warn("fixtures fetch failed",
			slog.String(logging.FieldDate, dateFrom), "err", err)
		writeJSON(w, status, env, h.logger)
		return
	}

	env := matchesEnvelope{
		Success:    true,
		Configured: true,
		Matches:    fixtures,
		Count:      len(fixtures),
	}
	if len(fixtures) == 0 {
		env.Message = "No fixtures found"
	}
	logger.Info("fixtures served", slog.Int(logging.FieldCount, len(fixtures)))
	writeJSON(w, nethttp.StatusOK, env, h.logger)
}

// Standings returns the league table for /standings/{competitionId}.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	idPart := strings.TrimPrefix(r.URL.Path, "/standings/")
	idPart = strings.TrimSuffix(idPart, "/")
	competitionID, err := strconv.Atoi(idPart)
	if err != nil || competitionID <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid competition id", h.logger)
		return
	}

	if !h.standings.Configured() {
		writeJSON(w, nethttp.StatusOK, standingsEnvelope{
			Success:       true,
			Configured:    false,
			Standings:     []domain.Standing{},
			CompetitionID: competitionID,
			Message:       "API key not configured",
		}, h.logger)
		return
	}

	rows, err := h.standings.Table(r.Context(), competitionID)
	if err != nil {
		status, message, errText, retryAfter := classifyFailure(err, "Unable to load standings")
		logger.Warn("standings fetch failed",
			slog.Int(logging.FieldLeague, competitionID), "err", err)
		writeJSON(w, status, standingsEnvelope{
			Configured:    true,
			Standings:     []domain.Standing{},
			CompetitionID: competitionID,
			Message:       message,
			Error:         errText,
			RetryAfter:    retryAfter,
		}, h.logger)
		return
	}

	env := standingsEnvelope{
		Success:       true,
		Configured:    true,
		Standings:     rows,
		CompetitionID: competitionID,
		Count:         len(rows),
	}
	if len(rows) == 0 {
		env.Message = "No standings data available"
	}
	logger.Info("standings served",
		slog.Int(logging.FieldLeague, competitionID),
		slog.Int(logging.FieldCount, len(rows)))
	writeJSON(w, nethttp.StatusOK, env, h.logger)
}

func notConfiguredMatches() matchesEnvelope {
	return matchesEnvelope{
		Success:    true,
		Configured: false,
		Matches:    []domain.Match{},
		Message:    "API key not configured",
	}
}

func failedMatches(err error, message string) (int, matchesEnvelope) {
	status, msg, errText, retryAfter := classifyFailure(err, message)
	return status, matchesEnvelope{
		Configured: true,
		Matches:    []domain.Match{},
		Message:    msg,
		Error:      errText,
		RetryAfter: retryAfter,
	}
}

// classifyFailure maps service errors onto the envelope conventions:
// rate limits become HTTP 429 with a retry-after hint, everything else
// stays HTTP 200 with success=false.
func classifyFailure(err error, message string) (status int, msg, errText string, retryAfter int) {
	if rl, ok := upstream.AsRateLimitError(err); ok {
		retryAfter = defaultRetryAfterSeconds
		if rl.RetryAfter > 0 {
			retryAfter = int(rl.RetryAfter.Seconds())
		}
		return nethttp.StatusTooManyRequests, "Rate limit exceeded. Please try again shortly.", err.Error(), retryAfter
	}
	if containsRateLimitMarker(err) {
		return nethttp.StatusTooManyRequests, "Rate limit exceeded. Please try again shortly.", err.Error(), defaultRetryAfterSeconds
	}
	if upstream.IsTimeout(err) {
		return nethttp.StatusOK, "Request timed out. Please try again.", err.Error(), 0
	}
	return nethttp.StatusOK, message, "Data temporarily unavailable", 0
}

func containsRateLimitMarker(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "Rate limit")
}
