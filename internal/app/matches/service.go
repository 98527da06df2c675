// Package matches coordinates live and fixture match retrieval over a
// pluggable upstream provider, with response-level caching.
package matches

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"womens-soccer-service/internal/cache"
	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/upstream"
)

// Provider supplies match data from an upstream source.
type Provider interface {
	Configured() bool
	LiveMatches(ctx context.Context) ([]domain.Match, error)
	Fixtures(ctx context.Context, dateFrom, dateTo string) ([]domain.Match, error)
}

const (
	liveCacheKey     = "live:all"
	liveCacheTTL     = 2 * time.Minute
	fixturesCacheTTL = 5 * time.Minute

	liveDeadline     = 20 * time.Second
	fixturesDeadline = 20 * time.Second
)

// Service answers match queries, caching successful payloads so bursts
// of page loads do not fan out to the upstream.
type Service struct {
	provider Provider
	cache    *cache.Store
	logger   *slog.Logger
}

// NewService constructs a Service around a provider and payload cache.
func NewService(provider Provider, store *cache.Store, logger *slog.Logger) *Service {
	if store == nil {
		store = cache.NewStore()
	}
	return &Service{provider: provider, cache: store, logger: logger}
}

// Configured reports whether the underlying provider has credentials.
func (s *Service) Configured() bool { return s.provider.Configured() }

// Live returns currently in-progress matches. The provider may mix in
// recent or upcoming matches for context; only LIVE, IN_PLAY and
// PAUSED statuses are kept.
func (s *Service) Live(ctx context.Context) ([]domain.Match, error) {
	if cached, ok := s.cache.Get(liveCacheKey); ok {
		if matches, ok := cached.([]domain.Match); ok {
			return matches, nil
		}
	}

	opCtx, cancel := context.WithTimeout(ctx, liveDeadline)
	defer cancel()

	all, err := s.provider.LiveMatches(opCtx)
	if err != nil {
		return nil, classifyTimeout(ctx, err, liveDeadline)
	}
	live := filterLive(all)
	s.cache.Set(liveCacheKey, live, liveCacheTTL)
	return live, nil
}

// Fixtures returns scheduled matches, optionally bounded to a
// YYYY-MM-DD range. Results are cached per range.
func (s *Service) Fixtures(ctx context.Context, dateFrom, dateTo string) ([]domain.Match, error) {
	key := fmt.Sprintf("fixtures:%s:%s", dateFrom, dateTo)
	if cached, ok := s.cache.Get(key); ok {
		if matches, ok := cached.([]domain.Match); ok {
			return matches, nil
		}
	}

	opCtx, cancel := context.WithTimeout(ctx, fixturesDeadline)
	defer cancel()

	fixtures, err := s.provider.Fixtures(opCtx, dateFrom, dateTo)
	if err != nil {
		return nil, classifyTimeout(ctx, err, fixturesDeadline)
	}
	s.cache.Set(key, fixtures, fixturesCacheTTL)
	return fixtures, nil
}

func filterLive(all []domain.Match) []domain.Match {
	live := make([]domain.Match, 0, len(all))
	for _, m := range all {
		if m.Status.IsLive() {
			live = append(live, m)
		}
	}
	return live
}

// classifyTimeout converts an expired operation deadline into the
// timeout error category. A cancellation that originated with the
// caller passes through unchanged.
func classifyTimeout(parent context.Context, err error, after time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
		return &upstream.TimeoutError{After: after}
	}
	return err
}
