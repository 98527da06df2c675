// Package standings exposes league table retrieval over a pluggable
// upstream provider.
package standings

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/upstream"
)

// Provider supplies league table data from an upstream source.
type Provider interface {
	Configured() bool
	Standings(ctx context.Context, competitionID int) ([]domain.Standing, error)
}

const standingsDeadline = 8 * time.Second

// Service answers standings queries. The upstream client already
// caches table responses, so no payload cache sits here.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService constructs a Service around a provider.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Configured reports whether the underlying provider has credentials.
func (s *Service) Configured() bool { return s.provider.Configured() }

// Table returns the league table for a competition. An empty table is
// not an error; it means no season data was found.
func (s *Service) Table(ctx context.Context, competitionID int) ([]domain.Standing, error) {
	opCtx, cancel := context.WithTimeout(ctx, standingsDeadline)
	defer cancel()

	rows, err := s.provider.Standings(opCtx, competitionID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, &upstream.TimeoutError{After: standingsDeadline}
		}
		return nil, err
	}
	return rows, nil
}
