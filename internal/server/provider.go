package server

import (
	"context"
	"log/slog"

	"womens-soccer-service/internal/config"
	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/metrics"
	"womens-soccer-service/internal/upstream/staticdata"
	"womens-soccer-service/internal/upstream/thesportsdb"
)

// Provider is the full upstream surface the server wires into the
// application services.
type Provider interface {
	Configured() bool
	LiveMatches(ctx context.Context) ([]domain.Match, error)
	Fixtures(ctx context.Context, dateFrom, dateTo string) ([]domain.Match, error)
	Standings(ctx context.Context, competitionID int) ([]domain.Standing, error)
}

const providerStatic = "static"

// buildProvider selects the upstream provider named in config.
// Unknown names fall back to the default live provider.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) Provider {
	if cfg.Provider == providerStatic {
		if logger != nil {
			logger.Info("using static data provider")
		}
		return staticdata.New()
	}
	return thesportsdb.NewClient(thesportsdb.Config{
		APIKey:        cfg.TheSportsDB.APIKey,
		BaseURLV1:     cfg.TheSportsDB.BaseURLV1,
		BaseURLV2:     cfg.TheSportsDB.BaseURLV2,
		MaxConcurrent: cfg.TheSportsDB.MaxConcurrent,
		MaxRetries:    cfg.TheSportsDB.MaxRetries,
		RequestDelay:  cfg.TheSportsDB.RequestDelay,
		Logger:        logger,
		Metrics:       recorder,
	})
}
