package upstream

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"womens-soccer-service/internal/logging"
)

const (
	defaultMaxRetries      = 2
	defaultInitialBackoff  = 2 * time.Second
	defaultMaxBackoff      = 10 * time.Second
	defaultBackoffMultiple = 2.0
)

// Policy is a reusable retry policy: a retry budget, a backoff schedule,
// and a predicate deciding which errors are worth retrying. A rate-limit
// error carrying Retry-After overrides the scheduled delay.
type Policy struct {
	MaxRetries int
	NewBackOff func() backoff.BackOff
	Retryable  func(error) bool
	Logger     *slog.Logger

	// Sleep is injectable for tests; defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewPolicy returns a Policy with the default capped exponential
// schedule. maxRetries <= 0 selects the default budget.
func NewPolicy(maxRetries int, logger *slog.Logger) Policy {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return Policy{
		MaxRetries: maxRetries,
		NewBackOff: defaultBackOff,
		Retryable:  IsRetryable,
		Logger:     logger,
	}
}

func defaultBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = defaultInitialBackoff
	bo.MaxInterval = defaultMaxBackoff
	bo.Multiplier = defaultBackoffMultiple
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

// Do runs op, retrying retryable failures until the budget is spent.
// The last error is returned unwrapped so callers can inspect its type.
func (p Policy) Do(ctx context.Context, op func() error) error {
	newBackOff := p.NewBackOff
	if newBackOff == nil {
		newBackOff = defaultBackOff
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = IsRetryable
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	bo := newBackOff()
	attempt := 0
	for {
		err := op()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		attempt++
		if attempt > p.MaxRetries {
			return err
		}

		delay := bo.NextBackOff()
		if delay == backoff.Stop {
			return err
		}
		if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
			delay = rlErr.RetryAfter
		}

		logging.Warn(p.Logger, "upstream retry",
			slog.Int("attempt", attempt),
			slog.Int("max_retries", p.MaxRetries),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)

		if sleepErr := sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
