package matches

import (
	"context"
	"errors"
	"testing"

	"womens-soccer-service/internal/cache"
	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/teststubs"
	"womens-soccer-service/internal/upstream"
)

func intPtr(n int) *int { return &n }

func TestLiveFiltersToInProgressStatuses(t *testing.T) {
	provider := &teststubs.StubProvider{
		ConfiguredValue: true,
		Live: []domain.Match{
			{ID: 1, Status: domain.StatusLive, Minute: intPtr(60)},
			{ID: 2, Status: domain.StatusFinished},
			{ID: 3, Status: domain.StatusPaused},
			{ID: 4, Status: domain.StatusScheduled},
			{ID: 5, Status: domain.StatusInPlay},
		},
	}
	svc := NewService(provider, cache.NewStore(), nil)

	live, err := svc.Live(context.Background())
	if err != nil {
		t.Fatalf("Live failed: %v", err)
	}
	if len(live) != 3 {
		t.Fatalf("expected 3 in-progress matches, got %d", len(live))
	}
	for _, m := range live {
		if !m.Status.IsLive() {
			t.Fatalf("non-live match leaked: %+v", m)
		}
	}
}

func TestLiveCachesPayload(t *testing.T) {
	provider := &teststubs.StubProvider{
		ConfiguredValue: true,
		Live:            []domain.Match{{ID: 1, Status: domain.StatusLive}},
	}
	svc := NewService(provider, cache.NewStore(), nil)

	if _, err := svc.Live(context.Background()); err != nil {
		t.Fatalf("first Live failed: %v", err)
	}
	if _, err := svc.Live(context.Background()); err != nil {
		t.Fatalf("second Live failed: %v", err)
	}
	if got := provider.LiveCalls.Load(); got != 1 {
		t.Fatalf("expected second call served from cache, provider called %d times", got)
	}
}

func TestFixturesCachedPerRange(t *testing.T) {
	provider := &teststubs.StubProvider{
		ConfiguredValue: true,
		Upcoming:        []domain.Match{{ID: 1, Status: domain.StatusScheduled}},
	}
	svc := NewService(provider, cache.NewStore(), nil)

	ctx := context.Background()
	if _, err := svc.Fixtures(ctx, "2025-03-01", "2025-03-02"); err != nil {
		t.Fatalf("Fixtures failed: %v", err)
	}
	if _, err := svc.Fixtures(ctx, "2025-03-01", "2025-03-02"); err != nil {
		t.Fatalf("repeat Fixtures failed: %v", err)
	}
	if got := provider.FixtureCalls.Load(); got != 1 {
		t.Fatalf("expected repeated range served from cache, got %d calls", got)
	}

	if _, err := svc.Fixtures(ctx, "2025-03-03", "2025-03-04"); err != nil {
		t.Fatalf("second range failed: %v", err)
	}
	if got := provider.FixtureCalls.Load(); got != 2 {
		t.Fatalf("a new range must reach the provider, got %d calls", got)
	}
	if provider.LastDateFrom != "2025-03-03" || provider.LastDateTo != "2025-03-04" {
		t.Fatalf("range not forwarded: %s..%s", provider.LastDateFrom, provider.LastDateTo)
	}
}

func TestLiveMapsDeadlineToTimeoutError(t *testing.T) {
	provider := &teststubs.StubProvider{
		ConfiguredValue: true,
		Err:             context.DeadlineExceeded,
	}
	svc := NewService(provider, cache.NewStore(), nil)

	_, err := svc.Live(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !upstream.IsTimeout(err) {
		t.Fatalf("expected timeout error category, got %T %v", err, err)
	}
}

func TestLivePassesThroughUpstreamErrors(t *testing.T) {
	rlErr := &upstream.RateLimitError{StatusCode: 429}
	provider := &teststubs.StubProvider{ConfiguredValue: true, Err: rlErr}
	svc := NewService(provider, cache.NewStore(), nil)

	_, err := svc.Live(context.Background())
	if !errors.Is(err, rlErr) {
		t.Fatalf("expected rate limit error passthrough, got %v", err)
	}
}

func TestConfiguredDelegates(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{ConfiguredValue: false}, cache.NewStore(), nil)
	if svc.Configured() {
		t.Fatalf("expected not configured")
	}
}
