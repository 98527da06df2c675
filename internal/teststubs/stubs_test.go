package teststubs

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"womens-soccer-service/internal/domain"
)

func TestStubProviderTracksCalls(t *testing.T) {
	boom := errors.New("boom")
	p := &StubProvider{Live: []domain.Match{{ID: 1}}, Err: boom}

	if _, err := p.LiveMatches(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected error passthrough, got %v", err)
	}
	if _, err := p.Fixtures(context.Background(), "2025-03-01", "2025-03-02"); !errors.Is(err, boom) {
		t.Fatalf("expected error passthrough, got %v", err)
	}
	if _, err := p.Standings(context.Background(), 4521); !errors.Is(err, boom) {
		t.Fatalf("expected error passthrough, got %v", err)
	}

	if p.LiveCalls.Load() != 1 || p.FixtureCalls.Load() != 1 || p.StandingCalls.Load() != 1 {
		t.Fatalf("call counters wrong: %d %d %d",
			p.LiveCalls.Load(), p.FixtureCalls.Load(), p.StandingCalls.Load())
	}
	if p.LastDateFrom != "2025-03-01" || p.LastCompetitionID != 4521 {
		t.Fatalf("arguments not recorded: %s %d", p.LastDateFrom, p.LastCompetitionID)
	}
}

func TestStubDoerScriptsResponses(t *testing.T) {
	doer := &StubDoer{
		Responses: map[string]StubResponse{
			"eventsday.php": {Body: `{"events":[]}`},
		},
		Default: StubResponse{Status: http.StatusNotFound},
	}

	req := httptest.NewRequest(http.MethodGet, "https://example.com/v1/json/3/eventsday.php?d=2025-03-01", nil)
	resp, err := doer.Do(req)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != `{"events":[]}` {
		t.Fatalf("scripted response not served: %d %s", resp.StatusCode, body)
	}

	other := httptest.NewRequest(http.MethodGet, "https://example.com/other", nil)
	resp, err = doer.Do(other)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected default response, got %d", resp.StatusCode)
	}

	if doer.Calls.Load() != 2 || len(doer.RequestURLs()) != 2 {
		t.Fatalf("request tracking wrong: %d %v", doer.Calls.Load(), doer.RequestURLs())
	}
}
