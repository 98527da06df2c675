// Package teststubs provides shared test doubles for the provider and
// HTTP transport surfaces.
package teststubs

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"womens-soccer-service/internal/domain"
)

// StubProvider is a test double for the server.Provider surface.
type StubProvider struct {
	ConfiguredValue bool
	Live            []domain.Match
	Upcoming        []domain.Match
	Table           []domain.Standing
	Err             error

	LiveCalls     atomic.Int32
	FixtureCalls  atomic.Int32
	StandingCalls atomic.Int32

	LastDateFrom      string
	LastDateTo        string
	LastCompetitionID int
}

// Configured reports the configured flag set by the test.
func (s *StubProvider) Configured() bool { return s.ConfiguredValue }

// LiveMatches returns configured matches and error while tracking calls.
func (s *StubProvider) LiveMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	s.LiveCalls.Add(1)
	return s.Live, s.Err
}

// Fixtures returns configured fixtures and error while tracking calls.
func (s *StubProvider) Fixtures(ctx context.Context, dateFrom, dateTo string) ([]domain.Match, error) {
	_ = ctx
	s.FixtureCalls.Add(1)
	s.LastDateFrom = dateFrom
	s.LastDateTo = dateTo
	return s.Upcoming, s.Err
}

// Standings returns configured rows and error while tracking calls.
func (s *StubProvider) Standings(ctx context.Context, competitionID int) ([]domain.Standing, error) {
	_ = ctx
	s.StandingCalls.Add(1)
	s.LastCompetitionID = competitionID
	return s.Table, s.Err
}

// StubResponse describes one canned HTTP exchange for StubDoer.
type StubResponse struct {
	Status int
	Body   string
	Header http.Header
	Err    error
}

// StubDoer is a scripted http.Client replacement. Responses are keyed
// by a substring of the request URL; unmatched requests receive the
// Default response.
type StubDoer struct {
	mu        sync.Mutex
	Responses map[string]StubResponse
	Default   StubResponse
	Requests  []*http.Request
	Calls     atomic.Int32
}

// Do records the request and returns the scripted response.
func (s *StubDoer) Do(req *http.Request) (*http.Response, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.Requests = append(s.Requests, req)
	resp := s.Default
	for fragment, scripted := range s.Responses {
		if strings.Contains(req.URL.String(), fragment) {
			resp = scripted
			break
		}
	}
	s.mu.Unlock()

	if resp.Err != nil {
		return nil, resp.Err
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	header := resp.Header
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(resp.Body)),
	}, nil
}

// RequestURLs returns every URL seen so far, in order.
func (s *StubDoer) RequestURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	urls := make([]string, 0, len(s.Requests))
	for _, r := range s.Requests {
		urls = append(urls, r.URL.String())
	}
	return urls
}
