package thesportsdb

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/teststubs"
)

func TestLiveMatchesV2Scoreboard(t *testing.T) {
	scoreboard := `{"livescore":[],"events":[
		{"idEvent":"10","idLeague":"4521","strLeague":"NWSL","strSport":"Soccer",
		 "strHomeTeam":"Portland Thorns","strAwayTeam":"OL Reign",
		 "intHomeScore":"1","intAwayScore":"1","strStatus":"","strProgress":"63'",
		 "strDate":"2025-03-01","strTime":"18:00:00"}
	]}`
	recent := `{"events":[
		{"idEvent":"11","idLeague":"4521","strLeague":"NWSL","strSport":"Soccer",
		 "strHomeTeam":"Angel City","strAwayTeam":"San Diego Wave",
		 "intHomeScore":"2","intAwayScore":"0","strStatus":"Match Finished",
		 "strDate":"2025-02-27","strTime":"19:00:00"}
	]}`

	doer := &teststubs.StubDoer{
		Responses: map[string]teststubs.StubResponse{
			"livescore":            {Body: scoreboard},
			"eventspastleague.php": {Body: recent},
		},
	}
	client := newTestClient(t, doer, Config{APIKey: "premium"})

	matches, err := client.LiveMatches(context.Background())
	if err != nil {
		t.Fatalf("LiveMatches failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected live match plus recent result, got %d", len(matches))
	}
	if matches[0].Status != domain.StatusLive {
		t.Fatalf("expected scoreboard match LIVE, got %s", matches[0].Status)
	}
	if matches[0].Minute == nil || *matches[0].Minute != 63 {
		t.Fatalf("expected minute 63, got %v", matches[0].Minute)
	}

	// The scoreboard call must go to the V2 API with header auth.
	sawV2 := false
	for _, url := range doer.RequestURLs() {
		if strings.Contains(url, "/v2/json/livescore/soccer") {
			sawV2 = true
		}
	}
	if !sawV2 {
		t.Fatalf("expected a V2 scoreboard request, got %v", doer.RequestURLs())
	}
}

func TestLiveMatchesFallsBackWhenScoreboardFails(t *testing.T) {
	todays := `{"events":[
		{"idEvent":"20","idLeague":"4849","strLeague":"WSL","strSport":"Soccer",
		 "strHomeTeam":"Chelsea Women","strAwayTeam":"Arsenal Women",
		 "strStatus":"1H","intHomeScore":"1","intAwayScore":"0",
		 "strDate":"2025-03-01","strTime":"12:30:00"}
	]}`
	doer := &teststubs.StubDoer{
		Responses: map[string]teststubs.StubResponse{
			"livescore": {Status: 500, Body: `{"message":"unavailable"}`},
			"d=2025-03-01&s=Soccer": {Body: todays},
		},
		Default: teststubs.StubResponse{Body: `{"events":[]}`},
	}
	client := newTestClient(t, doer, Config{APIKey: "premium"})

	matches, err := client.LiveMatches(context.Background())
	if err != nil {
		t.Fatalf("fallback should absorb the scoreboard failure: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 fallback match, got %d", len(matches))
	}
	if matches[0].Status != domain.StatusLive {
		t.Fatalf("expected LIVE from 1H status, got %s", matches[0].Status)
	}
}

func TestLiveMatchesFreeTierUsesV1Derivation(t *testing.T) {
	doer := &teststubs.StubDoer{
		Default: teststubs.StubResponse{Body: `{"events":[]}`},
	}
	client := newTestClient(t, doer, Config{})

	if _, err := client.LiveMatches(context.Background()); err != nil {
		t.Fatalf("LiveMatches failed: %v", err)
	}
	for _, url := range doer.RequestURLs() {
		if strings.Contains(url, "/v2/") {
			t.Fatalf("free tier must not call the V2 API: %s", url)
		}
	}
}

func TestLiveMatchesCapped(t *testing.T) {
	var events []string
	for i := 0; i < 30; i++ {
		events = append(events, fmt.Sprintf(
			`{"idEvent":"%d","idLeague":"4521","strLeague":"NWSL","strSport":"Soccer",
			  "strHomeTeam":"Team %d","strAwayTeam":"Team %d",
			  "strStatus":"","strProgress":"50'","strDate":"2025-03-01","strTime":"18:00:00"}`,
			100+i, i, 100+i))
	}
	scoreboard := `{"events":[` + strings.Join(events, ",") + `]}`

	doer := &teststubs.StubDoer{
		Responses: map[string]teststubs.StubResponse{
			"livescore": {Body: scoreboard},
		},
		Default: teststubs.StubResponse{Body: `{"events":[]}`},
	}
	client := newTestClient(t, doer, Config{APIKey: "premium"})

	matches, err := client.LiveMatches(context.Background())
	if err != nil {
		t.Fatalf("LiveMatches failed: %v", err)
	}
	if len(matches) > liveMatchCap {
		t.Fatalf("expected output capped at %d, got %d", liveMatchCap, len(matches))
	}
}

func TestSortLiveFirst(t *testing.T) {
	matches := []domain.Match{
		{ID: 1, Status: domain.StatusFinished, UTCDate: "2025-03-01T10:00:00Z"},
		{ID: 2, Status: domain.StatusLive, UTCDate: "2025-03-01T09:00:00Z"},
		{ID: 3, Status: domain.StatusFinished, UTCDate: "2025-03-01T12:00:00Z"},
	}
	sortLiveFirst(matches)
	if matches[0].ID != 2 {
		t.Fatalf("live match should sort first, got id %d", matches[0].ID)
	}
	if matches[1].ID != 3 || matches[2].ID != 1 {
		t.Fatalf("non-live matches should order most recent first, got %+v", matches)
	}
}

func TestHasLiveMarkers(t *testing.T) {
	if !hasLiveMarkers(rawEvent{Status: "Live"}) {
		t.Fatalf("Live status should mark live")
	}
	if !hasLiveMarkers(rawEvent{Progress: "45'"}) {
		t.Fatalf("minute progress should mark live")
	}
	if hasLiveMarkers(rawEvent{Status: "Match Finished"}) {
		t.Fatalf("finished match should not mark live")
	}
}
