package thesportsdb

import (
	"reflect"
	"testing"
	"time"

	"womens-soccer-service/internal/domain"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func womensEvent() rawEvent {
	return rawEvent{
		EventID:   "2052711",
		LeagueID:  "4521",
		League:    "American NWSL",
		Sport:     "Soccer",
		HomeTeam:  "Portland Thorns",
		AwayTeam:  "OL Reign",
		HomeScore: "2",
		AwayScore: "1",
		Status:    "Match Finished",
		Date:      "2025-03-01",
		Time:      "19:00:00",
		Venue:     "Providence Park",
	}
}

func TestDeriveStatusPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		status   string
		progress string
		want     domain.MatchStatus
	}{
		{"finished beats live progress", "Match Finished", "45'", domain.StatusFinished},
		{"full time", "FT", "", domain.StatusFinished},
		{"after extra time", "AET", "", domain.StatusFinished},
		{"postponed", "Postponed", "", domain.StatusPostponed},
		{"cancelled", "Cancelled", "", domain.StatusCancelled},
		{"halftime", "HT", "", domain.StatusPaused},
		{"live by status", "Live", "", domain.StatusLive},
		{"live by half", "1H", "", domain.StatusLive},
		{"live by progress minutes", "", "67'", domain.StatusLive},
		{"not started", "Not Started", "", domain.StatusScheduled},
		{"empty", "", "", domain.StatusScheduled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := deriveStatus(tc.status, tc.progress); got != tc.want {
				t.Fatalf("deriveStatus(%q, %q) = %s, want %s", tc.status, tc.progress, got, tc.want)
			}
		})
	}
}

func TestParseScoreTolerance(t *testing.T) {
	if got := parseScore("3"); got == nil || *got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := parseScore(""); got != nil {
		t.Fatalf("expected nil for empty score, got %v", got)
	}
	if got := parseScore("abc"); got != nil {
		t.Fatalf("expected nil for garbage score, got %v", got)
	}
}

func TestParseMinute(t *testing.T) {
	cases := []struct {
		progress string
		round    flexString
		want     int
		ok       bool
	}{
		{"45'", "", 45, true},
		{"90+3", "", 90, true},
		{"", "67", 67, true},
		{"HT", "", 0, false},
		{"", "", 0, false},
	}
	for _, tc := range cases {
		got := parseMinute(tc.progress, tc.round)
		if tc.ok {
			if got == nil || *got != tc.want {
				t.Fatalf("parseMinute(%q, %q): expected %d, got %v", tc.progress, tc.round, tc.want, got)
			}
			continue
		}
		if got != nil {
			t.Fatalf("parseMinute(%q, %q): expected nil, got %d", tc.progress, tc.round, *got)
		}
	}
}

func TestShortNameSynthesis(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Arsenal FC", "ARS"},
		{"Manchester City", "MAN"},
		{"Portland Thorns", "POT"},
		{"Ajax", "AJA"},
		{"", "TBD"},
	}
	for _, tc := range cases {
		if got := shortName(tc.in); got != tc.want {
			t.Fatalf("shortName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDeriveUTCDatePrecedence(t *testing.T) {
	// Explicit timestamp wins.
	got := deriveUTCDate(testNow, "2025-03-02T15:00:00Z", "2025-03-05", "12:00:00")
	if got != "2025-03-02T15:00:00Z" {
		t.Fatalf("expected timestamp to win, got %s", got)
	}

	// Date plus time.
	got = deriveUTCDate(testNow, "", "2025-03-05", "18:30:00")
	if got != "2025-03-05T18:30:00Z" {
		t.Fatalf("expected date+time, got %s", got)
	}

	// Time only assumes today.
	got = deriveUTCDate(testNow, "", "", "20:00:00")
	if got != "2025-03-01T20:00:00Z" {
		t.Fatalf("expected time-only to assume today, got %s", got)
	}

	// Nothing parsable falls back to now.
	got = deriveUTCDate(testNow, "", "", "")
	if got != testNow.Format(time.RFC3339) {
		t.Fatalf("expected fallback to now, got %s", got)
	}
}

func TestSyntheticIDDeterministic(t *testing.T) {
	a := syntheticID("Portland Thorns", "OL Reign", "2025-03-01", 4521)
	b := syntheticID("Portland Thorns", "OL Reign", "2025-03-01", 4521)
	if a != b {
		t.Fatalf("synthetic ids must be stable: %d != %d", a, b)
	}
	if a < 0 {
		t.Fatalf("synthetic id must be non-negative, got %d", a)
	}
	if c := syntheticID("Portland Thorns", "OL Reign", "2025-03-02", 4521); c == a {
		t.Fatalf("different dates should produce different ids")
	}
}

func TestMapEventIsPure(t *testing.T) {
	ev := womensEvent()
	first, ok := mapEvent(ev, testNow)
	if !ok {
		t.Fatalf("expected event to map")
	}
	second, ok := mapEvent(ev, testNow)
	if !ok {
		t.Fatalf("expected event to map twice")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("mapEvent must be pure:\n%+v\n%+v", first, second)
	}
}

func TestMapEventNormalizes(t *testing.T) {
	match, ok := mapEvent(womensEvent(), testNow)
	if !ok {
		t.Fatalf("expected event to map")
	}
	if match.ID != 2052711 {
		t.Fatalf("expected upstream id, got %d", match.ID)
	}
	if match.Competition.Name != "NWSL" {
		t.Fatalf("expected league alias NWSL, got %q", match.Competition.Name)
	}
	if match.Status != domain.StatusFinished {
		t.Fatalf("expected FINISHED, got %s", match.Status)
	}
	if match.Score.FullTime.Home == nil || *match.Score.FullTime.Home != 2 {
		t.Fatalf("expected home score 2, got %v", match.Score.FullTime.Home)
	}
	if match.UTCDate != "2025-03-01T19:00:00Z" {
		t.Fatalf("unexpected utcDate %s", match.UTCDate)
	}
	if match.HomeTeam.ShortName == "" || match.HomeTeam.Crest == "" {
		t.Fatalf("expected synthesized short name and default crest, got %+v", match.HomeTeam)
	}
}

func TestMapEventSynthesizesIDWhenMissing(t *testing.T) {
	ev := womensEvent()
	ev.EventID = ""
	ev.AltID = ""

	first, ok := mapEvent(ev, testNow)
	if !ok {
		t.Fatalf("expected event to map")
	}
	second, _ := mapEvent(ev, testNow)
	if first.ID != second.ID {
		t.Fatalf("synthetic id changed between mappings: %d != %d", first.ID, second.ID)
	}
	if first.ID <= 0 {
		t.Fatalf("expected positive synthetic id, got %d", first.ID)
	}
}

func TestMapEventRejectsMensLeague(t *testing.T) {
	ev := womensEvent()
	ev.LeagueID = "9999"
	ev.League = "Liga FPD"

	if _, ok := mapEvent(ev, testNow); ok {
		t.Fatalf("men's league event must not map")
	}
}

func TestMapStandingInvariant(t *testing.T) {
	row := rawTableRow{
		Rank:         "1",
		TeamID:       "134930",
		Team:         "Kansas City Current",
		Played:       "20",
		Win:          "14",
		Draw:         "4",
		Loss:         "2",
		Points:       "46",
		GoalsFor:     "44",
		GoalsAgainst: "13",
		GoalDiff:     "31",
	}

	s := mapStanding(row)
	if s.PlayedGames != s.Won+s.Draw+s.Lost {
		t.Fatalf("playedGames invariant broken: %d != %d+%d+%d", s.PlayedGames, s.Won, s.Draw, s.Lost)
	}
	if s.Position != 1 || s.Team.Name != "Kansas City Current" {
		t.Fatalf("unexpected standing %+v", s)
	}
	if s.GoalDifference != 31 {
		t.Fatalf("expected goal difference 31, got %d", s.GoalDifference)
	}
}
