package thesportsdb

import (
	"bytes"
	"strconv"
)

// flexString tolerates upstream fields that arrive as JSON strings,
// numbers, or null. Null and absent both decode to the empty string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if trimmed[0] == '"' {
		unquoted, err := strconv.Unquote(string(trimmed))
		if err != nil {
			*f = flexString(trimmed)
			return nil
		}
		*f = flexString(unquoted)
		return nil
	}
	*f = flexString(trimmed)
	return nil
}

func (f flexString) String() string { return string(f) }

// Int parses the value as an integer, returning ok=false for empty or
// unparsable content.
func (f flexString) Int() (int, bool) {
	s := string(f)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// rawEvent is the upstream event record. Every field is optional; the
// V1 and V2 APIs populate different subsets of it.
type rawEvent struct {
	EventID       flexString `json:"idEvent"`
	AltID         flexString `json:"id"`
	LeagueID      flexString `json:"idLeague"`
	League        string     `json:"strLeague"`
	LeagueBadge   string     `json:"strLeagueBadge"`
	Sport         string     `json:"strSport"`
	HomeTeamID    flexString `json:"idHomeTeam"`
	AwayTeamID    flexString `json:"idAwayTeam"`
	HomeTeam      string     `json:"strHomeTeam"`
	AwayTeam      string     `json:"strAwayTeam"`
	HomeShort     string     `json:"strHomeTeamShort"`
	AwayShort     string     `json:"strAwayTeamShort"`
	HomeTeamBadge string     `json:"strHomeTeamBadge"`
	AwayTeamBadge string     `json:"strAwayTeamBadge"`
	TeamBadge     string     `json:"strTeamBadge"`
	HomeScore     flexString `json:"intHomeScore"`
	AwayScore     flexString `json:"intAwayScore"`
	HomeScoreHT   flexString `json:"intHomeScoreHT"`
	AwayScoreHT   flexString `json:"intAwayScoreHT"`
	Status        string     `json:"strStatus"`
	Progress      string     `json:"strProgress"`
	Round         flexString `json:"intRound"`
	Timestamp     string     `json:"strTimestamp"`
	Date          string     `json:"strDate"`
	Time          string     `json:"strTime"`
	Venue         string     `json:"strVenue"`
}

// eventsEnvelope covers the key variants the two API versions use for
// event lists.
type eventsEnvelope struct {
	Events   []rawEvent `json:"events"`
	Matches  []rawEvent `json:"matches"`
	Fixtures []rawEvent `json:"fixtures"`
}

// all returns the first populated list.
func (e eventsEnvelope) all() []rawEvent {
	switch {
	case len(e.Events) > 0:
		return e.Events
	case len(e.Matches) > 0:
		return e.Matches
	default:
		return e.Fixtures
	}
}

type rawTableRow struct {
	Rank         flexString `json:"intRank"`
	TeamID       flexString `json:"idTeam"`
	Team         string     `json:"strTeam"`
	Badge        flexString `json:"strTeamBadge"`
	Played       flexString `json:"intPlayed"`
	Win          flexString `json:"intWin"`
	Draw         flexString `json:"intDraw"`
	Loss         flexString `json:"intLoss"`
	Points       flexString `json:"intPoints"`
	GoalsFor     flexString `json:"intGoalsFor"`
	GoalsAgainst flexString `json:"intGoalsAgainst"`
	GoalDiff     flexString `json:"intGoalDifference"`
}

type tableEnvelope struct {
	Table []rawTableRow `json:"table"`
}

type rawSeason struct {
	Season string `json:"strSeason"`
}

type seasonsEnvelope struct {
	Seasons []rawSeason `json:"seasons"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   struct {
		Code flexString `json:"code"`
	} `json:"error"`
}
