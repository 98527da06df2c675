package thesportsdb

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
	"time"

	"womens-soccer-service/internal/domain"
)

const (
	defaultTeamBadge   = "https://r2.thesportsdb.com/images/media/team/badge/default.png"
	defaultLeagueBadge = "https://r2.thesportsdb.com/images/media/league/badge/default.png"
)

var minutePattern = regexp.MustCompile(`(\d+)`)
var liveMinuteMarker = regexp.MustCompile(`\d+'`)

// statusRule pairs a predicate over (status, progress) with a result.
// Rules are evaluated top to bottom; order encodes precedence, so a
// record reading both "Match Finished" and "45'" resolves to FINISHED.
type statusRule struct {
	matches func(status, progress string) bool
	result  domain.MatchStatus
}

var statusRules = []statusRule{
	{
		result: domain.StatusFinished,
		matches: func(status, progress string) bool {
			return containsAny(status, "finished", "final", "full time", "ft", "aet", "after extra time", "pen", "penalties") ||
				strings.Contains(progress, "ft")
		},
	},
	{
		result: domain.StatusPostponed,
		matches: func(status, _ string) bool {
			return strings.Contains(status, "postponed")
		},
	},
	{
		result: domain.StatusCancelled,
		matches: func(status, _ string) bool {
			return strings.Contains(status, "cancelled")
		},
	},
	{
		result: domain.StatusPaused,
		matches: func(status, progress string) bool {
			return containsAny(status, "halftime", "half time", "ht") ||
				strings.Contains(progress, "ht")
		},
	},
	{
		result: domain.StatusLive,
		matches: func(status, progress string) bool {
			if containsAny(status, "live", "in play", "playing", "first half", "second half") {
				return true
			}
			if status == "1h" || status == "2h" {
				return true
			}
			return containsAny(progress, "'", "min", "1h", "2h") || liveMinuteMarker.MatchString(progress)
		},
	},
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// deriveStatus classifies free-text status/progress fields by the
// ordered rule table.
func deriveStatus(status, progress string) domain.MatchStatus {
	statusLower := strings.ToLower(status)
	progressLower := strings.ToLower(progress)
	for _, rule := range statusRules {
		if rule.matches(statusLower, progressLower) {
			return rule.result
		}
	}
	return domain.StatusScheduled
}

// parseScore tolerates null, numeric, or numeric-string fields;
// unparsable values yield nil, never an error.
func parseScore(raw flexString) *int {
	if n, ok := raw.Int(); ok {
		return &n
	}
	return nil
}

// parseMinute pulls the first run of digits out of a free-text
// progress field ("45'", "90+3", "HT").
func parseMinute(progress string, round flexString) *int {
	source := progress
	if source == "" {
		source = round.String()
	}
	if source == "" {
		return nil
	}
	match := minutePattern.FindStringSubmatch(source)
	if match == nil {
		return nil
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &n
}

// shortName synthesizes a short team code when upstream omits one.
func shortName(fullName string) string {
	if fullName == "" {
		return "TBD"
	}
	if strings.Contains(fullName, "FC") {
		return upperPrefix(strings.ReplaceAll(fullName, " FC", ""), 3)
	}
	if strings.Contains(fullName, "City") {
		return upperPrefix(fullName, 3)
	}
	words := strings.Fields(fullName)
	if len(words) >= 2 {
		return strings.ToUpper(prefix(words[0], 2) + prefix(words[1], 1))
	}
	return upperPrefix(fullName, 3)
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

func upperPrefix(s string, n int) string {
	return strings.ToUpper(prefix(s, n))
}

// eventTimestampLayouts cover the formats the upstream uses for
// strTimestamp across API versions.
var eventTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// deriveUTCDate follows the documented precedence: explicit timestamp,
// then date+time, then time-only assuming today, then the current
// instant as a last resort.
func deriveUTCDate(now time.Time, timestamp, date, clock string) string {
	for _, layout := range eventTimestampLayouts {
		if ts, err := time.Parse(layout, timestamp); err == nil {
			return ts.UTC().Format(time.RFC3339)
		}
	}
	if date != "" {
		if t, ok := parseDateTime(date, clock); ok {
			return t.Format(time.RFC3339)
		}
		return now.UTC().Format(time.RFC3339)
	}
	if clock != "" {
		today := now.UTC().Format("2006-01-02")
		if t, ok := parseDateTime(today, clock); ok {
			return t.Format(time.RFC3339)
		}
	}
	return now.UTC().Format(time.RFC3339)
}

func parseDateTime(date, clock string) (time.Time, bool) {
	if clock != "" {
		for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
			if t, err := time.Parse(layout, date+" "+clock); err == nil {
				return t.UTC(), true
			}
		}
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// syntheticID derives a stable id from the matchup when upstream omits
// one. Repeated fetches of the same logical match must agree, so the
// id hashes home, away, calendar date, and league instead of random.
func syntheticID(home, away, calendarDate string, leagueID int) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s|%d", home, away, calendarDate, leagueID)
	return int(h.Sum32() & 0x7fffffff)
}

// mapEvent normalizes a raw upstream event to the canonical Match
// shape. It returns ok=false when the record is not a recognized
// women's soccer match. Pure: same input, same output.
func mapEvent(ev rawEvent, now time.Time) (domain.Match, bool) {
	if !isWomensSoccerEvent(ev) {
		return domain.Match{}, false
	}

	leagueID, _ := ev.LeagueID.Int()
	utcDate := deriveUTCDate(now, ev.Timestamp, ev.Date, ev.Time)

	homeName := ev.HomeTeam
	if homeName == "" {
		homeName = "Home Team"
	}
	awayName := ev.AwayTeam
	if awayName == "" {
		awayName = "Away Team"
	}

	id, ok := ev.EventID.Int()
	if !ok {
		id, ok = ev.AltID.Int()
	}
	if !ok {
		id = syntheticID(homeName, awayName, utcDate[:10], leagueID)
	}

	homeID, _ := ev.HomeTeamID.Int()
	awayID, _ := ev.AwayTeamID.Int()

	return domain.Match{
		ID: id,
		HomeTeam: domain.Team{
			ID:        homeID,
			Name:      homeName,
			ShortName: pickShort(ev.HomeShort, homeName),
			Crest:     pickBadge(ev.HomeTeamBadge, ev.TeamBadge),
		},
		AwayTeam: domain.Team{
			ID:        awayID,
			Name:      awayName,
			ShortName: pickShort(ev.AwayShort, awayName),
			Crest:     pickBadge(ev.AwayTeamBadge, ""),
		},
		Score: domain.Score{
			FullTime: domain.ScorePair{Home: parseScore(ev.HomeScore), Away: parseScore(ev.AwayScore)},
			HalfTime: domain.ScorePair{Home: parseScore(ev.HomeScoreHT), Away: parseScore(ev.AwayScoreHT)},
		},
		Status: deriveStatus(ev.Status, ev.Progress),
		Minute: parseMinute(ev.Progress, ev.Round),
		Competition: domain.Competition{
			ID:     leagueID,
			Name:   cleanLeagueName(ev.League),
			Emblem: pickLeagueBadge(ev.LeagueBadge),
		},
		UTCDate: utcDate,
		Venue:   pickVenue(ev.Venue),
	}, true
}

func pickShort(short, fullName string) string {
	if short != "" {
		return short
	}
	return shortName(fullName)
}

func pickBadge(badge, fallback string) string {
	if badge != "" {
		return badge
	}
	if fallback != "" {
		return fallback
	}
	return defaultTeamBadge
}

func pickLeagueBadge(badge string) string {
	if badge != "" {
		return badge
	}
	return defaultLeagueBadge
}

func pickVenue(venue string) string {
	if venue == "" {
		return "TBD"
	}
	return venue
}

// mapStanding converts one upstream table row. The upstream rank and
// tallies are trusted as-is; missing numerics default to zero.
func mapStanding(row rawTableRow) domain.Standing {
	return domain.Standing{
		Position: intOrZero(row.Rank),
		Team: domain.Team{
			ID:        intOrZero(row.TeamID),
			Name:      teamNameOrUnknown(row.Team),
			ShortName: shortName(teamNameOrUnknown(row.Team)),
			Crest:     pickBadge(row.Badge.String(), ""),
		},
		PlayedGames:    intOrZero(row.Played),
		Won:            intOrZero(row.Win),
		Draw:           intOrZero(row.Draw),
		Lost:           intOrZero(row.Loss),
		Points:         intOrZero(row.Points),
		GoalsFor:       intOrZero(row.GoalsFor),
		GoalsAgainst:   intOrZero(row.GoalsAgainst),
		GoalDifference: intOrZero(row.GoalDiff),
	}
}

func intOrZero(raw flexString) int {
	n, _ := raw.Int()
	return n
}

func teamNameOrUnknown(name string) string {
	if name == "" {
		return "Unknown Team"
	}
	return name
}
