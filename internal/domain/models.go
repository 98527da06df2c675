package domain

// MatchStatus mirrors the shared contract for match lifecycle states.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusLive      MatchStatus = "LIVE"
	StatusInPlay    MatchStatus = "IN_PLAY"
	StatusPaused    MatchStatus = "PAUSED"
	StatusFinished  MatchStatus = "FINISHED"
	StatusPostponed MatchStatus = "POSTPONED"
	StatusCancelled MatchStatus = "CANCELLED"
)

// IsLive reports whether the status counts as an in-progress match.
func (s MatchStatus) IsLive() bool {
	return s == StatusLive || s == StatusInPlay || s == StatusPaused
}

// Team is the normalized team shape embedded in matches and standings.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Crest     string `json:"crest"`
}

// ScorePair holds home/away values; nil means not yet played or unknown.
type ScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Score carries full-time and half-time scorelines.
type Score struct {
	FullTime ScorePair `json:"fullTime"`
	HalfTime ScorePair `json:"halfTime"`
}

// Competition identifies the league a match belongs to.
type Competition struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Emblem string `json:"emblem"`
}

// Match is the canonical match shape exposed by the service.
type Match struct {
	ID          int         `json:"id"`
	HomeTeam    Team        `json:"homeTeam"`
	AwayTeam    Team        `json:"awayTeam"`
	Score       Score       `json:"score"`
	Status      MatchStatus `json:"status"`
	Minute      *int        `json:"minute"`
	Competition Competition `json:"competition"`
	UTCDate     string      `json:"utcDate"`
	Venue       string      `json:"venue"`
}

// Standing is one row of a league table.
type Standing struct {
	Position       int  `json:"position"`
	Team           Team `json:"team"`
	PlayedGames    int  `json:"playedGames"`
	Won            int  `json:"won"`
	Draw           int  `json:"draw"`
	Lost           int  `json:"lost"`
	Points         int  `json:"points"`
	GoalsFor       int  `json:"goalsFor"`
	GoalsAgainst   int  `json:"goalsAgainst"`
	GoalDifference int  `json:"goalDifference"`
}
