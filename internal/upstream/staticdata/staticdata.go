// Package staticdata serves a fixed data set in the canonical shapes,
// useful for local development and for running without upstream access.
package staticdata

import (
	"context"
	"time"

	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/timeutil"
)

// Provider returns a deterministic set of matches and standings.
type Provider struct {
	now func() time.Time
}

// New creates a static provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// NewWithClock creates a static provider with an injectable clock.
func NewWithClock(now func() time.Time) *Provider {
	if now == nil {
		now = time.Now
	}
	return &Provider{now: now}
}

// Configured always reports true; the static set needs no key.
func (p *Provider) Configured() bool { return true }

// LiveMatches returns one in-play match and one recent result.
func (p *Provider) LiveMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	now := p.now().UTC().Truncate(time.Minute)
	minute := 63
	return []domain.Match{
		{
			ID:       900001,
			HomeTeam: domain.Team{ID: 134922, Name: "Portland Thorns", ShortName: "POT", Crest: "https://r2.thesportsdb.com/images/media/team/badge/portland-thorns.png"},
			AwayTeam: domain.Team{ID: 134923, Name: "OL Reign", ShortName: "OLR", Crest: "https://r2.thesportsdb.com/images/media/team/badge/ol-reign.png"},
			Score: domain.Score{
				FullTime: domain.ScorePair{Home: intPtr(1), Away: intPtr(1)},
				HalfTime: domain.ScorePair{Home: intPtr(0), Away: intPtr(1)},
			},
			Status:      domain.StatusLive,
			Minute:      &minute,
			Competition: domain.Competition{ID: 4521, Name: "NWSL", Emblem: "https://r2.thesportsdb.com/images/media/league/badge/nwsl.png"},
			UTCDate:     now.Add(-65 * time.Minute).Format(time.RFC3339),
			Venue:       "Providence Park",
		},
		{
			ID:       900002,
			HomeTeam: domain.Team{ID: 134924, Name: "Chelsea Women", ShortName: "CHW", Crest: "https://r2.thesportsdb.com/images/media/team/badge/chelsea-women.png"},
			AwayTeam: domain.Team{ID: 134925, Name: "Arsenal Women", ShortName: "ARW", Crest: "https://r2.thesportsdb.com/images/media/team/badge/arsenal-women.png"},
			Score: domain.Score{
				FullTime: domain.ScorePair{Home: intPtr(2), Away: intPtr(0)},
				HalfTime: domain.ScorePair{Home: intPtr(1), Away: intPtr(0)},
			},
			Status:      domain.StatusFinished,
			Competition: domain.Competition{ID: 4849, Name: "WSL", Emblem: "https://r2.thesportsdb.com/images/media/league/badge/wsl.png"},
			UTCDate:     now.Add(-26 * time.Hour).Format(time.RFC3339),
			Venue:       "Kingsmeadow",
		},
	}, nil
}

// Fixtures returns two scheduled matches inside the requested range
// when one is given, else relative to today.
func (p *Provider) Fixtures(ctx context.Context, dateFrom, dateTo string) ([]domain.Match, error) {
	_ = ctx
	start := p.now().UTC().Truncate(time.Hour)
	if dateFrom != "" {
		if parsed, err := timeutil.ParseDate(dateFrom); err == nil {
			start = parsed.UTC().Add(18 * time.Hour)
		}
	}
	_ = dateTo

	return []domain.Match{
		{
			ID:          900101,
			HomeTeam:    domain.Team{ID: 134926, Name: "Barcelona Femení", ShortName: "BAF", Crest: "https://r2.thesportsdb.com/images/media/team/badge/barcelona-femeni.png"},
			AwayTeam:    domain.Team{ID: 134927, Name: "Real Madrid Femenino", ShortName: "REM", Crest: "https://r2.thesportsdb.com/images/media/team/badge/real-madrid-femenino.png"},
			Status:      domain.StatusScheduled,
			Competition: domain.Competition{ID: 5013, Name: "Liga F", Emblem: "https://r2.thesportsdb.com/images/media/league/badge/liga-f.png"},
			UTCDate:     start.Format(time.RFC3339),
			Venue:       "Estadi Johan Cruyff",
		},
		{
			ID:          900102,
			HomeTeam:    domain.Team{ID: 134928, Name: "Lyon Féminin", ShortName: "LYF", Crest: "https://r2.thesportsdb.com/images/media/team/badge/lyon-feminin.png"},
			AwayTeam:    domain.Team{ID: 134929, Name: "PSG Féminine", ShortName: "PSF", Crest: "https://r2.thesportsdb.com/images/media/team/badge/psg-feminine.png"},
			Status:      domain.StatusScheduled,
			Competition: domain.Competition{ID: 5010, Name: "Division 1 Féminine", Emblem: "https://r2.thesportsdb.com/images/media/league/badge/d1-feminine.png"},
			UTCDate:     start.Add(3 * time.Hour).Format(time.RFC3339),
			Venue:       "Groupama Stadium",
		},
	}, nil
}

// Standings returns a small consistent table for any competition.
func (p *Provider) Standings(ctx context.Context, competitionID int) ([]domain.Standing, error) {
	_ = ctx
	return []domain.Standing{
		standing(1, 134930, "Kansas City Current", 20, 14, 4, 2, 44, 13),
		standing(2, 134931, "Orlando Pride", 20, 13, 5, 2, 38, 15),
		standing(3, 134932, "Washington Spirit", 20, 12, 3, 5, 35, 22),
		standing(4, 134933, "Gotham FC", 20, 10, 6, 4, 29, 18),
	}, nil
}

func standing(pos, teamID int, name string, played, won, draw, lost, goalsFor, goalsAgainst int) domain.Standing {
	return domain.Standing{
		Position: pos,
		Team: domain.Team{
			ID:        teamID,
			Name:      name,
			ShortName: shortCode(name),
			Crest:     "https://r2.thesportsdb.com/images/media/team/badge/default.png",
		},
		PlayedGames:    played,
		Won:            won,
		Draw:           draw,
		Lost:           lost,
		Points:         won*3 + draw,
		GoalsFor:       goalsFor,
		GoalsAgainst:   goalsAgainst,
		GoalDifference: goalsFor - goalsAgainst,
	}
}

func shortCode(name string) string {
	if len(name) < 3 {
		return name
	}
	return name[:3]
}

func intPtr(n int) *int { return &n }
