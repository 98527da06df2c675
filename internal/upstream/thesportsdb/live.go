package thesportsdb

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/logging"
	"womens-soccer-service/internal/timeutil"
)

// LiveMatches returns in-progress matches plus recent results for
// context. With premium access it reads the V2 live scoreboard first;
// otherwise, or when the scoreboard is empty, it derives liveness from
// the V1 day-schedule and next/past fixture endpoints.
func (c *Client) LiveMatches(ctx context.Context) ([]domain.Match, error) {
	if c.premium() {
		matches, err := c.liveMatchesV2(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.Warn(c.logger, "live scoreboard unavailable, falling back",
				slog.String("error", err.Error()),
			)
		} else if len(matches) > 0 {
			return matches, nil
		}
	}
	return c.liveMatchesV1(ctx)
}

func (c *Client) liveMatchesV2(ctx context.Context) ([]domain.Match, error) {
	events, err := c.liveScoreboard(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}

	liveEvents := make([]rawEvent, 0, len(events))
	for _, ev := range events {
		if hasLiveMarkers(ev) {
			liveEvents = append(liveEvents, ev)
		}
	}

	live := c.normalizeAll(liveEvents)
	if len(live) > 0 {
		// Supplement the scoreboard with recent results for context.
		recent, recentErr := c.recentMatches(ctx, 10)
		if recentErr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.Warn(c.logger, "recent results fetch failed",
				slog.String("error", recentErr.Error()),
			)
		}
		merged := dedupeMatches(append(live, recent...))
		return capMatches(merged, liveMatchCap), nil
	}

	// Scoreboard had events but none live; return them all.
	return capMatches(c.normalizeAll(events), liveMatchCap), nil
}

// hasLiveMarkers mirrors the scoreboard pre-filter: status or progress
// text indicating in-play.
func hasLiveMarkers(ev rawEvent) bool {
	status := strings.ToLower(ev.Status)
	progress := strings.ToLower(ev.Progress)
	return strings.Contains(status, "live") ||
		strings.Contains(status, "play") ||
		strings.Contains(progress, "'") ||
		strings.Contains(progress, "min")
}

// liveMatchesV1 derives a live view from V1 endpoints: today's events,
// recent and upcoming fixtures per tracked league, and a live-status
// scan of upcoming WSL fixtures (the live API omits women's matches).
func (c *Client) liveMatchesV1(ctx context.Context) ([]domain.Match, error) {
	all := make([]domain.Match, 0, 32)
	today := timeutil.FormatDate(c.now().UTC())

	if events, err := c.eventsOnDay(ctx, today, 0); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logging.Warn(c.logger, "today's events fetch failed", slog.String("error", err.Error()))
	} else {
		all = append(all, capMatches(c.normalizeAll(events), 10)...)
	}

	recent, err := c.recentMatches(ctx, 8)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	} else {
		all = append(all, recent...)
	}

	if upcoming, err := c.nextLeagueEvents(ctx, LeagueNWSL); err == nil {
		all = append(all, capMatches(c.normalizeAll(upcoming), 5)...)
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	for _, leagueID := range []int{LeagueWSL, LeagueFrauenBundes} {
		past, err := c.pastLeagueEvents(ctx, leagueID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		all = append(all, capMatches(c.normalizeAll(past), 3)...)
	}

	if wslToday, err := c.eventsOnDay(ctx, today, LeagueWSL); err == nil {
		all = append(all, capMatches(c.normalizeAll(wslToday), 5)...)
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if wslUpcoming, err := c.nextLeagueEvents(ctx, LeagueWSL); err == nil {
		liveOnes := make([]rawEvent, 0, len(wslUpcoming))
		for _, ev := range wslUpcoming {
			if deriveStatus(ev.Status, ev.Progress) == domain.StatusLive {
				liveOnes = append(liveOnes, ev)
			}
		}
		all = append(all, capMatches(c.normalizeAll(liveOnes), 5)...)
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	unique := dedupeMatches(all)
	sortLiveFirst(unique)
	return capMatches(unique, liveMatchCap), nil
}

// recentMatches pulls the latest NWSL results to pad live views.
func (c *Client) recentMatches(ctx context.Context, limit int) ([]domain.Match, error) {
	events, err := c.pastLeagueEvents(ctx, LeagueNWSL)
	if err != nil {
		return nil, err
	}
	if len(events) > limit {
		events = events[:limit]
	}
	return c.normalizeAll(events), nil
}

// sortLiveFirst orders live matches ahead of everything else, then
// most recent first.
func sortLiveFirst(matches []domain.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		iLive := matches[i].Status == domain.StatusLive || matches[i].Status == domain.StatusInPlay
		jLive := matches[j].Status == domain.StatusLive || matches[j].Status == domain.StatusInPlay
		if iLive != jLive {
			return iLive
		}
		return matches[i].UTCDate > matches[j].UTCDate
	})
}

func capMatches(matches []domain.Match, limit int) []domain.Match {
	if len(matches) > limit {
		return matches[:limit]
	}
	return matches
}
