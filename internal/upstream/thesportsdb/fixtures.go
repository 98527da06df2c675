package thesportsdb

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/logging"
	"womens-soccer-service/internal/timeutil"
)

// Fixtures aggregates fixtures and results. With a date range it fans
// out one events-on-day query per day (capped); without one it fans
// out upcoming and past queries per tracked competition. Output is
// deduplicated, allow-list filtered, and sorted ascending by date.
func (c *Client) Fixtures(ctx context.Context, dateFrom, dateTo string) ([]domain.Match, error) {
	if dateFrom != "" || dateTo != "" {
		return c.fixturesByDateRange(ctx, dateFrom, dateTo)
	}
	return c.fixturesByLeagues(ctx)
}

func (c *Client) fixturesByDateRange(ctx context.Context, dateFrom, dateTo string) ([]domain.Match, error) {
	from, to, err := resolveRange(c.now(), dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	all := make([]domain.Match, 0, 32)
	for _, day := range timeutil.DaysBetween(from, to, maxFixtureDays) {
		events, fetchErr := c.eventsOnDay(ctx, day, 0)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// A single bad day does not sink the whole range.
			logging.Warn(c.logger, "day fetch failed",
				slog.String(logging.FieldDate, day),
				slog.String("error", fetchErr.Error()),
			)
			continue
		}
		all = append(all, c.normalizeAll(events)...)
	}

	all = dedupeMatches(all)
	all = filterByCalendarRange(all, timeutil.FormatDate(from), timeutil.FormatDate(to))
	sortByDateAscending(all)

	logging.Info(c.logger, "fixtures aggregated",
		slog.String("from", timeutil.FormatDate(from)),
		slog.String("to", timeutil.FormatDate(to)),
		slog.Int(logging.FieldCount, len(all)),
	)
	return all, nil
}

func (c *Client) fixturesByLeagues(ctx context.Context) ([]domain.Match, error) {
	all := make([]domain.Match, 0, 64)
	for _, leagueID := range trackedLeagueIDs {
		upcoming, err := c.nextLeagueEvents(ctx, leagueID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.Warn(c.logger, "upcoming fetch failed",
				slog.Int(logging.FieldLeague, leagueID),
				slog.String("error", err.Error()),
			)
		} else {
			all = append(all, c.normalizeAll(upcoming)...)
		}

		past, err := c.pastLeagueEvents(ctx, leagueID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.Warn(c.logger, "past fetch failed",
				slog.Int(logging.FieldLeague, leagueID),
				slog.String("error", err.Error()),
			)
			continue
		}
		all = append(all, c.normalizeAll(past)...)
	}

	all = dedupeMatches(all)
	sortByDateAscending(all)
	return all, nil
}

// normalizeAll maps raw events, dropping records outside the women's
// soccer allow-list.
func (c *Client) normalizeAll(events []rawEvent) []domain.Match {
	now := c.now()
	matches := make([]domain.Match, 0, len(events))
	for _, ev := range events {
		if match, ok := mapEvent(ev, now); ok {
			matches = append(matches, match)
		}
	}
	return matches
}

// resolveRange fills a missing endpoint from the other (a week ahead
// by default) and validates the YYYY-MM-DD format.
func resolveRange(now time.Time, dateFrom, dateTo string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error

	if dateFrom != "" {
		from, err = timeutil.ParseDate(dateFrom)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if dateTo != "" {
		to, err = timeutil.ParseDate(dateTo)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if dateFrom == "" && dateTo != "" {
		from = to.AddDate(0, 0, -7)
	}
	if dateTo == "" && dateFrom != "" {
		to = from.AddDate(0, 0, 7)
	}
	if dateFrom == "" && dateTo == "" {
		from = now.UTC().Truncate(24 * time.Hour)
		to = from.AddDate(0, 0, 7)
	}
	return from, to, nil
}

// dedupeMatches removes duplicate fixtures keyed by home team, away
// team, and calendar date. First occurrence wins; two distinct
// fixtures sharing that tuple collapse, a known limitation.
func dedupeMatches(matches []domain.Match) []domain.Match {
	seen := make(map[string]struct{}, len(matches))
	out := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		key := m.HomeTeam.Name + "|" + m.AwayTeam.Name + "|" + timeutil.CalendarDate(m.UTCDate)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

func filterByCalendarRange(matches []domain.Match, from, to string) []domain.Match {
	out := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		day := timeutil.CalendarDate(m.UTCDate)
		if day >= from && day <= to {
			out = append(out, m)
		}
	}
	return out
}

func sortByDateAscending(matches []domain.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].UTCDate < matches[j].UTCDate
	})
}
