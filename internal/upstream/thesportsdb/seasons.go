package thesportsdb

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strconv"

	"womens-soccer-service/internal/domain"
	"womens-soccer-service/internal/logging"
)

var seasonPattern = regexp.MustCompile(`^(\d{4})(?:-(\d{4}))?$`)

// Standings resolves the league table for a competition. The correct
// season string is unknown up front, so candidates are gathered from
// the upstream season list plus constructed formats, ranked, and tried
// in order until a non-empty table appears. No table for any candidate
// is "no data", not an error.
func (c *Client) Standings(ctx context.Context, competitionID int) ([]domain.Standing, error) {
	now := c.now()
	year := now.Year()
	month := int(now.Month())

	candidates := make([]string, 0, 8)
	if seasons, err := c.seasonList(ctx, competitionID); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logging.Warn(c.logger, "season list unavailable, trying common formats",
			slog.Int(logging.FieldLeague, competitionID),
			slog.String("error", err.Error()),
		)
	} else {
		candidates = append(candidates, seasons...)
	}
	candidates = append(candidates, commonSeasonFormats(year, month)...)
	candidates = dedupeSeasons(candidates)

	sort.SliceStable(candidates, func(i, j int) bool {
		return scoreSeason(candidates[i], year) > scoreSeason(candidates[j], year)
	})

	for _, season := range candidates {
		rows, err := c.leagueTable(ctx, competitionID, season)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.Warn(c.logger, "standings lookup failed",
				slog.Int(logging.FieldLeague, competitionID),
				slog.String(logging.FieldSeason, season),
				slog.String("error", err.Error()),
			)
			continue
		}
		if len(rows) == 0 {
			continue
		}
		standings := make([]domain.Standing, 0, len(rows))
		for _, row := range rows {
			standings = append(standings, mapStanding(row))
		}
		logging.Info(c.logger, "standings resolved",
			slog.Int(logging.FieldLeague, competitionID),
			slog.String(logging.FieldSeason, season),
			slog.Int(logging.FieldCount, len(standings)),
		)
		return standings, nil
	}

	return []domain.Standing{}, nil
}

// commonSeasonFormats constructs candidate strings covering single-year
// and split-year league calendars. From August through November the
// prior split season may still be the one the upstream serves.
func commonSeasonFormats(year, month int) []string {
	formats := []string{
		strconv.Itoa(year),
		strconv.Itoa(year - 1),
		fmtSplitSeason(year-1, year),
		fmtSplitSeason(year, year+1),
	}
	if month >= 8 && month <= 11 {
		formats = append(formats, fmtSplitSeason(year-1, year))
	}
	return formats
}

func fmtSplitSeason(start, end int) string {
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

func dedupeSeasons(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, s := range candidates {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// scoreSeason ranks candidates: seasons containing the current year
// first, newer seasons ahead of older ones. Unparsable strings rank
// last.
func scoreSeason(season string, year int) int {
	m := seasonPattern.FindStringSubmatch(season)
	if m == nil {
		return 0
	}
	start, _ := strconv.Atoi(m[1])
	end := start
	if m[2] != "" {
		end, _ = strconv.Atoi(m[2])
	}
	score := 0
	if start == year || end == year {
		score += 100
	}
	score += start*2 + end
	return score
}
