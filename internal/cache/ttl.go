package cache

import (
	"strings"
	"time"
)

// TTLs per upstream endpoint category. Live data turns over quickly,
// historical and season data barely changes.
const (
	TTLLive        = 30 * time.Second
	TTLDayEvents   = 5 * time.Minute
	TTLLeagueRange = 10 * time.Minute
	TTLTable       = 15 * time.Minute
	TTLSeasons     = 24 * time.Hour
	TTLDefault     = 2 * time.Minute
)

type ttlRule struct {
	fragments []string
	ttl       time.Duration
}

// Ordered: first matching rule wins.
var ttlRules = []ttlRule{
	{fragments: []string{"livescore", "inplay", "live"}, ttl: TTLLive},
	{fragments: []string{"eventsday.php"}, ttl: TTLDayEvents},
	{fragments: []string{"eventspastleague.php", "eventsnextleague.php"}, ttl: TTLLeagueRange},
	{fragments: []string{"lookuptable.php"}, ttl: TTLTable},
	{fragments: []string{"search_all_seasons.php"}, ttl: TTLSeasons},
}

// TTLForEndpoint picks the cache TTL for an upstream endpoint path.
func TTLForEndpoint(endpoint string) time.Duration {
	lower := strings.ToLower(endpoint)
	for _, rule := range ttlRules {
		for _, frag := range rule.fragments {
			if strings.Contains(lower, frag) {
				return rule.ttl
			}
		}
	}
	return TTLDefault
}
