package thesportsdb

import "time"

const (
	providerName = "thesportsdb"

	defaultBaseURLV1   = "https://www.thesportsdb.com/api/v1/json"
	defaultBaseURLV2   = "https://www.thesportsdb.com/api/v2/json"
	defaultHTTPTimeout = 15 * time.Second

	// freeTierKey is the documented anonymous key; a configured key
	// equal to it still means "not premium".
	freeTierKey = "3"

	defaultMaxConcurrent = 2
	defaultMaxRetries    = 2
	// Fixed pause inserted before every upstream request to reduce
	// burst pressure on the shared quota.
	defaultRequestDelay = 1 * time.Second

	// maxFixtureDays bounds the per-day fan-out of ranged fixture
	// queries.
	maxFixtureDays = 14

	// liveMatchCap bounds how many matches the live facade returns.
	liveMatchCap = 15
)
