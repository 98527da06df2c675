package config

const (
	envSportsDBAPIKey = "THESPORTSDB_API_KEY"
	envSportsDBV1URL  = "THESPORTSDB_V1_BASE_URL"
	envSportsDBV2URL  = "THESPORTSDB_V2_BASE_URL"

	defaultV1BaseURL = "https://www.thesportsdb.com/api/v1/json"
	defaultV2BaseURL = "https://www.thesportsdb.com/api/v2/json"
)

// TheSportsDBConfig controls how we talk to the TheSportsDB API.
// An empty APIKey is a valid state: the client falls back to the
// anonymous free tier with reduced data.
type TheSportsDBConfig struct {
	APIKey        string
	BaseURLV1     string
	BaseURLV2     string
	MaxConcurrent int
	MaxRetries    int
	RequestDelay  Duration
}

func loadTheSportsDB() TheSportsDBConfig {
	return TheSportsDBConfig{
		APIKey:        envOrDefault(envSportsDBAPIKey, ""),
		BaseURLV1:     envOrDefault(envSportsDBV1URL, defaultV1BaseURL),
		BaseURLV2:     envOrDefault(envSportsDBV2URL, defaultV2BaseURL),
		MaxConcurrent: intEnvOrDefault(envMaxConcurrent, defaultMaxConcurrent),
		MaxRetries:    intEnvOrDefault(envMaxRetries, defaultMaxRetries),
		RequestDelay:  durationEnvOrDefault(envRequestDelay, defaultRequestDelay),
	}
}
