package config

const (
	envEspnBaseURL = "ESPN_BASE_URL"

	// The college-football site API is public; no credential is required.
	defaultEspnBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/college-football"
)

// ESPNConfig controls how we talk to the ESPN site API.
type ESPNConfig struct {
	BaseURL string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envEspnBaseURL, defaultEspnBaseURL),
	}
}
