package config

const (
	// EnvCFBDAPIKey is exported so the missing-credential error can name the
	// variable the operator has to set.
	EnvCFBDAPIKey = "CFBD_API_KEY"

	envCfbdBaseURL = "CFBD_BASE_URL"

	defaultCfbdBaseURL = "https://api.collegefootballdata.com"
)

// CFBDConfig controls how we talk to the CollegeFootballData API.
type CFBDConfig struct {
	BaseURL string
	APIKey  string
}

func loadCFBD() CFBDConfig {
	return CFBDConfig{
		BaseURL: envOrDefault(envCfbdBaseURL, defaultCfbdBaseURL),
		APIKey:  envOrDefault(EnvCFBDAPIKey, ""),
	}
}
