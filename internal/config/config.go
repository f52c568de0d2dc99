package config

// Config holds runtime configuration for the server. It is constructed once
// at process start and passed by reference; nothing reads the environment
// after Load returns.
type Config struct {
	Port     string
	Provider string
	CFBD     CFBDConfig
	ESPN     ESPNConfig
	OpenAI   OpenAIConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		CFBD:     loadCFBD(),
		ESPN:     loadESPN(),
		OpenAI:   loadOpenAI(),
		Metrics:  loadMetrics(),
	}
}
