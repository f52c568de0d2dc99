package config

const (
	// EnvOpenAIAPIKey is exported so the missing-credential error can name the
	// variable the operator has to set.
	EnvOpenAIAPIKey = "OPENAI_API_KEY"

	envOpenAIBaseURL = "OPENAI_BASE_URL"
	envOpenAIModel   = "OPENAI_MODEL"

	defaultOpenAIModel = "gpt-4o-mini"
)

// OpenAIConfig controls the chat-completion service used for scouting
// narratives.
type OpenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

func loadOpenAI() OpenAIConfig {
	return OpenAIConfig{
		BaseURL: envOrDefault(envOpenAIBaseURL, ""),
		APIKey:  envOrDefault(EnvOpenAIAPIKey, ""),
		Model:   envOrDefault(envOpenAIModel, defaultOpenAIModel),
	}
}
