package scout

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"cfb-scout-service/internal/config"
	"cfb-scout-service/internal/domain/players"
	"cfb-scout-service/internal/logging"
	"cfb-scout-service/internal/metrics"
	"cfb-scout-service/internal/providers"
)

const llmProviderName = "openai"

// CompletionClient is the slice of the OpenAI client the service needs.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service assembles scouting prompts from a canonical player and forwards
// them to the chat-completion API.
type Service struct {
	cfg     config.OpenAIConfig
	client  CompletionClient
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService constructs a Service. When the API key is absent the service
// still constructs; Generate reports the missing configuration per request.
func NewService(cfg config.OpenAIConfig, logger *slog.Logger, rec *metrics.Recorder) *Service {
	var client CompletionClient
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientCfg)
	}
	return &Service{cfg: cfg, client: client, logger: logger, metrics: rec}
}

// NewServiceWithClient injects a completion client, used by tests.
func NewServiceWithClient(cfg config.OpenAIConfig, client CompletionClient, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{cfg: cfg, client: client, logger: logger, metrics: rec}
}

// Request carries the player the narrative is about plus a free-text summary
// of their statistics.
type Request struct {
	Player       players.Player `json:"player"`
	StatsSummary string         `json:"statsSummary"`
}

// Generate produces the scouting narrative for the request.
func (s *Service) Generate(ctx context.Context, req Request) (string, error) {
	if s.client == nil {
		return "", &config.MissingError{Key: config.EnvOpenAIAPIKey}
	}

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req.Player, req.StatsSummary)},
		},
		Temperature: 0.7,
	})
	s.metrics.RecordNarrative(s.cfg.Model, time.Since(start), err)

	if err != nil {
		logging.Error(s.logger, "narrative generation failed", err,
			slog.String(logging.FieldProvider, llmProviderName))
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &providers.UpstreamError{
				Provider:   llmProviderName,
				StatusCode: apiErr.HTTPStatusCode,
				Message:    apiErr.Message,
			}
		}
		return "", &providers.UpstreamError{Provider: llmProviderName, Message: err.Error()}
	}

	if len(resp.Choices) == 0 {
		return "", &providers.UpstreamError{Provider: llmProviderName, Message: "completion returned no choices"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
