package aiclient

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	ProviderAPI    = "api"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// NewGenerator returns the backend named by cfg.Provider. An empty provider
// means the hosted generation API.
func NewGenerator(ctx context.Context, cfg Config, logger *zap.Logger) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderAPI:
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("content api base url is not configured")
		}
		return NewAPIClient(cfg, logger), nil
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai api key is not configured")
		}
		return NewOpenAIClient(cfg, logger), nil
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini api key is not configured")
		}
		client, err := NewGeminiClient(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s. Use 'api', 'openai' or 'gemini'", cfg.Provider)
	}
}
