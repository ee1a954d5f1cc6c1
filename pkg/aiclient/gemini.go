package aiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient writes stories with Gemini. The text models it wraps cannot
// produce images, so GenerateImage always fails with a GenerationError.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewGeminiClient(ctx context.Context, cfg Config, logger *zap.Logger) (*GeminiClient, error) {
	model := cfg.GeminiModel
	if model == "" {
		model = defaultGeminiModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger.Named("aiclient.gemini"),
	}, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func (c *GeminiClient) GenerateImage(_ context.Context, _, _ string) (string, error) {
	err := newGenerationError(ModalityImage, 0, "image generation is not supported by the gemini provider")
	observe("gemini", ModalityImage, time.Now(), err)
	return "", err
}

func (c *GeminiClient) GenerateStory(ctx context.Context, prompt, _ string) (string, error) {
	start := time.Now()
	text, err := c.generateStory(ctx, prompt)
	observe("gemini", ModalityStory, start, err)
	return text, err
}

func (c *GeminiClient) generateStory(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.8)
	m.SetMaxOutputTokens(256)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.logger.Warn("gemini request failed", zap.Error(err))
		return "", mapGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &ExtractionError{Modality: ModalityStory, Reason: "no content generated"}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	raw, _ := json.Marshal(sb.String())
	payload, err := ClassifyStoryPayload(raw)
	if err != nil {
		return "", err
	}
	return payload.Value, nil
}

func mapGeminiError(err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		if gErr.Code == http.StatusUnauthorized {
			return errors.Join(ErrUnauthorized, err)
		}
		return newGenerationError(ModalityStory, gErr.Code, gErr.Message)
	}
	return newGenerationError(ModalityStory, 0, unavailableMessage)
}
