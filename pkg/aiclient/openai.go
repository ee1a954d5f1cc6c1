package aiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient generates trip content directly against OpenAI. The caller's
// credential is not forwarded; the configured API key is used instead.
type OpenAIClient struct {
	client     *openai.Client
	imageModel string
	chatModel  string
	size       string
	logger     *zap.Logger
}

func NewOpenAIClient(cfg Config, logger *zap.Logger) *OpenAIClient {
	oc := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		oc.BaseURL = cfg.OpenAIBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	oc.HTTPClient = &http.Client{Timeout: timeout}

	imageModel := cfg.OpenAIImageModel
	if imageModel == "" {
		imageModel = openai.CreateImageModelDallE3
	}
	chatModel := cfg.OpenAIChatModel
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	size := cfg.ImageSize
	if size == "" {
		size = DefaultImageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OpenAIClient{
		client:     openai.NewClientWithConfig(oc),
		imageModel: imageModel,
		chatModel:  chatModel,
		size:       size,
		logger:     logger.Named("aiclient.openai"),
	}
}

func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt, _ string) (string, error) {
	start := time.Now()
	url, err := c.generateImage(ctx, prompt)
	observe("openai", ModalityImage, start, err)
	return url, err
}

func (c *OpenAIClient) GenerateStory(ctx context.Context, prompt, _ string) (string, error) {
	start := time.Now()
	text, err := c.generateStory(ctx, prompt)
	observe("openai", ModalityStory, start, err)
	return text, err
}

func (c *OpenAIClient) generateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          c.imageModel,
		N:              1,
		Size:           c.size,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		c.logger.Warn("openai image request failed", zap.Error(err))
		return "", mapOpenAIError(ModalityImage, err)
	}
	if len(resp.Data) == 0 {
		return "", &ExtractionError{Modality: ModalityImage, Reason: "no image data returned"}
	}

	d := resp.Data[0]
	if d.URL != "" {
		return d.URL, nil
	}
	// b64_json goes through the same base64 branch as the hosted API.
	raw, _ := json.Marshal(d.B64JSON)
	payload, err := ClassifyImagePayload(raw)
	if err != nil {
		return "", err
	}
	return payload.Value, nil
}

func (c *OpenAIClient) generateStory(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.logger.Warn("openai chat request failed", zap.Error(err))
		return "", mapOpenAIError(ModalityStory, err)
	}
	if len(resp.Choices) == 0 {
		return "", &ExtractionError{Modality: ModalityStory, Reason: "no choices returned"}
	}

	raw, _ := json.Marshal(resp.Choices[0].Message.Content)
	payload, err := ClassifyStoryPayload(raw)
	if err != nil {
		return "", err
	}
	c.logger.Debug("openai story generated",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens))
	return payload.Value, nil
}

func mapOpenAIError(m Modality, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized {
			return errors.Join(ErrUnauthorized, err)
		}
		return newGenerationError(m, apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusUnauthorized {
			return errors.Join(ErrUnauthorized, err)
		}
		return newGenerationError(m, reqErr.HTTPStatusCode, http.StatusText(reqErr.HTTPStatusCode))
	}
	return newGenerationError(m, 0, unavailableMessage)
}
