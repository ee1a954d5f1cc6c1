package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	DefaultTimeout    = 120 * time.Second
	DefaultImageStyle = "photographic"
	DefaultImageSize  = "1024x1024"

	imageSessionPrefix = "travel_image_"
	storySessionPrefix = "travel_story_"

	// base64 images travel inline, so the cap is generous.
	maxResponseBytes   = 32 << 20
	maxErrorMessageLen = 256

	unavailableMessage = "content service unavailable"
)

// Config selects and configures a Generator backend.
type Config struct {
	Provider string

	BaseURL          string
	APIPrefix        string
	ImagePath        string
	StoryPath        string
	Timeout          time.Duration
	PreferredModelID string
	ImageStyle       string
	ImageSize        string

	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIImageModel string
	OpenAIChatModel  string

	GeminiAPIKey string
	GeminiModel  string
}

// APIClient talks to the hosted generation API: one endpoint for images,
// one for messages. It never retries and never caches.
type APIClient struct {
	imageURL   string
	storyURL   string
	style      string
	size       string
	modelID    string
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time
}

func NewAPIClient(cfg Config, logger *zap.Logger) *APIClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	style := cfg.ImageStyle
	if style == "" {
		style = DefaultImageStyle
	}
	size := cfg.ImageSize
	if size == "" {
		size = DefaultImageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	prefix := strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.Trim(cfg.APIPrefix, "/")
	prefix = strings.TrimRight(prefix, "/")

	return &APIClient{
		imageURL: prefix + "/" + strings.TrimLeft(cfg.ImagePath, "/"),
		storyURL: prefix + "/" + strings.TrimLeft(cfg.StoryPath, "/"),
		style:    style,
		size:     size,
		modelID:  cfg.PreferredModelID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("aiclient"),
		now:    time.Now,
	}
}

func (c *APIClient) GenerateImage(ctx context.Context, prompt, credential string) (string, error) {
	start := time.Now()
	url, err := c.generateImage(ctx, prompt, credential)
	observe("api", ModalityImage, start, err)
	return url, err
}

func (c *APIClient) GenerateStory(ctx context.Context, prompt, credential string) (string, error) {
	start := time.Now()
	text, err := c.generateStory(ctx, prompt, credential)
	observe("api", ModalityStory, start, err)
	return text, err
}

func (c *APIClient) generateImage(ctx context.Context, prompt, credential string) (string, error) {
	req := ImageGenerationRequest{
		SessionID: c.sessionID(imageSessionPrefix),
		Prompt:    prompt,
		Style:     c.style,
		Size:      c.size,
		Streaming: false,
		Config:    c.generationConfig(),
	}
	log := c.logger.With(zap.String("session_id", req.SessionID), zap.String("modality", string(ModalityImage)))

	resp, err := c.post(ctx, c.imageURL, credential, ModalityImage, req)
	if err != nil {
		log.Warn("image generation request failed", zap.Error(err))
		return "", err
	}

	payload, err := ClassifyImagePayload(resp.Response)
	if err != nil {
		log.Warn("image payload not recognised", zap.Error(err))
		return "", err
	}

	log.Debug("image generated", zap.Stringer("payload_kind", payload.Kind))
	return payload.Value, nil
}

func (c *APIClient) generateStory(ctx context.Context, prompt, credential string) (string, error) {
	req := StoryGenerationRequest{
		SessionID: c.sessionID(storySessionPrefix),
		Messages:  []ChatMessage{{Role: "user", Content: prompt}},
		Streaming: false,
		Config:    c.generationConfig(),
	}
	log := c.logger.With(zap.String("session_id", req.SessionID), zap.String("modality", string(ModalityStory)))

	resp, err := c.post(ctx, c.storyURL, credential, ModalityStory, req)
	if err != nil {
		log.Warn("story generation request failed", zap.Error(err))
		return "", err
	}

	payload, err := ClassifyStoryPayload(resp.Response)
	if err != nil {
		log.Warn("story payload not recognised", zap.Error(err))
		return "", err
	}

	if resp.Usage != nil {
		log.Debug("story generated",
			zap.Stringer("payload_kind", payload.Kind),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens))
	}
	return payload.Value, nil
}

// post sends body and returns the decoded envelope only when its status is
// "completed". Every other outcome is mapped onto the error taxonomy.
func (c *APIClient) post(ctx context.Context, endpoint, credential string, m Modality, body any) (*GenerationResponse, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, fmt.Errorf("%s generation: %w", m, ErrUnauthorized)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", m, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("content service unreachable", zap.String("modality", string(m)), zap.Error(err))
		return nil, newGenerationError(m, 0, unavailableMessage)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%s generation: %w", m, ErrUnauthorized)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Warn("failed to read content service response",
			zap.String("modality", string(m)), zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, newGenerationError(m, resp.StatusCode, unavailableMessage)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(raw)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, newGenerationError(m, resp.StatusCode, msg)
	}

	envelope, ok := decodeEnvelope(raw)
	if !ok {
		return nil, newGenerationError(m, resp.StatusCode, "malformed response envelope")
	}

	switch envelope.Status {
	case StatusCompleted:
		return envelope, nil
	case StatusFailed:
		return nil, newGenerationError(m, 0, envelope.Error)
	default:
		return nil, newGenerationError(m, 0, fmt.Sprintf("unexpected status %q", envelope.Status))
	}
}

// decodeEnvelope reads the fields it needs one by one so that an odd usage
// block or a structured error cannot discard a usable response.
func decodeEnvelope(raw []byte) (*GenerationResponse, bool) {
	if !gjson.ValidBytes(raw) {
		return nil, false
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, false
	}

	envelope := &GenerationResponse{
		Status: root.Get("status").String(),
		Error:  serverMessage(raw),
		Usage:  decodeUsage(root.Get("usage")),
	}
	if r := root.Get("response"); r.Exists() {
		envelope.Response = json.RawMessage(r.Raw)
	}
	return envelope, true
}

// decodeUsage is best effort: numbers and numeric strings are read, anything
// else counts as zero.
func decodeUsage(v gjson.Result) *Usage {
	if !v.IsObject() {
		return nil
	}
	count := func(key string) int {
		f := v.Get(key)
		if f.Type != gjson.Number && f.Type != gjson.String {
			return 0
		}
		return int(f.Int())
	}
	return &Usage{
		InputTokens:  count("inputTokens"),
		OutputTokens: count("outputTokens"),
		TotalTokens:  count("totalTokens"),
	}
}

func (c *APIClient) sessionID(prefix string) string {
	return prefix + strconv.FormatInt(c.now().UnixMilli(), 10)
}

func (c *APIClient) generationConfig() *GenerationConfig {
	if c.modelID == "" {
		return nil
	}
	return &GenerationConfig{PreferredModelID: c.modelID}
}

func serverMessage(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		msg := strings.TrimSpace(string(raw))
		if len(msg) > maxErrorMessageLen {
			msg = msg[:maxErrorMessageLen]
		}
		return msg
	}
	for _, path := range []string{"error.message", "error", "message"} {
		if v := gjson.GetBytes(raw, path); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return ""
}
