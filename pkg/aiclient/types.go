package aiclient

import (
	"context"
	"encoding/json"
)

// Modality is the kind of content requested from a generator.
type Modality string

const (
	ModalityImage Modality = "image"
	ModalityStory Modality = "story"
)

// Response statuses reported by the hosted generation API.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Generator produces trip content. Implementations are stateless apart from
// their configuration, so one value is shared by every request.
type Generator interface {
	// GenerateImage returns an http(s) URL or a data: URI.
	GenerateImage(ctx context.Context, prompt, credential string) (string, error)
	// GenerateStory returns the generated narrative text.
	GenerateStory(ctx context.Context, prompt, credential string) (string, error)
}

type GenerationConfig struct {
	PreferredModelID string `json:"preferredModelId,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ImageGenerationRequest struct {
	SessionID string            `json:"sessionId"`
	Prompt    string            `json:"prompt"`
	Style     string            `json:"style"`
	Size      string            `json:"size"`
	Streaming bool              `json:"streaming"`
	Config    *GenerationConfig `json:"config,omitempty"`
}

type StoryGenerationRequest struct {
	SessionID string            `json:"sessionId"`
	Messages  []ChatMessage     `json:"messages"`
	Streaming bool              `json:"streaming"`
	Config    *GenerationConfig `json:"config,omitempty"`
}

type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	TotalTokens  int `json:"totalTokens"`
}

// GenerationResponse is the envelope returned by the hosted API. Response is
// kept raw because its shape is not guaranteed by the provider.
type GenerationResponse struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response,omitempty"`
	Usage    *Usage          `json:"usage,omitempty"`
	Error    string          `json:"error,omitempty"`
}
