package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"pawtrip/pkg/aiclient"
)

type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	PostgresURL string        `envconfig:"POSTGRES_URL" required:"true"`
	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"60m"`

	// Comma-separated origins, or "*".
	CORSAllowedOrigin string `envconfig:"CORS_ALLOWED_ORIGIN" default:"*"`

	// AI generation
	AIProvider       string        `envconfig:"AI_PROVIDER" default:"api"`
	ContentAPIURL    string        `envconfig:"CONTENT_API_URL" default:"http://localhost:3000"`
	ContentAPIPrefix string        `envconfig:"CONTENT_API_PREFIX" default:"/api/v1"`
	ImagePath        string        `envconfig:"CONTENT_IMAGE_PATH" default:"/ai/image/generate"`
	StoryPath        string        `envconfig:"CONTENT_STORY_PATH" default:"/ai/messages"`
	ContentTimeout   time.Duration `envconfig:"CONTENT_API_TIMEOUT" default:"120s"`
	PreferredModelID string        `envconfig:"CONTENT_PREFERRED_MODEL_ID"`
	ImageStyle       string        `envconfig:"CONTENT_IMAGE_STYLE" default:"photographic"`
	ImageSize        string        `envconfig:"CONTENT_IMAGE_SIZE" default:"1024x1024"`

	OpenAIAPIKey     string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `envconfig:"OPENAI_BASE_URL"`
	OpenAIImageModel string `envconfig:"OPENAI_IMAGE_MODEL" default:"dall-e-3"`
	OpenAIChatModel  string `envconfig:"OPENAI_CHAT_MODEL" default:"gpt-4o-mini"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`

	// Generation requests per user per minute; 0 disables limiting.
	GenerationRatePerMinute int `envconfig:"GENERATION_RATE_PER_MINUTE" default:"10"`
	GenerationBurst         int `envconfig:"GENERATION_BURST" default:"3"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.GenerationRatePerMinute < 0 || cfg.GenerationBurst < 0 {
		return nil, fmt.Errorf("generation rate limits must not be negative")
	}
	return &cfg, nil
}

// AIClient projects the generation settings onto aiclient.Config.
func (c *Config) AIClient() aiclient.Config {
	return aiclient.Config{
		Provider:         c.AIProvider,
		BaseURL:          c.ContentAPIURL,
		APIPrefix:        c.ContentAPIPrefix,
		ImagePath:        c.ImagePath,
		StoryPath:        c.StoryPath,
		Timeout:          c.ContentTimeout,
		PreferredModelID: c.PreferredModelID,
		ImageStyle:       c.ImageStyle,
		ImageSize:        c.ImageSize,
		OpenAIAPIKey:     c.OpenAIAPIKey,
		OpenAIBaseURL:    c.OpenAIBaseURL,
		OpenAIImageModel: c.OpenAIImageModel,
		OpenAIChatModel:  c.OpenAIChatModel,
		GeminiAPIKey:     c.GeminiAPIKey,
		GeminiModel:      c.GeminiModel,
	}
}
