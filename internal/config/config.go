// Package config holds the process configuration read from the environment
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is built once at startup and passed down to the components.
type Config struct {
	Addr     string `env:"ADDR" envDefault:":5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Twilio TwilioConfig
	Gemini GeminiConfig
	Media  MediaConfig

	// PersonalityFile overrides the built-in assistant instructions
	PersonalityFile string `env:"PERSONALITY_FILE"`

	// RAGPath enables the knowledge base when set
	RAGPath        string `env:"RAG_PATH"`
	EmbeddingModel string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-004"`
}

// TwilioConfig .
type TwilioConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID,required,notEmpty"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN,required,notEmpty"`
}

// GeminiConfig .
type GeminiConfig struct {
	APIKey  string        `env:"GOOGLE_GENAI_API_KEY,required,notEmpty"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	Timeout time.Duration `env:"MODEL_TIMEOUT" envDefault:"60s"`
}

// MediaConfig .
type MediaConfig struct {
	Timeout  time.Duration `env:"MEDIA_TIMEOUT" envDefault:"30s"`
	MaxBytes int64         `env:"MEDIA_MAX_BYTES" envDefault:"16777216"`
	// StrictImageCheck also requires the fetched bytes to sniff as an image
	StrictImageCheck bool `env:"STRICT_IMAGE_CHECK" envDefault:"false"`
}

// Load reads the config from the environment
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads the config from the given variables, the real environment is used when vars is nil
func LoadFrom(vars map[string]string) (*Config, error) {
	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Media.MaxBytes <= 0 {
		return nil, fmt.Errorf("MEDIA_MAX_BYTES must be positive, got %d", cfg.Media.MaxBytes)
	}

	return &cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level, unknown values fall back to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
