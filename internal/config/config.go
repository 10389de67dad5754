// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store backends selectable via STORE_BACKEND.
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreNone     = "none"
)

// Config holds every tunable of the assistant.  All values come from the
// environment; a .env file in the working directory is honoured when present.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	TelegramToken string `envconfig:"TELEGRAM_TOKEN"`

	OpenAIAPIKey  string  `envconfig:"OPENAI_API_KEY" required:"true"`
	OpenAIBaseURL string  `envconfig:"OPENAI_BASE_URL"`
	OpenAIModel   string  `envconfig:"OPENAI_MODEL" default:"gpt-4.1"`
	Temperature   float32 `envconfig:"OPENAI_TEMPERATURE" default:"0.7"`
	MaxTokens     int     `envconfig:"OPENAI_MAX_TOKENS" default:"500"`

	// TurnTimeout bounds each model call.
	TurnTimeout time.Duration `envconfig:"TURN_TIMEOUT" default:"60s"`

	// MessageCap limits free chatted turns per session; zero disables it.
	MessageCap int `envconfig:"MESSAGE_CAP" default:"0"`

	StoreBackend  string `envconfig:"STORE_BACKEND" default:"none"`
	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"mediconnect"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
}

// Load reads the .env file when present and then processes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	switch cfg.StoreBackend {
	case StoreMongo, StoreNone:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("STORE_BACKEND=postgres requires DATABASE_URL")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	return &cfg, nil
}
