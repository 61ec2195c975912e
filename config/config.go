// Package config loads settings from the environment, with optional
// .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the bot process settings.
type Config struct {
	// TelegramToken authenticates against the Telegram Bot API.
	TelegramToken string

	// Provider selects the LLM backend: openai, anthropic, or ollama.
	Provider string

	// APIKey authenticates against the LLM provider. Required for
	// openai and anthropic, unused by ollama.
	APIKey string

	// BaseURL overrides the provider's default endpoint.
	BaseURL string

	// Model overrides the provider's default model.
	Model string

	// ToolServerURL is the tool backend's base URL.
	ToolServerURL string

	// HistoryMax bounds the per-user conversation history.
	HistoryMax int
}

// Load reads bot settings from the environment, loading a .env file
// first when one exists. Missing required settings are errors so the
// process refuses to start instead of failing mid-conversation.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Provider:      getEnv("LLM_PROVIDER", "openai"),
		APIKey:        os.Getenv("LLM_API_KEY"),
		BaseURL:       os.Getenv("LLM_BASE_URL"),
		Model:         os.Getenv("LLM_MODEL"),
		ToolServerURL: getEnv("TOOL_SERVER_URL", "http://127.0.0.1:8000"),
		HistoryMax:    20,
	}

	if raw := os.Getenv("HISTORY_MAX"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("HISTORY_MAX must be a positive integer, got %q", raw)
		}
		cfg.HistoryMax = n
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	switch cfg.Provider {
	case "openai", "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("LLM_API_KEY is required for provider %q", cfg.Provider)
		}
	case "ollama":
		// No key needed.
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want openai, anthropic, or ollama)", cfg.Provider)
	}

	return cfg, nil
}

// ServerConfig holds the tool server process settings.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string

	// DBPath is the catalog SQLite file.
	DBPath string
}

// LoadServer reads tool server settings from the environment.
func LoadServer() (*ServerConfig, error) {
	_ = godotenv.Load()

	return &ServerConfig{
		Addr:   getEnv("TOOL_SERVER_ADDR", ":8000"),
		DBPath: getEnv("CATALOG_DB_PATH", "products.db"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
