package provider

import (
	"fmt"

	"shopbot/model"
)

// NewProvider creates a provider based on configuration.
//
// This is the centralized factory for creating any provider type. It
// dispatches to the appropriate constructor based on the Config.Type
// field and returns an error for unknown types or when the
// provider-specific constructor fails (e.g. missing API key).
func NewProvider(cfg Config) (model.Provider, error) {
	switch cfg.Type {
	case ProviderTypeOpenAI:
		return NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case ProviderTypeAnthropic:
		return NewAnthropicProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case ProviderTypeOllama:
		return NewOllamaProvider(cfg.BaseURL, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// MapProviderIDToType converts a config provider ID to a ProviderType.
// Unknown IDs pass through unchanged so the factory reports them.
func MapProviderIDToType(id string) ProviderType {
	switch id {
	case "openai":
		return ProviderTypeOpenAI
	case "anthropic":
		return ProviderTypeAnthropic
	case "ollama":
		return ProviderTypeOllama
	default:
		return ProviderType(id)
	}
}
