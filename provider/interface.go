// Package provider implements LLM backends behind the model.Provider
// interface: OpenAI, Anthropic, and Ollama.
package provider

// ProviderType identifies which LLM backend to use.
type ProviderType string

const (
	ProviderTypeOpenAI    ProviderType = "openai"
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOllama    ProviderType = "ollama"
)

// Config holds the settings needed to construct a provider.
//
// BaseURL and Model are optional; each provider falls back to its own
// defaults. APIKey is required for OpenAI and Anthropic and ignored by
// Ollama.
type Config struct {
	Type    ProviderType
	BaseURL string
	APIKey  string
	Model   string
}
