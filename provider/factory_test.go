package provider

import (
	"testing"
)

func TestNewProviderUnknownType(t *testing.T) {
	_, err := NewProvider(Config{Type: "bedrock"})
	if err == nil {
		t.Fatal("NewProvider() error = nil, want error for unknown type")
	}
}

func TestNewProviderOpenAIRequiresKey(t *testing.T) {
	_, err := NewProvider(Config{Type: ProviderTypeOpenAI})
	if err == nil {
		t.Fatal("NewProvider() error = nil, want missing API key error")
	}
}

func TestNewProviderAnthropicRequiresKey(t *testing.T) {
	_, err := NewProvider(Config{Type: ProviderTypeAnthropic})
	if err == nil {
		t.Fatal("NewProvider() error = nil, want missing API key error")
	}
}

func TestNewProviderOpenAIDefaults(t *testing.T) {
	p, err := NewProvider(Config{Type: ProviderTypeOpenAI, APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewProvider() error: %v", err)
	}
	if got := p.GetModel(); got != "gpt-4o-mini" {
		t.Errorf("GetModel() = %q, want default gpt-4o-mini", got)
	}
}

func TestNewProviderOllamaDefaults(t *testing.T) {
	p, err := NewProvider(Config{Type: ProviderTypeOllama})
	if err != nil {
		t.Fatalf("NewProvider() error: %v", err)
	}
	if got := p.GetModel(); got != "llama3.1" {
		t.Errorf("GetModel() = %q, want default llama3.1", got)
	}
}

func TestMapProviderIDToType(t *testing.T) {
	tests := []struct {
		id   string
		want ProviderType
	}{
		{"openai", ProviderTypeOpenAI},
		{"anthropic", ProviderTypeAnthropic},
		{"ollama", ProviderTypeOllama},
		{"something-else", ProviderType("something-else")},
	}

	for _, tt := range tests {
		if got := MapProviderIDToType(tt.id); got != tt.want {
			t.Errorf("MapProviderIDToType(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
