package model

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Completion is a single non-streaming response from an LLM provider.
// ToolCalls is non-empty when the model chose to call tools instead of
// (or in addition to) producing text.
type Completion struct {
	Content   string
	ToolCalls []ToolCall
}

// Provider abstracts LLM provider implementations (OpenAI, Anthropic,
// Ollama) using provider-agnostic types from the model layer.
//
// This interface is defined in the model package (not the provider
// package) to avoid import cycles: provider implementations can import
// model, and the orchestrator can use the Provider interface without
// importing the provider package.
type Provider interface {
	// Complete sends the message list and returns the model's reply.
	// When tools is non-empty the declarations are attached to the
	// request with tool choice "auto"; when nil the model must answer
	// in natural language.
	Complete(ctx context.Context, messages []Message, tools []mcptypes.Tool) (*Completion, error)

	// GetModel returns the model identifier used for API calls.
	GetModel() string

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}
