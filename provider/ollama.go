package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"shopbot/model"
	"shopbot/tools"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/ollama/ollama/api"
)

// OllamaProvider implements the Provider interface against a local or
// remote Ollama server. No API key is needed.
type OllamaProvider struct {
	client  *api.Client
	model   string
	baseURL string
}

// NewOllamaProvider creates a new Ollama provider instance.
//
// Parameters:
//   - baseURL: Ollama server URL (default: "http://localhost:11434")
//   - model: model to use (default: "llama3.1")
//
// Returns an error if the URL cannot be parsed.
func NewOllamaProvider(baseURL, model string) (*OllamaProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.1"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL %q: %w", baseURL, err)
	}

	return &OllamaProvider{
		client:  api.NewClient(parsed, http.DefaultClient),
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Complete implements Provider.Complete. Streaming is disabled; the
// callback still accumulates in case the server chunks the response.
//
// Ollama tool calls carry no IDs, so synthetic ones (call_0, call_1,
// ...) are minted in request order to keep the history pairable.
func (p *OllamaProvider) Complete(ctx context.Context, messages []model.Message, decls []mcptypes.Tool) (*model.Completion, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    p.model,
		Messages: ConvertToOllamaMessages(messages),
		Stream:   &stream,
	}
	if len(decls) > 0 {
		req.Tools = tools.ToOllama(decls)
	}

	completion := &model.Completion{}
	var content strings.Builder

	err := p.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		for _, tc := range resp.Message.ToolCalls {
			args, err := json.Marshal(tc.Function.Arguments)
			if err != nil {
				args = []byte("{}")
			}
			completion.ToolCalls = append(completion.ToolCalls, model.ToolCall{
				ID:        fmt.Sprintf("call_%d", len(completion.ToolCalls)),
				Name:      tc.Function.Name,
				Arguments: string(args),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Ollama completion failed: %w", err)
	}

	completion.Content = content.String()
	return completion, nil
}

// GetModel implements Provider.GetModel.
func (p *OllamaProvider) GetModel() string {
	return p.model
}

// Ping implements Provider.Ping.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	if err := p.client.Heartbeat(ctx); err != nil {
		return fmt.Errorf("Ollama ping failed: %w", err)
	}
	return nil
}
