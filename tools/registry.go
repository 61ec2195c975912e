package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Invoker executes a named tool with decoded parameters and returns
// its result as a JSON string.
type Invoker interface {
	Invoke(ctx context.Context, name string, params map[string]any) (string, error)
}

// Registry dispatches the model's tool calls against the fixed tool
// table. Execute never fails: unknown tools, malformed arguments,
// backend errors, and panics are all rendered as JSON error payloads
// the model can read and explain to the user.
type Registry struct {
	invoker Invoker
	known   map[string]bool
	decls   []mcptypes.Tool
}

// NewRegistry creates a registry dispatching to the given invoker.
func NewRegistry(invoker Invoker) *Registry {
	decls := Declarations()
	known := make(map[string]bool, len(decls))
	for _, d := range decls {
		known[d.Name] = true
	}
	return &Registry{
		invoker: invoker,
		known:   known,
		decls:   decls,
	}
}

// Declarations returns the tool table advertised to the model.
func (r *Registry) Declarations() []mcptypes.Tool {
	return r.decls
}

// Execute runs one tool call and returns its result as a JSON string.
// rawArgs is the arguments payload exactly as the model produced it.
func (r *Registry) Execute(ctx context.Context, name, rawArgs string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("tool %s panicked: %v", name, rec)
			result = errorPayload(fmt.Sprintf("tool execution failed: %v", rec))
		}
	}()

	if !r.known[name] {
		return errorPayload("unknown tool: " + name)
	}

	out, err := r.invoker.Invoke(ctx, name, DecodeArguments(rawArgs))
	if err != nil {
		log.Printf("tool %s failed: %v", name, err)
		return errorPayload(err.Error())
	}
	return out
}

// DecodeArguments parses a tool call's raw JSON arguments. Malformed or
// empty input yields an empty parameter map so the call still reaches
// the backend, whose validation produces a readable error.
func DecodeArguments(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	params := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return map[string]any{}
	}
	return params
}

func errorPayload(msg string) string {
	data, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return `{"error":"internal error"}`
	}
	return string(data)
}
