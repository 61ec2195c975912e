// Package testutil provides a scripted Provider implementation for
// tests.
package testutil

import (
	"context"
	"fmt"

	"shopbot/model"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Call records one Complete invocation.
type Call struct {
	Messages []model.Message
	Tools    []mcptypes.Tool
}

// Response scripts one Complete result.
type Response struct {
	Completion *model.Completion
	Err        error
}

// MockProvider is a scripted model.Provider. Each Complete call
// consumes the next queued Response and records the request for
// assertions. An exhausted queue is an error so tests fail loudly when
// the code under test makes more calls than expected.
type MockProvider struct {
	Model     string
	Responses []Response
	Calls     []Call
	PingErr   error
}

// Complete implements model.Provider.
func (m *MockProvider) Complete(_ context.Context, messages []model.Message, tools []mcptypes.Tool) (*model.Completion, error) {
	recorded := make([]model.Message, len(messages))
	copy(recorded, messages)
	m.Calls = append(m.Calls, Call{Messages: recorded, Tools: tools})

	if len(m.Responses) == 0 {
		return nil, fmt.Errorf("mock provider: no scripted response for call %d", len(m.Calls))
	}
	next := m.Responses[0]
	m.Responses = m.Responses[1:]
	return next.Completion, next.Err
}

// GetModel implements model.Provider.
func (m *MockProvider) GetModel() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}

// Ping implements model.Provider.
func (m *MockProvider) Ping(context.Context) error {
	return m.PingErr
}
