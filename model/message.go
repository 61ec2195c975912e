package model

// Message roles accepted by the completion APIs.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents one turn in a conversation.
//
// Content may be empty on assistant messages that only carry tool calls.
// ToolCallID and Name are set only on tool-role messages and link a tool
// result back to the assistant message that requested it.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// ToolCall is a tool invocation requested by the model. Arguments is the
// raw JSON payload exactly as the model produced it; it is parsed (and
// replaced with an empty object on malformed input) at execution time.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// RequestsTools reports whether the message is an assistant message
// carrying at least one tool call.
func (m Message) RequestsTools() bool {
	return m.Role == RoleAssistant && len(m.ToolCalls) > 0
}

// HasToolCall reports whether the message requests a tool call with the
// given ID.
func (m Message) HasToolCall(id string) bool {
	for _, tc := range m.ToolCalls {
		if tc.ID == id {
			return true
		}
	}
	return false
}
