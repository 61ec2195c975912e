// Package orchestrator runs the conversation loop: it sends the user's
// message to the model with the tool table attached, executes whatever
// tools the model requests, and asks the model to phrase the final
// answer from the results.
package orchestrator

import (
	"context"
	"fmt"
	"log"

	"shopbot/history"
	"shopbot/model"
	"shopbot/tools"
)

// DefaultSystemPrompt frames the assistant and its tools. It is
// prepended to every request and never stored in history.
const DefaultSystemPrompt = `You are a helpful assistant for a small online store.

You can look up the product catalog (list products, find a product by name, add a new product), do arithmetic with the calculator tools, search the web, fetch current currency exchange rates, and translate text.

Use the tools whenever the user's question needs live data; don't guess prices, rates, or search results. Answer briefly, in plain language, and in the same language the user writes in.`

// FallbackReply is returned when the model produces an empty answer.
const FallbackReply = "Sorry, I couldn't come up with a response. Please try rephrasing your question."

// Orchestrator ties a provider, a tool registry, and a history store
// into the request/response cycle for one user message.
type Orchestrator struct {
	provider model.Provider
	store    history.Store
	registry *tools.Registry
	system   string
}

// New creates an orchestrator. An empty systemPrompt falls back to
// DefaultSystemPrompt.
func New(provider model.Provider, store history.Store, registry *tools.Registry, systemPrompt string) *Orchestrator {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &Orchestrator{
		provider: provider,
		store:    store,
		registry: registry,
		system:   systemPrompt,
	}
}

// Respond processes one user message and returns the assistant's
// reply.
//
// The exchange runs at most two completion rounds: the first with the
// tool table attached (tool choice auto), and, if the model requested
// tools, a second without tools to phrase the answer from the results.
// Tool calls in the second round are ignored. History is committed
// once, only when the whole round succeeds; a provider error leaves
// the stored history untouched.
func (o *Orchestrator) Respond(ctx context.Context, userID int64, text string) (string, error) {
	userMsg := model.Message{Role: model.RoleUser, Content: text}

	stored := o.store.Get(userID)
	messages := make([]model.Message, 0, len(stored)+2)
	messages = append(messages, model.Message{Role: model.RoleSystem, Content: o.system})
	messages = append(messages, stored...)
	messages = append(messages, userMsg)

	first, err := o.provider.Complete(ctx, messages, o.registry.Declarations())
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	if len(first.ToolCalls) == 0 {
		reply := first.Content
		if reply == "" {
			reply = FallbackReply
		}
		o.store.Append(userID,
			userMsg,
			model.Message{Role: model.RoleAssistant, Content: reply},
		)
		return reply, nil
	}

	assistantMsg := model.Message{
		Role:      model.RoleAssistant,
		Content:   first.Content,
		ToolCalls: first.ToolCalls,
	}

	// Execute the requested tools sequentially, in the order the model
	// asked for them. Execute never fails, so every call gets a result
	// message even when the tool itself errored.
	toolMsgs := make([]model.Message, 0, len(first.ToolCalls))
	for _, call := range first.ToolCalls {
		log.Printf("user %d: running tool %s", userID, call.Name)
		result := o.registry.Execute(ctx, call.Name, call.Arguments)
		toolMsgs = append(toolMsgs, model.Message{
			Role:       model.RoleTool,
			ToolCallID: call.ID,
			Name:       call.Name,
			Content:    result,
		})
	}

	messages = append(messages, assistantMsg)
	messages = append(messages, toolMsgs...)

	final, err := o.provider.Complete(ctx, messages, nil)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	reply := final.Content
	if reply == "" {
		reply = FallbackReply
	}

	committed := make([]model.Message, 0, len(toolMsgs)+3)
	committed = append(committed, userMsg, assistantMsg)
	committed = append(committed, toolMsgs...)
	committed = append(committed, model.Message{Role: model.RoleAssistant, Content: reply})
	o.store.Append(userID, committed...)

	return reply, nil
}
