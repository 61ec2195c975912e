package history

import "shopbot/model"

// Repair removes structurally invalid messages from a history in a single
// left-to-right pass. A tool message is kept only when the previously
// accepted message is an assistant message whose tool calls include the
// tool message's call ID; messages with unknown roles are dropped. The
// input slice is not modified.
//
// Completion APIs reject tool messages that are not paired with the
// assistant message that requested them, so every history must pass
// through Repair before being sent.
func Repair(history []model.Message) []model.Message {
	repaired := make([]model.Message, 0, len(history))

	for _, msg := range history {
		switch msg.Role {
		case model.RoleTool:
			if n := len(repaired); n > 0 && repaired[n-1].RequestsTools() && repaired[n-1].HasToolCall(msg.ToolCallID) {
				repaired = append(repaired, msg)
			}
			// Orphaned tool message: skip.
		case model.RoleUser, model.RoleAssistant, model.RoleSystem:
			repaired = append(repaired, msg)
		}
	}

	return repaired
}

// Trim bounds a history to its last max messages without stranding an
// orphaned tool message at the head of the retained window.
//
// If the window starts with a tool message, the assistant message that
// requested it (the message immediately before the window, when it is an
// assistant with tool calls) is pulled back in and one message is cut
// from the tail to restore the bound. When no such assistant exists the
// leading tool message is dropped instead and the window shrinks by one.
//
// A max of zero or less yields an empty history.
//
// Trimming can still leave residual inconsistency at the boundary;
// callers must run Repair on the result.
func Trim(history []model.Message, max int) []model.Message {
	if max <= 0 {
		return []model.Message{}
	}
	if len(history) <= max {
		return history
	}

	start := len(history) - max
	trimmed := make([]model.Message, max)
	copy(trimmed, history[start:])

	if trimmed[0].Role != model.RoleTool {
		return trimmed
	}

	if prev := history[start-1]; prev.RequestsTools() {
		trimmed = append([]model.Message{prev}, trimmed...)
		if len(trimmed) > max {
			trimmed = trimmed[:max]
		}
		return trimmed
	}

	// No paired assistant before the window: drop the orphan outright.
	return trimmed[1:]
}
