// Package history maintains per-user conversation logs for the
// orchestrator, bounded in size and kept structurally valid for the
// completion APIs.
package history

import (
	"sync"

	"shopbot/model"
)

// DefaultMaxMessages bounds stored history per user so long-lived
// conversations don't grow past the model's context budget.
const DefaultMaxMessages = 20

// Store is the per-user conversation log. Implementations must keep
// every stored history within the size bound and free of orphaned tool
// messages.
type Store interface {
	// Get returns the user's current history (empty slice if none).
	Get(userID int64) []model.Message

	// Append adds messages to the user's history, trimming and
	// repairing when the size bound is exceeded.
	Append(userID int64, messages ...model.Message)

	// Reset clears the user's history.
	Reset(userID int64)
}

// MemoryStore is an in-memory Store keyed by user ID. Histories are
// independent across users; a single lock serializes concurrent appends
// for the same user. Process restart discards all state.
type MemoryStore struct {
	mu            sync.RWMutex
	max           int
	conversations map[int64][]model.Message
}

// NewMemoryStore creates an empty in-memory store. A max of 0 or less
// falls back to DefaultMaxMessages.
func NewMemoryStore(max int) *MemoryStore {
	if max <= 0 {
		max = DefaultMaxMessages
	}
	return &MemoryStore{
		max:           max,
		conversations: make(map[int64][]model.Message),
	}
}

// Get returns a copy of the user's history so callers can't mutate
// stored state.
func (s *MemoryStore) Get(userID int64) []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.conversations[userID]
	out := make([]model.Message, len(stored))
	copy(out, stored)
	return out
}

// Append adds messages to the user's history and enforces the size
// bound: when the log exceeds max it is trimmed to the last max messages
// and repaired, so the stored history always satisfies the pairing
// invariant.
func (s *MemoryStore) Append(userID int64, messages ...model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(s.conversations[userID], messages...)
	if len(updated) > s.max {
		updated = Repair(Trim(updated, s.max))
	}
	s.conversations[userID] = updated
}

// Reset clears the user's history.
func (s *MemoryStore) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, userID)
}
