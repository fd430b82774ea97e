package store

import (
	"sync"

	"cvchat/internal/llm"
)

// MemoryStore keeps per-session conversation history in memory. History is
// discarded when the process exits.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string][]llm.Message
	maxMessages int
}

func NewMemoryStore(maxMessages int) *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string][]llm.Message),
		maxMessages: maxMessages,
	}
}

func (m *MemoryStore) Append(sessionID string, msg llm.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = append(m.sessions[sessionID], msg)
	m.trimLocked(sessionID)
}

func (m *MemoryStore) Get(sessionID string) []llm.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.sessions[sessionID]
	out := make([]llm.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Last returns up to n of the most recent messages for a session.
func (m *MemoryStore) Last(sessionID string, n int) []llm.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.sessions[sessionID]
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	out := make([]llm.Message, len(msgs))
	copy(out, msgs)
	return out
}

func (m *MemoryStore) Reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

func (m *MemoryStore) trimLocked(sessionID string) {
	if m.maxMessages <= 0 {
		return
	}
	msgs := m.sessions[sessionID]
	if len(msgs) > m.maxMessages {
		m.sessions[sessionID] = msgs[len(msgs)-m.maxMessages:]
	}
}
