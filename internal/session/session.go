// Package session tracks per-conversation state. Each chat identity
// owns one Session whose state decides how the next inbound message is
// interpreted. Sessions are created lazily and live for the process
// lifetime.
package session

import (
	"sync"
	"time"
)

// State is the conversation state for a single session.
type State int

const (
	// StateIdle means no command-driven flow is active; plain text is
	// treated as an implicit search query.
	StateIdle State = iota
	// StateAwaitingQuery means the next text message is a search query.
	StateAwaitingQuery
	// StateAwaitingKey means the next text message is a new API key.
	StateAwaitingKey
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingQuery:
		return "awaiting_query"
	case StateAwaitingKey:
		return "awaiting_key"
	default:
		return "unknown"
	}
}

// Session is one user's conversation context. Callers must hold the
// session (via Manager.Acquire) while reading or mutating it.
type Session struct {
	mu sync.Mutex

	ID           string
	CreatedAt    time.Time
	LastActiveAt time.Time

	state  State
	apiKey string
}

// State returns the current conversation state.
func (s *Session) State() State {
	return s.state
}

// SetState transitions the session to st.
func (s *Session) SetState(st State) {
	s.state = st
}

// APIKey returns the key used for this session's lookups.
func (s *Session) APIKey() string {
	return s.apiKey
}

// SetAPIKey replaces the session's key.
func (s *Session) SetAPIKey(key string) {
	s.apiKey = key
}

// Manager owns the session table. Distinct sessions are fully
// independent; a single session's messages are serialized by the
// per-session lock handed out by Acquire.
type Manager struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	defaultKey string
}

// NewManager creates a session manager. defaultKey seeds the API key
// of every new session; it may be blank (the unconfigured sentinel).
func NewManager(defaultKey string) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		defaultKey: defaultKey,
	}
}

// Acquire returns the session for id with its lock held, creating the
// session on first contact. The caller must invoke release when the
// message has been fully handled; until then no other message for the
// same session proceeds.
func (m *Manager) Acquire(id string) (*Session, func()) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		now := time.Now()
		s = &Session{
			ID:           id,
			CreatedAt:    now,
			LastActiveAt: now,
			state:        StateIdle,
			apiKey:       m.defaultKey,
		}
		m.sessions[id] = s
	}
	m.mu.Unlock()

	s.mu.Lock()
	s.LastActiveAt = time.Now()
	return s, s.mu.Unlock
}

// Peek returns the session for id without locking it, or nil if the
// identity has never been seen. Intended for tests and introspection.
func (m *Manager) Peek(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Count returns the number of known sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
