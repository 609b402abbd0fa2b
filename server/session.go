package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/docvault/core"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "docvault_session"

// DefaultSessionTTL is how long a session stays valid without activity.
const DefaultSessionTTL = 8 * time.Hour

// sessionSweepInterval is how often the running server drops expired
// sessions. Expiry is also enforced lazily on every Get.
const sessionSweepInterval = 10 * time.Minute

// sessionState holds one logged-in identity.
type sessionState struct {
	user     core.User
	lastSeen time.Time
}

// SessionManager tracks logged-in users by opaque uuid tokens.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
	ttl      time.Duration
}

// NewSessionManager creates a session manager with the given TTL.
// A non-positive ttl falls back to DefaultSessionTTL.
func NewSessionManager(ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		sessions: make(map[string]*sessionState),
		ttl:      ttl,
	}
}

// Start creates a session for user and returns its token.
func (m *SessionManager) Start(user core.User) string {
	token := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = &sessionState{
		user:     user,
		lastSeen: time.Now(),
	}
	return token
}

// Get returns the user for a token, refreshing its activity timestamp.
// Expired sessions are dropped on access.
func (m *SessionManager) Get(token string) (core.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[token]
	if !ok {
		return core.User{}, false
	}
	if time.Since(state.lastSeen) > m.ttl {
		delete(m.sessions, token)
		return core.User{}, false
	}
	state.lastSeen = time.Now()
	return state.user, true
}

// End removes a session. Ending an unknown token is a no-op.
func (m *SessionManager) End(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Sweep removes every expired session and reports how many were dropped.
func (m *SessionManager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.ttl)
	dropped := 0
	for token, state := range m.sessions {
		if state.lastSeen.Before(cutoff) {
			delete(m.sessions, token)
			dropped++
		}
	}
	return dropped
}
