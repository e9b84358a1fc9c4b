package service

import "sync"

// SessionManager tracks the single active admin session. The site has one
// operator seat: a second login simply overwrites the first. It is an
// explicit injected object rather than package-level state so the auth
// service stays testable in isolation.
type SessionManager struct {
	mu    sync.RWMutex
	token string
	email string
}

func NewSessionManager() *SessionManager {
	return &SessionManager{}
}

// Set installs token as the active session, replacing any previous one.
func (m *SessionManager) Set(token, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.email = email
}

// Active reports whether token is the currently active session.
func (m *SessionManager) Active(token string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return token != "" && token == m.token
}

// Clear drops the session if token matches the active one.
func (m *SessionManager) Clear(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token == m.token {
		m.token = ""
		m.email = ""
	}
}
