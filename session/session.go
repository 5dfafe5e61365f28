package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/swift-aid/admin-console/models"
)

// Manager is the single process-wide session container. It owns the signed-in
// identity and bearer token, and is the only writer of the backing Store. API
// clients read the token through it instead of any ambient global state.
type Manager struct {
	mu            sync.Mutex
	store         Store
	user          *models.Admin
	token         string
	refreshToken  string
	authenticated bool
	loading       bool
	lastError     string
}

// NewManager creates a session manager over store. A previously stored token
// marks the session authenticated immediately, matching the console's
// behavior of trusting stored credentials until the backend rejects them.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	if token := store.Get(KeyToken); token != "" {
		m.token = token
		m.authenticated = true
	}
	return m
}

// LoadStored restores the full identity from the backing store. Missing or
// undecodable user entries leave the identity nil but keep the token.
func (m *Manager) LoadStored() {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := m.store.Get(KeyToken)
	if token == "" {
		return
	}
	m.token = token
	m.refreshToken = m.store.Get(KeyRefreshToken)
	m.authenticated = true

	if raw := m.store.Get(KeyUser); raw != "" {
		var u models.Admin
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			zap.S().Warnw("stored user entry undecodable, ignoring", "error", err)
		} else {
			m.user = &u
		}
	}
}

// LoginStarted moves the session into its loading state and clears the prior
// error
func (m *Manager) LoginStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = true
	m.lastError = ""
}

// LoginSucceeded records the identity and token and persists them
func (m *Manager) LoginSucceeded(user models.Admin, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loading = false
	m.user = &user
	m.token = token
	m.refreshToken = ""
	m.authenticated = true
	m.lastError = ""

	m.store.Set(KeyToken, token)
	if b, err := json.Marshal(user); err == nil {
		m.store.Set(KeyUser, string(b))
	}
}

// LoginFailed records the failure message and leaves the session signed out
func (m *Manager) LoginFailed(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	m.lastError = message
	m.authenticated = false
}

// SetCredentials installs an identity and token outside the login flow, e.g.
// when another tool already performed authentication
func (m *Manager) SetCredentials(user models.Admin, token, refreshToken string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = &user
	m.token = token
	m.refreshToken = refreshToken
	m.authenticated = true
	m.lastError = ""

	m.store.Set(KeyToken, token)
	if refreshToken != "" {
		m.store.Set(KeyRefreshToken, refreshToken)
	}
	if b, err := json.Marshal(user); err == nil {
		m.store.Set(KeyUser, string(b))
	}
}

// Logout clears the session and all persisted entries
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// Invalidate clears the session after the backend rejected the token. Every
// API client funnels its 401 handling through here so one domain's rejection
// signs the whole session out uniformly.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	zap.S().Infow("session invalidated, token rejected by backend")
}

func (m *Manager) reset() {
	m.user = nil
	m.token = ""
	m.refreshToken = ""
	m.authenticated = false
	m.loading = false
	m.lastError = ""

	m.store.Delete(KeyToken)
	m.store.Delete(KeyRefreshToken)
	m.store.Delete(KeyUser)
}

// ClearError drops the last error message
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = ""
}

// Token returns the current bearer token, empty when signed out
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// User returns the signed-in identity, nil when unknown
func (m *Manager) User() *models.Admin {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether a token is held
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// IsLoading reports whether a login is in flight
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// LastError returns the most recent login failure message
func (m *Manager) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastError
}

// TokenValid decodes the held JWT without verifying its signature and checks
// the exp claim. Signature verification belongs to the backend, the console
// only needs to know whether re-login is unavoidable.
func (m *Manager) TokenValid() bool {
	token := m.Token()
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(time.Now())
}
