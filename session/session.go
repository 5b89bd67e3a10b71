// Package session holds the authentication state the whole gateway reads:
// the bearer token and the current user record, both persisted in the state
// store. The backend is the authority on authentication; this layer only
// caches what it was told at login.
package session

import (
	"context"
	"sync"
	"time"

	"fundilink/appstate"
	"fundilink/models"

	"github.com/golang-jwt/jwt"
)

// HomeRoute is where a logout always lands.
const HomeRoute = "/"

// Manager owns the in-memory copy of the auth state and keeps it in sync
// with the persisted store.
type Manager struct {
	mu    sync.RWMutex
	state *appstate.State

	token string
	user  *models.User
}

func NewManager(state *appstate.State) *Manager {
	m := &Manager{state: state}
	m.Refresh(context.Background())
	return m
}

// Refresh re-reads the persisted auth state into memory. Corrupt entries
// read as absent.
func (m *Manager) Refresh(ctx context.Context) {
	var token string
	var user models.User

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.LoadJSON(ctx, appstate.KeyAuthToken, &token) {
		m.token = token
	} else {
		m.token = ""
	}
	if m.state.LoadJSON(ctx, appstate.KeyCurrentUser, &user) {
		m.user = &user
	} else {
		m.user = nil
	}
}

// IsAuthenticated is true iff both a token and a user record are present
// and the token is not provably expired. The token is never verified here
// (the gateway has no signing key); an unreadable token is still presented
// to the backend, which remains the authority.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" || m.user == nil {
		return false
	}
	return !tokenExpired(m.token)
}

// Token returns the raw bearer token, empty when signed out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// CurrentUser returns a copy of the signed-in user, nil when signed out.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Login stores the token and user record handed back by the backend.
func (m *Manager) Login(ctx context.Context, token string, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.state.SaveJSON(ctx, appstate.KeyAuthToken, token); err != nil {
		return err
	}
	if err := m.state.SaveJSON(ctx, appstate.KeyCurrentUser, user); err != nil {
		return err
	}
	m.token = token
	m.user = &user
	return nil
}

// UpdateUser replaces the stored user record, keeping the token. Used when
// an application submission upgrades the account type.
func (m *Manager) UpdateUser(ctx context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return nil
	}
	if err := m.state.SaveJSON(ctx, appstate.KeyCurrentUser, user); err != nil {
		return err
	}
	m.user = &user
	return nil
}

// Logout clears every auth-related key and reports the home route as the
// post-logout destination.
func (m *Manager) Logout(ctx context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	_ = m.state.Clear(ctx,
		appstate.KeyAuthToken,
		appstate.KeyCurrentUser,
		appstate.KeyReturnURL,
		appstate.KeyPostLoginAction,
	)
	m.token = ""
	m.user = nil
	return HomeRoute
}

// StampReturnURL records where login should land afterwards.
func (m *Manager) StampReturnURL(ctx context.Context, url string) {
	_ = m.state.SaveJSON(ctx, appstate.KeyReturnURL, url)
}

// StampPostLoginAction records a deferred intent (e.g. "provider-signup").
func (m *Manager) StampPostLoginAction(ctx context.Context, action string) {
	_ = m.state.SaveJSON(ctx, appstate.KeyPostLoginAction, action)
}

// TakePostLoginAction returns and clears the deferred intent.
func (m *Manager) TakePostLoginAction(ctx context.Context) string {
	var action string
	if !m.state.LoadJSON(ctx, appstate.KeyPostLoginAction, &action) {
		return ""
	}
	_ = m.state.Clear(ctx, appstate.KeyPostLoginAction)
	return action
}

// tokenExpired reads the exp claim without verifying the signature. Tokens
// without a readable exp claim are treated as live.
func tokenExpired(tokenString string) bool {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}
