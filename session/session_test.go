package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundilink/appstate"
	"fundilink/models"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func testUser() models.User {
	return models.User{ID: 7, Name: "Wanjiku", Email: "wanjiku@example.com", UserType: models.UserTypeClient}
}

func TestLoginEstablishesSession(t *testing.T) {
	ctx := context.Background()
	state := appstate.New(appstate.NewMemoryStore())
	m := NewManager(state)

	assert.False(t, m.IsAuthenticated())

	require.NoError(t, m.Login(ctx, signedToken(t, time.Now().Add(time.Hour)), testUser()))
	assert.True(t, m.IsAuthenticated())
	require.NotNil(t, m.CurrentUser())
	assert.Equal(t, "Wanjiku", m.CurrentUser().Name)
}

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	state := appstate.New(appstate.NewMemoryStore())
	m := NewManager(state)
	require.NoError(t, m.Login(ctx, signedToken(t, time.Now().Add(time.Hour)), testUser()))

	// A fresh manager over the same store picks the session back up.
	m2 := NewManager(state)
	assert.True(t, m2.IsAuthenticated())
}

func TestExpiredTokenIsNotAuthenticated(t *testing.T) {
	ctx := context.Background()
	state := appstate.New(appstate.NewMemoryStore())
	m := NewManager(state)

	require.NoError(t, m.Login(ctx, signedToken(t, time.Now().Add(-time.Hour)), testUser()))
	assert.False(t, m.IsAuthenticated())
}

func TestOpaqueTokenTreatedAsLive(t *testing.T) {
	// The backend stays the authority; a token we cannot parse is still
	// presented rather than dropped.
	ctx := context.Background()
	state := appstate.New(appstate.NewMemoryStore())
	m := NewManager(state)

	require.NoError(t, m.Login(ctx, "opaque-token", testUser()))
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "opaque-token", m.Token())
}

func TestLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	state := appstate.New(appstate.NewMemoryStore())
	m := NewManager(state)
	require.NoError(t, m.Login(ctx, signedToken(t, time.Now().Add(time.Hour)), testUser()))
	m.StampPostLoginAction(ctx, "continueServiceSearch")

	redirect := m.Logout(ctx)
	assert.Equal(t, HomeRoute, redirect)
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
	assert.Nil(t, m.CurrentUser())
	assert.Empty(t, m.TakePostLoginAction(ctx))
}

func TestUpdateUserKeepsToken(t *testing.T) {
	ctx := context.Background()
	state := appstate.New(appstate.NewMemoryStore())
	m := NewManager(state)
	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, m.Login(ctx, token, testUser()))

	upgraded := testUser()
	upgraded.UserType = models.UserTypeProvider
	require.NoError(t, m.UpdateUser(ctx, upgraded))

	assert.Equal(t, token, m.Token())
	require.NotNil(t, m.CurrentUser())
	assert.True(t, m.CurrentUser().IsProvider())
}

func TestTakePostLoginActionIsOneShot(t *testing.T) {
	ctx := context.Background()
	state := appstate.New(appstate.NewMemoryStore())
	m := NewManager(state)

	m.StampPostLoginAction(ctx, "continueServiceSearch")
	assert.Equal(t, "continueServiceSearch", m.TakePostLoginAction(ctx))
	assert.Empty(t, m.TakePostLoginAction(ctx))
}
