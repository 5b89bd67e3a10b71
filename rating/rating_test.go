package rating

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundilink/appstate"
	"fundilink/backend"
	"fundilink/matching"
	"fundilink/models"
	"fundilink/session"
)

func newFixture(t *testing.T, handler http.HandlerFunc) (*Service, *session.Manager) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	state := appstate.New(appstate.NewMemoryStore())
	sessions := session.NewManager(state)
	api := backend.NewClient(srv.URL, 2*time.Second, sessions)
	matches := matching.NewService(api, state, sessions)
	return NewService(api, matches), sessions
}

func TestBuildViewGatesSubmission(t *testing.T) {
	tests := []struct {
		stars     int
		canSubmit bool
	}{
		{stars: 0, canSubmit: false},
		{stars: 1, canSubmit: true},
		{stars: 5, canSubmit: true},
		{stars: 6, canSubmit: false},
		{stars: -1, canSubmit: false},
	}
	for _, tt := range tests {
		view := BuildView(9, tt.stars, "great work")
		assert.Equal(t, tt.canSubmit, view.CanSubmit, "stars=%d", tt.stars)
	}
}

func TestSubmitRatingValidatesStars(t *testing.T) {
	svc, _ := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid rating must not reach the upstream")
	})
	for _, stars := range []int{0, 6, -3} {
		err := svc.SubmitRating(context.Background(), 9, stars, "")
		assert.Error(t, err, "stars=%d", stars)
	}
}

func TestSubmitRatingPostsReview(t *testing.T) {
	var gotBody map[string]interface{}
	svc, sessions := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/review") {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		}
		w.Write([]byte(`{}`))
	})
	require.NoError(t, sessions.Login(context.Background(), "tok",
		models.User{ID: 1, UserType: models.UserTypeClient}))

	require.NoError(t, svc.SubmitRating(context.Background(), 9, 4, "  solid work  "))
	assert.EqualValues(t, 9, gotBody["provider_id"])
	assert.EqualValues(t, 4, gotBody["rating"])
	assert.Equal(t, "solid work", gotBody["comment"])
}

func TestSubmitRatingOmitsEmptyComment(t *testing.T) {
	var gotBody map[string]interface{}
	svc, sessions := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/review") {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		}
		w.Write([]byte(`{}`))
	})
	require.NoError(t, sessions.Login(context.Background(), "tok",
		models.User{ID: 1, UserType: models.UserTypeClient}))

	require.NoError(t, svc.SubmitRating(context.Background(), 9, 5, "   "))
	assert.Nil(t, gotBody["comment"])
}
