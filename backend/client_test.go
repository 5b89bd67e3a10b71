package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundilink/models"
)

type staticTokens struct{ token string }

func (s staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, staticTokens{token: token})
}

func TestProtectedCallWithoutToken(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not reach the server without a token")
	})
	_, err := c.ClientStats(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	_, err := c.ClientStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthorizedMapsToAuthRequired(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newTestClient(t, "stale", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		_, err := c.ClientStats(context.Background())
		assert.ErrorIs(t, err, ErrAuthRequired, "status %d", status)
	}
}

func TestStringDetailKeptVerbatim(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Email already registered"}`))
	})
	_, err := c.Login(context.Background(), Credentials{Email: "a@b.co", Password: "x"})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Email already registered", apiErr.Detail)
}

func TestValidationDetailBecomesFieldErrors(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[
			{"loc":["body","minRate"],"msg":"field required"},
			{"loc":["body","selectedServices",0],"msg":"invalid service"}
		]}`))
	})
	_, err := c.Apply(context.Background(), models.SignupForm{})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Len(t, apiErr.Fields, 2)
	assert.Equal(t, models.FieldError{Field: "minRate", Message: "field required"}, apiErr.Fields[0])
	assert.Equal(t, models.FieldError{Field: "0", Message: "invalid service"}, apiErr.Fields[1])
}

func TestServerErrorMapsToUnavailable(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	})
	_, err := c.ClientStats(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUnreachableServerMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewClient(srv.URL, time.Second, staticTokens{token: "tok"})
	_, err := c.ClientStats(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDetectProblemSendsJSONWithoutImages(t *testing.T) {
	var gotContentType string
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"session_id":"s1","ai_suggested_category":"plumbing","confidence":0.9}`))
	})
	result, err := c.DetectProblem(context.Background(), DetectRequest{Description: "burst pipe"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "plumbing", result.AISuggestedCategory)
}

func TestDetectProblemSendsMultipartWithImages(t *testing.T) {
	var gotContentType string
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "burst pipe", r.FormValue("description"))
		require.Len(t, r.MultipartForm.File["images"], 1)
		w.Write([]byte(`{"session_id":"s1"}`))
	})
	_, err := c.DetectProblem(context.Background(), DetectRequest{
		Description: "burst pipe",
		Images:      []ImageAttachment{{Filename: "pipe.jpg", Data: []byte{0xFF, 0xD8}}},
	})
	require.NoError(t, err)
	assert.Contains(t, gotContentType, "multipart/form-data")
}

func TestApplySendsSelectionsAsJSONFields(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "/api/provider/apply", r.URL.Path)
		assert.JSONEq(t, `["plumbing"]`, r.FormValue("selectedCategories"))
		assert.JSONEq(t, `["plumbing:Leak Repair"]`, r.FormValue("selectedServices"))
		assert.Equal(t, "Wanjiku Kamau", r.FormValue("fullName"))
		w.Write([]byte(`{"message":"received","user_transition":true,"user_data":{"id":7,"user_type":"provider"},"redirect_to":"/provider-dashboard"}`))
	})

	result, err := c.Apply(context.Background(), models.SignupForm{
		FullName:           "Wanjiku Kamau",
		SelectedCategories: []string{"plumbing"},
		SelectedServices:   []string{"plumbing:Leak Repair"},
	})
	require.NoError(t, err)
	assert.True(t, result.UserTransition)
	require.NotNil(t, result.UserData)
	assert.True(t, result.UserData.IsProvider())
	assert.Equal(t, "/provider-dashboard", result.RedirectTo)
}
