package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundilink/backend"
)

func jsonDecode(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

type noTokens struct{}

func (noTokens) Token() string { return "" }

func newService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(backend.NewClient(srv.URL, 2*time.Second, noTokens{}))
}

func TestAnalyzeRequiresDescription(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("empty description must not reach the upstream")
	})
	for _, desc := range []string{"", "   ", "\n\t"} {
		_, err := svc.Analyze(context.Background(), desc)
		assert.Error(t, err, "description %q", desc)
	}
}

func TestAnalyzeConfidenceTiers(t *testing.T) {
	tests := []struct {
		confidence float64
		tier       string
	}{
		{confidence: 0.1, tier: "low"},
		{confidence: 0.39, tier: "low"},
		{confidence: 0.4, tier: "medium"},
		{confidence: 0.69, tier: "medium"},
		{confidence: 0.7, tier: "high"},
		{confidence: 0.95, tier: "high"},
	}
	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"session_id":"s1","ai_suggested_category":"plumbing","confidence":%v}`, tt.confidence)
			})
			view, err := svc.Analyze(context.Background(), "water everywhere")
			require.NoError(t, err)
			assert.Equal(t, tt.tier, view.Highlight.ConfidenceTier)
			assert.Equal(t, "plumbing", view.Highlight.Category)
		})
	}
}

func TestSubmitRequiresCategory(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid submission must not reach the upstream")
	})
	_, err := svc.Submit(context.Background(), "burst pipe", "", "", nil)
	assert.Error(t, err)
}

func TestSubmitCarriesSessionForward(t *testing.T) {
	var sawSession bool
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, jsonDecode(r, &body))
		sawSession = body["session_id"] == "s1"
		w.Write([]byte(`{"session_id":"s1","final_category":"plumbing"}`))
	})
	result, err := svc.Submit(context.Background(), "burst pipe", "plumbing", "s1", nil)
	require.NoError(t, err)
	assert.True(t, sawSession)
	assert.Equal(t, "plumbing", result.FinalCategory)
}
