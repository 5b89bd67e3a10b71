// matching/matching.go
package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"fundilink/appstate"
	"fundilink/backend"
	"fundilink/models"
	"fundilink/session"
	"fundilink/utils"
)

// Service owns the cached provider result set for the active search. The
// cache is replaced wholesale on every server query; ApplySort reorders it
// locally without touching the server.
type Service struct {
	mu       sync.Mutex
	api      *backend.Client
	state    *appstate.State
	sessions *session.Manager

	matches     []models.ProviderMatch
	category    string
	constraints models.SearchConstraints
}

func NewService(api *backend.Client, state *appstate.State, sessions *session.Manager) *Service {
	return &Service{
		api:         api,
		state:       state,
		sessions:    sessions,
		constraints: models.DefaultSearchConstraints(),
	}
}

// FindProviders runs a provider search for the detected category. When the
// visitor is not logged in, the search is stashed so it can be replayed once
// after login, and ErrAuthRequired is returned for the caller to surface.
func (s *Service) FindProviders(ctx context.Context, detection models.DetectionResult, description string) ([]models.ProviderMatch, error) {
	category := detection.FinalCategory
	if category == "" {
		category = detection.AISuggestedCategory
	}
	if category == "" {
		return nil, fmt.Errorf("no category to search for")
	}

	if !s.sessions.IsAuthenticated() {
		pending := models.PendingSearch{
			Detection:   detection,
			Description: description,
			Category:    category,
			SessionID:   detection.SessionID,
		}
		if err := s.state.SaveJSON(ctx, appstate.KeyPendingSearch, pending); err != nil {
			utils.GetLogger().Error("Failed to stash pending search", zap.Error(err))
		}
		s.sessions.StampPostLoginAction(ctx, "continueServiceSearch")
		return nil, backend.ErrAuthRequired
	}

	return s.query(ctx, category, models.DefaultSearchConstraints())
}

// ReplayPendingSearch executes a search stashed before login. The stash is
// deleted before the query runs so a stored search fires at most once, even
// if the query itself fails.
func (s *Service) ReplayPendingSearch(ctx context.Context) ([]models.ProviderMatch, bool, error) {
	if !s.sessions.IsAuthenticated() {
		return nil, false, nil
	}

	var pending models.PendingSearch
	if !s.state.LoadJSON(ctx, appstate.KeyPendingSearch, &pending) {
		return nil, false, nil
	}
	if err := s.state.Clear(ctx, appstate.KeyPendingSearch); err != nil {
		utils.GetLogger().Error("Failed to clear pending search", zap.Error(err))
	}

	matches, err := s.query(ctx, pending.Category, models.DefaultSearchConstraints())
	if err != nil {
		return nil, true, err
	}
	return matches, true, nil
}

// ApplyFilters re-queries the server with the given constraints and replaces
// the cached result set. Filtering is never done locally.
func (s *Service) ApplyFilters(ctx context.Context, constraints models.SearchConstraints) ([]models.ProviderMatch, error) {
	if err := constraints.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	category := s.category
	s.mu.Unlock()
	if category == "" {
		return nil, fmt.Errorf("no active search to filter")
	}

	return s.query(ctx, category, constraints)
}

func (s *Service) query(ctx context.Context, category string, constraints models.SearchConstraints) ([]models.ProviderMatch, error) {
	matches, err := s.api.FindProviders(ctx, category, constraints)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.matches = matches
	s.category = category
	s.constraints = constraints
	out := s.snapshot()
	s.mu.Unlock()

	utils.GetLogger().Info("Provider search completed",
		zap.String("category", category),
		zap.Int("matches", len(matches)))
	return out, nil
}

// ApplySort reorders the cached matches in place. Distance and rate sort
// ascending, rating and review count descending; ties keep their server
// order. An unknown key leaves the cache untouched. No server call.
func (s *Service) ApplySort(key string) []models.ProviderMatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "distance":
		sort.SliceStable(s.matches, func(i, j int) bool {
			return s.matches[i].DistanceKm < s.matches[j].DistanceKm
		})
	case "rate":
		sort.SliceStable(s.matches, func(i, j int) bool {
			return s.matches[i].HourlyRateMin < s.matches[j].HourlyRateMin
		})
	case "rating":
		sort.SliceStable(s.matches, func(i, j int) bool {
			return s.matches[i].AverageRating > s.matches[j].AverageRating
		})
	case "reviews":
		sort.SliceStable(s.matches, func(i, j int) bool {
			return s.matches[i].TotalReviews > s.matches[j].TotalReviews
		})
	}

	out := make([]models.ProviderMatch, len(s.matches))
	copy(out, s.matches)
	return out
}

// Matches returns a copy of the cached result set.
func (s *Service) Matches() []models.ProviderMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Constraints returns the constraints behind the cached result set.
func (s *Service) Constraints() models.SearchConstraints {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.constraints
}

// Category returns the category behind the cached result set.
func (s *Service) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// Refresh re-runs the active query with the active constraints. Used after
// a review lands so the updated rating shows up.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	category := s.category
	constraints := s.constraints
	s.mu.Unlock()
	if category == "" {
		return nil
	}
	_, err := s.query(ctx, category, constraints)
	return err
}

// snapshot copies the cached slice. Callers must hold s.mu.
func (s *Service) snapshot() []models.ProviderMatch {
	out := make([]models.ProviderMatch, len(s.matches))
	copy(out, s.matches)
	return out
}

// FormatDistance renders a distance for display, switching to metres under
// one kilometre.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0fm away", km*1000)
	}
	return fmt.Sprintf("%.1fkm away", km)
}

// FormatResponseTime maps the wire response-time keys to display text.
func FormatResponseTime(key string) string {
	switch key {
	case "same_day":
		return "Responds same day"
	case "within_48h":
		return "Responds within 48 hours"
	case "within_week":
		return "Responds within a week"
	default:
		return strings.ReplaceAll(key, "_", " ")
	}
}
