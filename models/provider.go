// models/provider.go
package models

import "fmt"

// ProviderMatch is one entry of a provider search result as returned by the
// matching endpoint. The matching service replaces the whole slice on every
// server query; client-side sorting reorders it in place without touching
// any field.
type ProviderMatch struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	BusinessName    string   `json:"business_name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	PrimaryLocation string   `json:"primary_location"`
	DistanceKm      float64  `json:"distance_km"`
	AverageRating   float64  `json:"average_rating"`
	TotalReviews    int      `json:"total_reviews"`
	HourlyRateMin   float64  `json:"hourly_rate_min"`
	HourlyRateMax   float64  `json:"hourly_rate_max"`
	ResponseTime    string   `json:"response_time"`
	Specialties     []string `json:"specialties"`
	Description     string   `json:"description"`
}

// SearchConstraints are the server-side filter predicates. The backend is
// the source of truth for filtering; changing these re-queries it.
type SearchConstraints struct {
	MaxDistanceKm float64  `json:"max_distance"`
	MinRating     float64  `json:"min_rating"`
	MaxRate       *float64 `json:"max_rate,omitempty"`
}

// DefaultSearchConstraints mirror the initial filter selects.
func DefaultSearchConstraints() SearchConstraints {
	return SearchConstraints{MaxDistanceKm: 50.0, MinRating: 0.0}
}

// Validate bounds the constraints to what the filter controls can express.
func (c SearchConstraints) Validate() error {
	if c.MaxDistanceKm <= 0 || c.MaxDistanceKm > 50 {
		return fmt.Errorf("max distance must be between 0 and 50 km")
	}
	if c.MinRating < 0 || c.MinRating > 5 {
		return fmt.Errorf("min rating must be between 0 and 5")
	}
	if c.MaxRate != nil && *c.MaxRate <= 0 {
		return fmt.Errorf("max rate must be positive")
	}
	return nil
}

// PendingSearch is a provider search deferred because the user was not
// authenticated. It is stashed in the state store and replayed exactly once
// after a successful login.
type PendingSearch struct {
	Detection   DetectionResult `json:"detection_result"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	SessionID   string          `json:"session_id"`
}
