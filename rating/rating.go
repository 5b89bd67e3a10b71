// rating/rating.go
package rating

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fundilink/backend"
	"fundilink/matching"
	"fundilink/utils"
)

// Service submits provider reviews. After a review lands it refreshes the
// active provider search, if any, so the new rating shows up in the list.
type Service struct {
	api     *backend.Client
	matches *matching.Service
}

func NewService(api *backend.Client, matches *matching.Service) *Service {
	return &Service{api: api, matches: matches}
}

// View is the rating control state for a provider.
type View struct {
	ProviderID int    `json:"provider_id"`
	Stars      int    `json:"stars"`
	Comment    string `json:"comment"`
	CanSubmit  bool   `json:"can_submit"`
}

// BuildView derives the control state: submission stays disabled until a
// star count is chosen.
func BuildView(providerID, stars int, comment string) View {
	return View{
		ProviderID: providerID,
		Stars:      stars,
		Comment:    comment,
		CanSubmit:  stars >= 1 && stars <= 5,
	}
}

// SubmitRating posts a review. Stars are mandatory, the comment optional.
func (s *Service) SubmitRating(ctx context.Context, providerID, stars int, comment string) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("please select a star rating")
	}
	if providerID <= 0 {
		return fmt.Errorf("no provider selected")
	}

	if err := s.api.SubmitReview(ctx, providerID, stars, strings.TrimSpace(comment)); err != nil {
		return err
	}

	// Pull the updated averages into the cached search results. A refresh
	// failure does not undo the submitted review.
	if err := s.matches.Refresh(ctx); err != nil {
		utils.GetLogger().Warn("Provider list refresh after review failed", zap.Error(err))
	}
	return nil
}
