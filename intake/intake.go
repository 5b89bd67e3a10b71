// intake/intake.go
package intake

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fundilink/backend"
	"fundilink/models"
	"fundilink/utils"
)

// Service runs problem intake: the AI-assist analysis that suggests a
// category, and the full submission once the visitor has picked one.
type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// AnalysisView pairs a detection result with the category tile to light up.
type AnalysisView struct {
	Detection models.DetectionResult   `json:"detection"`
	Highlight models.CategoryHighlight `json:"highlight"`
}

// Analyze sends the description alone so the backend suggests a category.
// A low-confidence suggestion still comes back; it never blocks the flow.
func (s *Service) Analyze(ctx context.Context, description string) (*AnalysisView, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("please describe your problem first")
	}

	detection, err := s.api.DetectProblem(ctx, backend.DetectRequest{Description: description})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Problem analyzed",
		zap.String("suggested", detection.AISuggestedCategory),
		zap.Float64("confidence", detection.Confidence))

	return &AnalysisView{
		Detection: *detection,
		Highlight: models.CategoryHighlight{
			Category:       detection.AISuggestedCategory,
			Confidence:     detection.Confidence,
			ConfidenceTier: confidenceTier(detection.Confidence),
		},
	}, nil
}

// Submit files the problem with a chosen category. The session id from a
// prior Analyze run is carried forward so the backend links the two.
func (s *Service) Submit(ctx context.Context, description, category, sessionID string, images []backend.ImageAttachment) (*models.DetectionResult, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("please describe your problem first")
	}
	if category == "" {
		return nil, fmt.Errorf("please select a service category")
	}

	return s.api.DetectProblem(ctx, backend.DetectRequest{
		Description:      description,
		SelectedCategory: category,
		SessionID:        sessionID,
		Images:           images,
	})
}

func confidenceTier(confidence float64) string {
	switch {
	case confidence >= 0.7:
		return "high"
	case confidence >= 0.4:
		return "medium"
	default:
		return "low"
	}
}
