// models/detection.go
package models

// Urgency levels reported by the backend classifier.
const (
	UrgencyLow       = "low"
	UrgencyMedium    = "medium"
	UrgencyHigh      = "high"
	UrgencyEmergency = "emergency"
)

// DetectionResult is the outcome of one problem-detection call.
// It is read-only once created; Confidence is in [0,1].
type DetectionResult struct {
	SessionID           string   `json:"session_id"`
	AISuggestedCategory string   `json:"ai_suggested_category"`
	Confidence          float64  `json:"confidence"`
	FinalCategory       string   `json:"final_category"`
	UrgencyLevel        string   `json:"urgency_level"`
	KeywordsMatched     []string `json:"keywords_matched"`
	NextSteps           []string `json:"next_steps"`
}

// CategoryHighlight tells the UI which category tile to emphasise after an
// AI-assist run. The suggestion never blocks the flow.
type CategoryHighlight struct {
	Category       string  `json:"category"`
	Confidence     float64 `json:"confidence"`
	ConfidenceTier string  `json:"confidence_tier"` // low, medium, high
}
