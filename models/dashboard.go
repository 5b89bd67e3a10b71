// models/dashboard.go
package models

import "time"

// ClientStats are the card values on the client dashboard.
type ClientStats struct {
	ActiveRequests     int     `json:"active_requests"`
	CompletedRequests  int     `json:"completed_requests"`
	OpenConversations  int     `json:"open_conversations"`
	TotalSpent         float64 `json:"total_spent"`
}

// ProviderStats are the card values on the provider dashboard.
type ProviderStats struct {
	PendingRequests   int     `json:"pending_requests"`
	ActiveJobs        int     `json:"active_jobs"`
	CompletedJobs     int     `json:"completed_jobs"`
	AverageRating     float64 `json:"average_rating"`
	TotalReviews      int     `json:"total_reviews"`
	MonthlyEarnings   float64 `json:"monthly_earnings"`
	OpenConversations int     `json:"open_conversations"`
}

// ServiceRequest is one row of the requests list on either dashboard.
type ServiceRequest struct {
	ID          int       `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name,omitempty"`
	Urgency     string    `json:"urgency_level,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConversationSummary is one row of the conversations list.
type ConversationSummary struct {
	SessionID    string    `json:"session_id"`
	PartnerName  string    `json:"partner_name"`
	LastMessage  string    `json:"last_message"`
	UnreadCount  int       `json:"unread_count"`
	LastActivity time.Time `json:"last_activity"`
}

// ActivityEntry is one row of the client activity feed.
type ActivityEntry struct {
	Kind      string    `json:"kind"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// ProviderProfile is the editable provider profile on the dashboard.
type ProviderProfile struct {
	BusinessName  string  `json:"business_name"`
	Description   string  `json:"description"`
	Phone         string  `json:"phone"`
	ServiceRadius string  `json:"service_radius"`
	HourlyRateMin float64 `json:"hourly_rate_min"`
	HourlyRateMax float64 `json:"hourly_rate_max"`
	ResponseTime  string  `json:"response_time"`
}

// ProviderServices is the editable services selection on the dashboard.
type ProviderServices struct {
	Categories []string `json:"categories"`
	Services   []string `json:"services"`
}
