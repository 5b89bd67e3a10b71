// dashboard/provider.go
package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"fundilink/backend"
	"fundilink/models"
	"fundilink/utils"
)

// ProviderSnapshot is the latest fetched provider dashboard data.
type ProviderSnapshot struct {
	Stats         *models.ProviderStats        `json:"stats"`
	Requests      []models.ServiceRequest      `json:"requests"`
	Conversations []models.ConversationSummary `json:"conversations"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

// ProviderDashboard mirrors ClientDashboard for the provider side, plus the
// request accept/decline actions and the profile and services editors.
type ProviderDashboard struct {
	mu       sync.Mutex
	api      *backend.Client
	snapshot ProviderSnapshot
}

func NewProviderDashboard(api *backend.Client) *ProviderDashboard {
	return &ProviderDashboard{api: api}
}

func (d *ProviderDashboard) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	d.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Refresh(ctx)
		}
	}
}

func (d *ProviderDashboard) Refresh(ctx context.Context) {
	logger := utils.GetLogger()

	if stats, err := d.api.ProviderStats(ctx); err != nil {
		logger.Warn("Provider stats fetch failed", zap.Error(err))
	} else {
		d.mu.Lock()
		d.snapshot.Stats = stats
		d.mu.Unlock()
	}

	if requests, err := d.api.ProviderRequests(ctx); err != nil {
		logger.Warn("Provider requests fetch failed", zap.Error(err))
	} else {
		d.mu.Lock()
		d.snapshot.Requests = requests
		d.mu.Unlock()
	}

	if conversations, err := d.api.ProviderConversations(ctx); err != nil {
		logger.Warn("Provider conversations fetch failed", zap.Error(err))
	} else {
		d.mu.Lock()
		d.snapshot.Conversations = conversations
		d.mu.Unlock()
	}

	d.mu.Lock()
	d.snapshot.UpdatedAt = time.Now()
	d.mu.Unlock()
}

func (d *ProviderDashboard) Snapshot() ProviderSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot
}

// AcceptRequest accepts a pending service request and refreshes the
// snapshot immediately.
func (d *ProviderDashboard) AcceptRequest(ctx context.Context, requestID int) error {
	if err := d.api.AcceptRequest(ctx, requestID); err != nil {
		return err
	}
	d.Refresh(ctx)
	return nil
}

// DeclineRequest declines a pending service request.
func (d *ProviderDashboard) DeclineRequest(ctx context.Context, requestID int) error {
	if err := d.api.DeclineRequest(ctx, requestID); err != nil {
		return err
	}
	d.Refresh(ctx)
	return nil
}

// Profile fetches the editable provider profile.
func (d *ProviderDashboard) Profile(ctx context.Context) (*models.ProviderProfile, error) {
	return d.api.ProviderProfile(ctx)
}

// UpdateProfile saves profile edits upstream.
func (d *ProviderDashboard) UpdateProfile(ctx context.Context, profile models.ProviderProfile) error {
	if err := d.api.UpdateProviderProfile(ctx, profile); err != nil {
		return err
	}
	d.Refresh(ctx)
	return nil
}

// Services fetches the provider's service selection.
func (d *ProviderDashboard) Services(ctx context.Context) (*models.ProviderServices, error) {
	return d.api.ProviderServicesList(ctx)
}

// UpdateServices saves service selection edits upstream.
func (d *ProviderDashboard) UpdateServices(ctx context.Context, services models.ProviderServices) error {
	return d.api.UpdateProviderServices(ctx, services)
}
