// dashboard/client.go
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

// ClientSnapshot is the latest fetched client dashboard data. Sections
// update independently; a failed fetch keeps the previous section.
type ClientSnapshot struct {
	Stats         *models.ClientStats          `json:"stats"`
	Requests      []models.ServiceRequest      `json:"requests"`
	Conversations []models.ConversationSummary `json:"conversations"`
	Activity      []models.ActivityEntry       `json:"activity"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

// ClientDashboard polls the client dashboard endpoints on a wall-clock
// ticker and holds the latest snapshot for handler reads. Fetch errors are
// logged and swallowed; the next tick simply tries again.
type ClientDashboard struct {
	mu       sync.Mutex
	api      *backend.Client
	snapshot ClientSnapshot
}

func NewClientDashboard(api *backend.Client) *ClientDashboard {
	return &ClientDashboard{api: api}
}

// Run polls until the context is cancelled. One fetch round per tick; a
// slow round delays only its own snapshot, never the ticker.
func (d *ClientDashboard) Run(ctx context.Context, interval time.Duration) {
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

// Refresh fetches every section once, keeping whatever the last round had
// for sections that fail.
func (d *ClientDashboard) Refresh(ctx context.Context) {
	logger := utils.GetLogger()

	if stats, err := d.api.ClientStats(ctx); err != nil {
		logger.Warn("Client stats fetch failed", zap.Error(err))
	} else {
		d.mu.Lock()
		d.snapshot.Stats = stats
		d.mu.Unlock()
	}

	if requests, err := d.api.ClientRequests(ctx); err != nil {
		logger.Warn("Client requests fetch failed", zap.Error(err))
	} else {
		d.mu.Lock()
		d.snapshot.Requests = requests
		d.mu.Unlock()
	}

	if conversations, err := d.api.ClientConversations(ctx); err != nil {
		logger.Warn("Client conversations fetch failed", zap.Error(err))
	} else {
		d.mu.Lock()
		d.snapshot.Conversations = conversations
		d.mu.Unlock()
	}

	if activity, err := d.api.ClientActivity(ctx); err != nil {
		logger.Warn("Client activity fetch failed", zap.Error(err))
	} else {
		d.mu.Lock()
		d.snapshot.Activity = activity
		d.mu.Unlock()
	}

	d.mu.Lock()
	d.snapshot.UpdatedAt = time.Now()
	d.mu.Unlock()
}

// Snapshot returns the latest fetched data.
func (d *ClientDashboard) Snapshot() ClientSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot
}

// CancelRequest cancels a service request and refreshes the snapshot so
// the list reflects the change immediately rather than at the next tick.
func (d *ClientDashboard) CancelRequest(ctx context.Context, requestID int) error {
	if err := d.api.CancelRequest(ctx, requestID); err != nil {
		return err
	}
	d.Refresh(ctx)
	return nil
}

// StartConversation opens a chat with a provider and returns its session id.
func (d *ClientDashboard) StartConversation(ctx context.Context, providerID int) (string, error) {
	sessionID, err := d.api.StartConversation(ctx, providerID)
	if err != nil {
		return "", err
	}
	d.Refresh(ctx)
	return sessionID, nil
}
