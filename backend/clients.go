package backend

import (
	"context"
	"fmt"

	"fundilink/models"
)

// Client-side dashboard surface. All calls require authentication.

func (c *Client) ClientStats(ctx context.Context) (*models.ClientStats, error) {
	var stats models.ClientStats
	if err := c.getJSON(ctx, "/api/clients/dashboard/stats", true, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ClientRequests(ctx context.Context) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	if err := c.getJSON(ctx, "/api/clients/requests", true, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) ClientConversations(ctx context.Context) ([]models.ConversationSummary, error) {
	var conversations []models.ConversationSummary
	if err := c.getJSON(ctx, "/api/clients/conversations", true, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (c *Client) ClientActivity(ctx context.Context) ([]models.ActivityEntry, error) {
	var activity []models.ActivityEntry
	if err := c.getJSON(ctx, "/api/clients/activity", true, &activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (c *Client) CancelRequest(ctx context.Context, requestID int) error {
	return c.postJSON(ctx, fmt.Sprintf("/api/clients/requests/%d/cancel", requestID), true, map[string]interface{}{}, nil)
}

// StartConversation opens a conversation with a provider and returns the
// session id the chat endpoints expect.
func (c *Client) StartConversation(ctx context.Context, providerID int) (string, error) {
	body := map[string]interface{}{"provider_id": providerID}
	var out struct {
		SessionID string `json:"session_id"`
	}
	if err := c.postJSON(ctx, "/api/conversations/start", true, body, &out); err != nil {
		return "", err
	}
	return out.SessionID, nil
}
