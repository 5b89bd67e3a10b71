package backend

import (
	"context"
	"fmt"

	"fundilink/models"
)

// Provider dashboard surface. All calls require authentication.

func (c *Client) ProviderStats(ctx context.Context) (*models.ProviderStats, error) {
	var stats models.ProviderStats
	if err := c.getJSON(ctx, "/api/providers/dashboard/stats", true, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ProviderRequests(ctx context.Context) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	if err := c.getJSON(ctx, "/api/providers/requests", true, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) ProviderConversations(ctx context.Context) ([]models.ConversationSummary, error) {
	var conversations []models.ConversationSummary
	if err := c.getJSON(ctx, "/api/providers/conversations", true, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (c *Client) AcceptRequest(ctx context.Context, requestID int) error {
	return c.postJSON(ctx, fmt.Sprintf("/api/providers/requests/%d/accept", requestID), true, map[string]interface{}{}, nil)
}

func (c *Client) DeclineRequest(ctx context.Context, requestID int) error {
	return c.postJSON(ctx, fmt.Sprintf("/api/providers/requests/%d/decline", requestID), true, map[string]interface{}{}, nil)
}

func (c *Client) ProviderProfile(ctx context.Context) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	if err := c.getJSON(ctx, "/api/providers/profile", true, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProviderProfile(ctx context.Context, profile models.ProviderProfile) error {
	return c.putJSON(ctx, "/api/providers/profile", true, profile, nil)
}

func (c *Client) ProviderServicesList(ctx context.Context) (*models.ProviderServices, error) {
	var services models.ProviderServices
	if err := c.getJSON(ctx, "/api/providers/services", true, &services); err != nil {
		return nil, err
	}
	return &services, nil
}

func (c *Client) UpdateProviderServices(ctx context.Context, services models.ProviderServices) error {
	return c.putJSON(ctx, "/api/providers/services", true, services, nil)
}
