package backend

import (
	"context"
	"fmt"

	"fundilink/models"
)

// FindProviders asks the matching endpoint for candidate providers in a
// category, filtered server-side by the given constraints. Requires
// authentication.
func (c *Client) FindProviders(ctx context.Context, category string, constraints models.SearchConstraints) ([]models.ProviderMatch, error) {
	body := map[string]interface{}{
		"category":     category,
		"max_distance": constraints.MaxDistanceKm,
		"min_rating":   constraints.MinRating,
	}
	if constraints.MaxRate != nil {
		body["max_rate"] = *constraints.MaxRate
	}

	var providers []models.ProviderMatch
	if err := c.postJSON(ctx, "/api/matching/find-providers", true, body, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// ChatMessages fetches the full message list of a conversation.
func (c *Client) ChatMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	path := fmt.Sprintf("/api/matching/chat/%s", sessionID)
	if err := c.getJSON(ctx, path, true, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendChatMessage posts one message into a conversation.
func (c *Client) SendChatMessage(ctx context.Context, providerID int, messageText, sessionID string) error {
	body := map[string]interface{}{
		"provider_id":  providerID,
		"message_text": messageText,
		"session_id":   sessionID,
	}
	return c.postJSON(ctx, "/api/matching/chat/send", true, body, nil)
}

// SubmitReview posts a 1-5 star rating with an optional comment.
func (c *Client) SubmitReview(ctx context.Context, providerID, rating int, comment string) error {
	body := map[string]interface{}{
		"provider_id": providerID,
		"rating":      rating,
		"comment":     nullableString(comment),
	}
	return c.postJSON(ctx, "/api/matching/review", true, body, nil)
}
