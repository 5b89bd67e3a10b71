// chat/chat.go
package chat

import (
	"context"
	"fmt"
	"strings"

	"fundilink/backend"
	"fundilink/models"
)

// Placeholder shown when a conversation has no messages yet.
const emptyPlaceholder = "No messages yet. Start the conversation!"

// Service loads and sends chat messages for a client-provider conversation.
// Every send is followed by a full reload; there is no optimistic append.
type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// LoadMessages fetches the full message list for a conversation. An empty
// conversation gets an explicit placeholder so the view never renders blank.
func (s *Service) LoadMessages(ctx context.Context, sessionID string) (*models.ConversationView, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("no conversation selected")
	}

	messages, err := s.api.ChatMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &models.ConversationView{SessionID: sessionID, Messages: messages}
	if len(messages) == 0 {
		view.Placeholder = emptyPlaceholder
	}
	return view, nil
}

// SendMessage posts a message and reloads the conversation so the caller
// renders exactly what the server stored.
func (s *Service) SendMessage(ctx context.Context, providerID int, text, sessionID string) (*models.ConversationView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if providerID <= 0 {
		return nil, fmt.Errorf("no provider selected")
	}
	if sessionID == "" {
		return nil, fmt.Errorf("no conversation selected")
	}

	if err := s.api.SendChatMessage(ctx, providerID, text, sessionID); err != nil {
		return nil, err
	}
	return s.LoadMessages(ctx, sessionID)
}
