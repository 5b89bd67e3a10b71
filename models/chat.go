// models/chat.go
package models

import "time"

const (
	SenderTypeUser     = "user"
	SenderTypeProvider = "provider"
)

// ChatMessage is one message of a per-(session, provider) conversation.
// Conversations are append-only from the gateway's point of view; every
// fetch replaces the full list.
type ChatMessage struct {
	ID          int       `json:"id"`
	SenderType  string    `json:"sender_type"`
	SenderName  string    `json:"sender_name"`
	MessageText string    `json:"message_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConversationView is what the chat panel renders. An empty conversation
// gets an explicit placeholder rather than an empty list.
type ConversationView struct {
	SessionID   string        `json:"session_id"`
	Messages    []ChatMessage `json:"messages"`
	Placeholder string        `json:"placeholder,omitempty"`
}
