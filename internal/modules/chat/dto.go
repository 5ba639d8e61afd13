package chat

import (
	"time"

	"batoo/internal/domain"
)

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// Conversation is a derived view: one entry per distinct peer the user has
// exchanged messages with, carrying the newest message for ordering and
// preview.
type Conversation struct {
	PeerID      int64           `json:"peer_id"`
	PeerName    string          `json:"peer_name,omitempty"`
	Online      bool            `json:"online"`
	LastMessage *domain.Message `json:"last_message,omitempty"`
}

// WSMessage is the payload pushed over websocket connections.
type WSMessage struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
