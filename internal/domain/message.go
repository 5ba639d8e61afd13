package domain

import "time"

// Message is one direct message in the flat messages table; conversations
// are derived from it, not stored.
type Message struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Message) TableName() string { return "messages" }
