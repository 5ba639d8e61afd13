package chat

import (
	"context"

	"batoo/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	GetBetween(ctx context.Context, userID, peerID int64) ([]domain.Message, error)
	SentPeerIDs(ctx context.Context, userID int64) ([]int64, error)
	ReceivedPeerIDs(ctx context.Context, userID int64) ([]int64, error)
	LastBetween(ctx context.Context, userID, peerID int64) (*domain.Message, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
