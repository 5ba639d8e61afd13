package repository

import (
	"context"
	"errors"

	"batoo/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetBetween returns the full history of a pair, oldest first.
func (r *MessageRepository) GetBetween(ctx context.Context, userID, peerID int64) ([]domain.Message, error) {
	var msgs []domain.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// SentPeerIDs projects the distinct receivers of a user's sent messages.
func (r *MessageRepository) SentPeerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Distinct("receiver_id").
		Where("sender_id = ?", userID).
		Pluck("receiver_id", &ids).Error
	return ids, err
}

// ReceivedPeerIDs projects the distinct senders of a user's received messages.
func (r *MessageRepository) ReceivedPeerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Distinct("sender_id").
		Where("receiver_id = ?", userID).
		Pluck("sender_id", &ids).Error
	return ids, err
}

// LastBetween returns the newest message of a pair, or nil when the pair has
// no history. Used to order the conversation list.
func (r *MessageRepository) LastBetween(ctx context.Context, userID, peerID int64) (*domain.Message, error) {
	var m domain.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
