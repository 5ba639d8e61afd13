package chat

import (
	"context"
	"errors"
	"sort"
	"strings"

	"batoo/internal/domain"
	"batoo/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	messages MessageRepository
	users    UserReader
	hub      *Hub
}

func NewService(messages MessageRepository, users UserReader, hub *Hub) *Service {
	return &Service{messages: messages, users: users, hub: hub}
}

// SendMessage persists the message and pushes it to both participants' live
// connections. Delivery is best-effort; the message is stored either way.
func (s *Service) SendMessage(ctx context.Context, senderID int64, req SendMessageRequest) (*domain.Message, error) {
	if senderID == req.ReceiverID {
		return nil, ErrCannotMessageSelf
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.users.GetByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}

	m := &domain.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    content,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastMessage(senderID, req.ReceiverID, WSMessage{
			Type:       "message",
			ID:         m.ID,
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			Content:    m.Content,
			CreatedAt:  m.CreatedAt,
		})
	}

	return m, nil
}

func (s *Service) GetMessages(ctx context.Context, userID, peerID int64) ([]domain.Message, error) {
	return s.messages.GetBetween(ctx, userID, peerID)
}

// ListConversations derives the user's conversation list: the set union of
// everyone they sent to and everyone who sent to them, newest conversation
// first.
func (s *Service) ListConversations(ctx context.Context, userID int64) ([]Conversation, error) {
	sent, err := s.messages.SentPeerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	received, err := s.messages.ReceivedPeerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	peerSet := make(map[int64]struct{}, len(sent)+len(received))
	for _, id := range sent {
		peerSet[id] = struct{}{}
	}
	for _, id := range received {
		peerSet[id] = struct{}{}
	}

	convs := make([]Conversation, 0, len(peerSet))
	for peerID := range peerSet {
		conv := Conversation{PeerID: peerID}

		last, err := s.messages.LastBetween(ctx, userID, peerID)
		if err != nil {
			return nil, err
		}
		conv.LastMessage = last

		if peer, err := s.users.GetByID(ctx, peerID); err == nil {
			conv.PeerName = peer.Name
		}
		if s.hub != nil {
			conv.Online = s.hub.IsOnline(peerID)
		}

		convs = append(convs, conv)
	}

	sort.Slice(convs, func(i, j int) bool {
		a, b := convs[i].LastMessage, convs[j].LastMessage
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return convs, nil
}
