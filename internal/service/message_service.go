package service

import (
	"context"
	"strings"

	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/repository"
)

type MessageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Send stores a message from the caller.
func (s *MessageService) Send(ctx context.Context, d policy.Decision, recipientID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if recipientID == "" {
		return nil, invalid("recipientId", "is required")
	}
	if content == "" {
		return nil, invalid("content", "is required")
	}

	m, err := s.messages.Create(ctx, &models.Message{
		SenderID:    d.CallerID(),
		RecipientID: recipientID,
		Content:     content,
	})
	if err != nil {
		return nil, storeError(err, "message")
	}
	return m, nil
}

// Conversation returns the messages between the caller and another user in
// both directions, newest first.
func (s *MessageService) Conversation(ctx context.Context, d policy.Decision, otherID string) ([]*models.Message, error) {
	return s.messages.Conversation(ctx, d.CallerID(), otherID)
}

// MarkRead flags a message as read. Only its recipient may do so.
func (s *MessageService) MarkRead(ctx context.Context, d policy.Decision, id string) error {
	m, err := s.messages.Get(ctx, id)
	if err != nil {
		return storeError(err, "message")
	}
	if m.RecipientID != d.CallerID() {
		return ErrForbidden
	}
	return storeError(s.messages.MarkRead(ctx, id), "message")
}
