package mapper

import (
	"github.com/osa911/clipdesk/internal/api/dto/v1/message"
	"github.com/osa911/clipdesk/internal/models"
)

func MessageToResponse(m *models.Message) *message.Response {
	return &message.Response{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

func MessagesToResponses(messages []*models.Message) []*message.Response {
	result := make([]*message.Response, len(messages))
	for i, m := range messages {
		result[i] = MessageToResponse(m)
	}
	return result
}
