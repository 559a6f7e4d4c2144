package handlers

import (
	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/v1/message"
	"github.com/osa911/clipdesk/internal/api/mapper"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/service"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *gin.Context) {
	req, _ := middleware.Validated[message.SendRequest](c, constants.ContextKeySendMessage)

	sent, err := h.messageService.Send(c.Request.Context(), middleware.GetDecision(c), req.RecipientID, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleCreated(c, mapper.MessageToResponse(sent))
}

// Conversation lists messages between the caller and :userId, newest first
func (h *MessageHandler) Conversation(c *gin.Context) {
	messages, err := h.messageService.Conversation(c.Request.Context(), middleware.GetDecision(c), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.MessagesToResponses(messages))
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.messageService.MarkRead(c.Request.Context(), middleware.GetDecision(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleMessage(c, "Message marked as read")
}
