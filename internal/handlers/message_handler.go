package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/httpresp"
	ucMessaging "github.com/handykonnect/handykonnect-api/internal/usecase/messaging"
)

// ======================================================
// HANDLER
// ======================================================

type MessageHandler struct {
	sendUC *ucMessaging.SendMessage
	listUC *ucMessaging.ListMessages
}

func NewMessageHandler(sendUC *ucMessaging.SendMessage, listUC *ucMessaging.ListMessages) *MessageHandler {
	return &MessageHandler{
		sendUC: sendUC,
		listUC: listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SendMessageRequest struct {
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content" binding:"required"`
}

// ======================================================
// SEND
// ======================================================

func (h *MessageHandler) Send(c *gin.Context) {
	act := actorFrom(c)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Message content is required.")
		return
	}

	m, err := h.sendUC.Execute(c.Request.Context(), ucMessaging.SendMessageInput{
		Actor:          act,
		ConversationID: req.ConversationID,
		Content:        req.Content,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_send_message", "Could not send message.")
		return
	}

	c.JSON(201, m)
}

// ======================================================
// LIST
// ======================================================

func (h *MessageHandler) List(c *gin.Context) {
	act := actorFrom(c)
	conversationID := c.Query("conversation_id")

	messages, err := h.listUC.Execute(c.Request.Context(), conversationID, act)
	if err != nil {
		writeBusinessError(c, err, "failed_to_list_messages", "Could not load messages.")
		return
	}

	httpresp.List(c, messages)
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	act := actorFrom(c)

	conversations, err := h.listUC.Conversations(c.Request.Context(), act)
	if err != nil {
		writeBusinessError(c, err, "failed_to_list_conversations", "Could not load conversations.")
		return
	}

	httpresp.List(c, conversations)
}
