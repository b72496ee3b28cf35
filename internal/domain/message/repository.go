package message

import (
	"context"

	"github.com/handykonnect/handykonnect-api/internal/models"
)

type Conversation struct {
	ConversationID string         `json:"conversation_id"`
	LastMessage    models.Message `json:"last_message"`
}

type Repository interface {
	CreateMessage(
		ctx context.Context,
		m *models.Message,
	) error

	ListByConversation(
		ctx context.Context,
		conversationID string,
	) ([]models.Message, error)

	// ListConversations returns each distinct conversation with its most
	// recent message, newest conversations first.
	ListConversations(
		ctx context.Context,
	) ([]Conversation, error)
}
