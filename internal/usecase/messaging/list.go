package messaging

import (
	"context"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/message"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

func (uc *ListMessages) Execute(
	ctx context.Context,
	conversationID string,
	act actor.Actor,
) ([]models.Message, error) {

	if conversationID == "" && !act.IsAdmin() {
		conversationID = domain.SupportConversationID(act.ID)
	}

	if !act.IsAdmin() && !domain.IsSupportConversationOf(conversationID, act.ID) {
		return nil, httperr.ErrBusiness("conversation_forbidden")
	}

	return uc.repo.ListByConversation(ctx, conversationID)
}

func (uc *ListMessages) Conversations(
	ctx context.Context,
	act actor.Actor,
) ([]domain.Conversation, error) {
	if !act.IsAdmin() {
		return nil, httperr.ErrBusiness("admin_access_required")
	}
	return uc.repo.ListConversations(ctx)
}
