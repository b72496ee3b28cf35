package messaging

import (
	"context"
	"strings"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	"github.com/handykonnect/handykonnect-api/internal/audit"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/message"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SendMessageInput struct {
	Actor actor.Actor

	// ConversationID may be empty for clients; their support thread key is
	// derived. Admins must address an explicit conversation.
	ConversationID string
	Content        string
}

// ======================================================
// USE CASE
// ======================================================

type SendMessage struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events events.Publisher
}

func NewSendMessage(
	repo domain.Repository,
	audit *audit.Dispatcher,
	pub events.Publisher,
) *SendMessage {
	return &SendMessage{
		repo:   repo,
		audit:  audit,
		events: pub,
	}
}

func (uc *SendMessage) Execute(
	ctx context.Context,
	in SendMessageInput,
) (*models.Message, error) {

	if err := domain.ValidateContent(in.Content); err != nil {
		return nil, err
	}

	convID := in.ConversationID
	if !in.Actor.IsAdmin() {
		if convID == "" {
			convID = domain.SupportConversationID(in.Actor.ID)
		} else if !domain.IsSupportConversationOf(convID, in.Actor.ID) {
			return nil, httperr.ErrBusiness("conversation_forbidden")
		}
	} else if convID == "" {
		return nil, httperr.ErrBusiness("missing_conversation")
	}

	m := &models.Message{
		ConversationID: convID,
		SenderID:       in.Actor.ID,
		Content:        strings.TrimSpace(in.Content),
	}

	if err := uc.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	uc.events.Publish(events.Change{
		Table:          events.TableMessages,
		Action:         events.ActionInsert,
		RowID:          m.ID,
		ConversationID: m.ConversationID,
	})

	return m, nil
}
