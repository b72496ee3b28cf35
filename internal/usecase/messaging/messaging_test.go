package messaging_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	"github.com/handykonnect/handykonnect-api/internal/audit"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/message"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/models"
	ucMessaging "github.com/handykonnect/handykonnect-api/internal/usecase/messaging"
)

// ------------------------------------------------------
// Mocks
// ------------------------------------------------------

type repoMock struct {
	messages []models.Message
	nextID   uint
}

func (m *repoMock) CreateMessage(ctx context.Context, msg *models.Message) error {
	m.nextID++
	msg.ID = m.nextID
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *repoMock) ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	var out []models.Message
	for _, msg := range m.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *repoMock) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	seen := make(map[string]bool)
	var out []domain.Conversation
	for i := len(m.messages) - 1; i >= 0; i-- {
		msg := m.messages[i]
		if seen[msg.ConversationID] {
			continue
		}
		seen[msg.ConversationID] = true
		out = append(out, domain.Conversation{ConversationID: msg.ConversationID, LastMessage: msg})
	}
	return out, nil
}

var _ domain.Repository = (*repoMock)(nil)

type publisherMock struct {
	changes []events.Change
}

func (m *publisherMock) Publish(change events.Change) {
	m.changes = append(m.changes, change)
}

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

// ------------------------------------------------------
// SendMessage
// ------------------------------------------------------

func TestSendMessage(t *testing.T) {
	admin := actor.Actor{ID: 1, Role: actor.RoleAdmin}
	client := actor.Actor{ID: 7, Role: actor.RoleClient}

	setup := func() (*ucMessaging.SendMessage, *repoMock, *publisherMock) {
		repo := &repoMock{}
		pub := &publisherMock{}
		uc := ucMessaging.NewSendMessage(repo, newTestDispatcher(), pub)
		return uc, repo, pub
	}

	t.Run("Given a client with no conversation id Then the support thread is derived", func(t *testing.T) {
		uc, _, pub := setup()

		m, err := uc.Execute(context.Background(), ucMessaging.SendMessageInput{
			Actor:   client,
			Content: "  my sink is leaking  ",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}

		if m.ConversationID != "support_7" {
			t.Errorf("conversation %q", m.ConversationID)
		}
		if m.Content != "my sink is leaking" {
			t.Errorf("content %q not trimmed", m.Content)
		}
		if len(pub.changes) != 1 || pub.changes[0].ConversationID != "support_7" {
			t.Errorf("events %+v", pub.changes)
		}
	})

	t.Run("Given a client addressing another thread Then it is forbidden", func(t *testing.T) {
		uc, repo, _ := setup()

		_, err := uc.Execute(context.Background(), ucMessaging.SendMessageInput{
			Actor:          client,
			ConversationID: "support_99",
			Content:        "hello",
		})
		if !httperr.IsBusiness(err, "conversation_forbidden") {
			t.Fatalf("expected conversation_forbidden, got %v", err)
		}
		if len(repo.messages) != 0 {
			t.Error("message persisted despite rejection")
		}
	})

	t.Run("Given an admin with no conversation id Then the send is rejected", func(t *testing.T) {
		uc, _, _ := setup()

		_, err := uc.Execute(context.Background(), ucMessaging.SendMessageInput{
			Actor:   admin,
			Content: "hello",
		})
		if !httperr.IsBusiness(err, "missing_conversation") {
			t.Fatalf("expected missing_conversation, got %v", err)
		}
	})

	t.Run("Given an admin replying to any thread Then the send succeeds", func(t *testing.T) {
		uc, _, _ := setup()

		m, err := uc.Execute(context.Background(), ucMessaging.SendMessageInput{
			Actor:          admin,
			ConversationID: "support_7",
			Content:        "on our way",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if m.ConversationID != "support_7" || m.SenderID != admin.ID {
			t.Errorf("message %+v", m)
		}
	})

	t.Run("Given whitespace-only content Then nothing is persisted", func(t *testing.T) {
		uc, repo, pub := setup()

		_, err := uc.Execute(context.Background(), ucMessaging.SendMessageInput{
			Actor:   client,
			Content: "   \n\t ",
		})
		if !httperr.IsBusiness(err, "empty_message") {
			t.Fatalf("expected empty_message, got %v", err)
		}
		if len(repo.messages) != 0 || len(pub.changes) != 0 {
			t.Error("side effects for an empty message")
		}
	})
}

// ------------------------------------------------------
// ListMessages
// ------------------------------------------------------

func TestListMessages(t *testing.T) {
	admin := actor.Actor{ID: 1, Role: actor.RoleAdmin}
	client := actor.Actor{ID: 7, Role: actor.RoleClient}

	repo := &repoMock{}
	seed := func(conv, content string, sender uint) {
		if err := repo.CreateMessage(context.Background(), &models.Message{
			ConversationID: conv,
			SenderID:       sender,
			Content:        content,
		}); err != nil {
			t.Fatal(err)
		}
	}
	seed("support_7", "hi", 7)
	seed("support_7", "hello, how can we help", 1)
	seed("support_9", "other client", 9)

	uc := ucMessaging.NewListMessages(repo)

	t.Run("Given a client with no conversation id Then their own thread is returned", func(t *testing.T) {
		msgs, err := uc.Execute(context.Background(), "", client)
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if len(msgs) != 2 {
			t.Errorf("got %d messages", len(msgs))
		}
	})

	t.Run("Given a client reading another thread Then it is forbidden", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "support_9", client)
		if !httperr.IsBusiness(err, "conversation_forbidden") {
			t.Fatalf("expected conversation_forbidden, got %v", err)
		}
	})

	t.Run("Given an admin Then any thread is readable", func(t *testing.T) {
		msgs, err := uc.Execute(context.Background(), "support_9", admin)
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if len(msgs) != 1 {
			t.Errorf("got %d messages", len(msgs))
		}
	})

	t.Run("Given an admin Then the conversation index lists every thread once", func(t *testing.T) {
		convs, err := uc.Conversations(context.Background(), admin)
		if err != nil {
			t.Fatalf("Conversations: %v", err)
		}
		if len(convs) != 2 {
			t.Errorf("got %d conversations", len(convs))
		}
	})

	t.Run("Given a client Then the conversation index is off limits", func(t *testing.T) {
		_, err := uc.Conversations(context.Background(), client)
		if !httperr.IsBusiness(err, "admin_access_required") {
			t.Fatalf("expected admin_access_required, got %v", err)
		}
	})
}
