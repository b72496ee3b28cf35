package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/handykonnect/handykonnect-api/internal/domain/message"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

type MessageGormRepository struct {
	db *gorm.DB
}

func NewMessageGormRepository(db *gorm.DB) *MessageGormRepository {
	return &MessageGormRepository{db: db}
}

func (r *MessageGormRepository) CreateMessage(
	ctx context.Context,
	m *models.Message,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MessageGormRepository) ListByConversation(
	ctx context.Context,
	conversationID string,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *MessageGormRepository) ListConversations(
	ctx context.Context,
) ([]domain.Conversation, error) {

	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Distinct("conversation_id").
		Pluck("conversation_id", &ids).Error; err != nil {
		return nil, err
	}

	conversations := make([]domain.Conversation, 0, len(ids))
	for _, id := range ids {
		var last models.Message
		if err := r.db.WithContext(ctx).
			Preload("Sender").
			Where("conversation_id = ?", id).
			Order("created_at DESC").
			First(&last).Error; err != nil {
			continue
		}
		conversations = append(conversations, domain.Conversation{
			ConversationID: id,
			LastMessage:    last,
		})
	}

	return conversations, nil
}

// Compile-time check
var _ domain.Repository = (*MessageGormRepository)(nil)
