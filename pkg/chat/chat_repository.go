package chat

import (
	"DineWise-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ChatRepository interface {
		SaveConversation(ctx context.Context, conversation *entities.Conversation) error
		GetSessionMessages(ctx context.Context, sessionID int64, userID uuid.UUID) ([]*entities.Conversation, error)
	}

	chatRepository struct {
		db *gorm.DB
	}
)

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) SaveConversation(ctx context.Context, conversation *entities.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *chatRepository) GetSessionMessages(ctx context.Context, sessionID int64, userID uuid.UUID) ([]*entities.Conversation, error) {
	var conversations []*entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Order("created_at asc").
		Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}
