package repository

import (
	"context"

	"chatapp/internal/domain"

	"gorm.io/gorm"
)

type GormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Create(ctx context.Context, m *domain.Message) error {
	// The auto-increment primary key is written back into m.ID.
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GormMessageRepository) ListSince(ctx context.Context, chatID string, lastID int64) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("chat_id = ? AND id > ?", chatID, lastID).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
