package repository

import (
	"context"
	"errors"

	"chatapp/internal/domain"
	chatapp_errors "chatapp/pkg/errors"

	"gorm.io/gorm"
)

type GormChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &GormChatRepository{db: db}
}

func (r *GormChatRepository) Create(ctx context.Context, c *domain.Chat) error {
	res := r.db.WithContext(ctx).Create(c)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return chatapp_errors.ErrConflict
		}
		return res.Error
	}
	return nil
}

func (r *GormChatRepository) GetByID(ctx context.Context, id string) (domain.Chat, error) {
	var c domain.Chat
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Chat{}, chatapp_errors.ErrNotFound
		}
		return domain.Chat{}, err
	}
	return c, nil
}

func (r *GormChatRepository) GetAll(ctx context.Context) ([]domain.Chat, error) {
	var chats []domain.Chat
	if err := r.db.WithContext(ctx).Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

// Delete removes the chat row only. Memberships and messages referencing
// the chat are retained.
func (r *GormChatRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Chat{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return chatapp_errors.ErrNotFound
	}
	return nil
}

func (r *GormChatRepository) FindByUser(ctx context.Context, userID string) ([]domain.Chat, error) {
	var chats []domain.Chat
	err := r.db.WithContext(ctx).
		Joins("JOIN user_chats uc ON uc.chat_id = chats.id").
		Where("uc.user_id = ?", userID).
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *GormChatRepository) GetMembers(ctx context.Context, chatID string) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_chats uc ON uc.user_id = users.id").
		Where("uc.chat_id = ?", chatID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// IsMember is a dedicated existence query against the join table, not a
// scan of a loaded member collection.
func (r *GormChatRepository) IsMember(ctx context.Context, userID, chatID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("user_chats").
		Where("user_id = ? AND chat_id = ?", userID, chatID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddMember inserts the membership row inside a single transaction, so a
// reader never observes one side of the relation without the other.
// Adding an existing membership is a no-op.
func (r *GormChatRepository) AddMember(ctx context.Context, userID, chatID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Table("user_chats").
			Where("user_id = ? AND chat_id = ?", userID, chatID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Table("user_chats").Create(map[string]interface{}{
			"user_id": userID,
			"chat_id": chatID,
		}).Error
	})
}
