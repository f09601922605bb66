package repository

import (
	"context"
	"errors"

	"chatapp/internal/domain"
	chatapp_errors "chatapp/pkg/errors"

	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, u *domain.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return chatapp_errors.ErrConflict
		}
		return res.Error
	}
	return nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, chatapp_errors.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (r *GormUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return chatapp_errors.ErrNotFound
	}
	return nil
}
