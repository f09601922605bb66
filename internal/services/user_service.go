package services

import (
	"context"

	"chatapp/internal/domain"
	"chatapp/internal/repository"
	chatapp_errors "chatapp/pkg/errors"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

func NewUserService(userRepo repository.UserRepository, tokens *TokenService) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// Create assigns the user's identifier, issues the bearer token bound to
// it, and persists both. The token is returned to the caller exactly
// once, here.
func (s *UserService) Create(ctx context.Context, name string) (domain.User, error) {
	if name == "" {
		return domain.User{}, chatapp_errors.ErrInvalidInput
	}

	id := uuid.NewString()
	token, err := s.tokens.Issue(id)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:    id,
		Name:  name,
		Token: token,
	}
	if err := s.userRepo.Create(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

// Delete removes the user row. Memberships and messages are retained;
// the user's token dies with the row because identity resolution fails
// from then on.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
