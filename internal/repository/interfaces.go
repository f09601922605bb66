package repository

import (
	"context"

	"chatapp/internal/domain"
)

// UserRepository is the identity store. GetByID is what the auth gate
// uses to resolve a verified token's subject.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}

type ChatRepository interface {
	Create(ctx context.Context, c *domain.Chat) error
	GetByID(ctx context.Context, id string) (domain.Chat, error)
	GetAll(ctx context.Context) ([]domain.Chat, error)
	Delete(ctx context.Context, id string) error

	FindByUser(ctx context.Context, userID string) ([]domain.Chat, error)
	GetMembers(ctx context.Context, chatID string) ([]domain.User, error)

	// IsMember queries the persisted association directly; it must never
	// be answered from a loaded collection.
	IsMember(ctx context.Context, userID, chatID string) (bool, error)
	// AddMember is idempotent: adding an existing membership is a no-op.
	AddMember(ctx context.Context, userID, chatID string) error
}

type MessageRepository interface {
	// Create persists the message and fills in the store-assigned,
	// monotonically increasing ID.
	Create(ctx context.Context, m *domain.Message) error
	// ListSince returns the chat's messages with ID > lastID, ascending.
	ListSince(ctx context.Context, chatID string, lastID int64) ([]domain.Message, error)
}
