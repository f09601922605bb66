package proxy

import (
	"context"

	"chatapp/internal/repository"
	chatapp_errors "chatapp/pkg/errors"
)

// AccessControl answers membership questions for member-scoped actions.
// Callers are expected to have resolved both user and chat already;
// a negative answer here is Forbidden, never NotFound.
type AccessControl struct {
	chatRepo repository.ChatRepository
}

func NewAccessControl(chatRepo repository.ChatRepository) *AccessControl {
	return &AccessControl{chatRepo: chatRepo}
}

func (a *AccessControl) CanViewChat(ctx context.Context, userID, chatID string) error {
	return a.ensureMember(ctx, userID, chatID)
}

func (a *AccessControl) CanPostMessage(ctx context.Context, userID, chatID string) error {
	return a.ensureMember(ctx, userID, chatID)
}

func (a *AccessControl) CanDeleteChat(ctx context.Context, userID, chatID string) error {
	return a.ensureMember(ctx, userID, chatID)
}

func (a *AccessControl) ensureMember(ctx context.Context, userID, chatID string) error {
	if a.chatRepo == nil {
		return chatapp_errors.ErrForbidden
	}
	ok, err := a.chatRepo.IsMember(ctx, userID, chatID)
	if err != nil {
		return err
	}
	if !ok {
		return chatapp_errors.ErrForbidden
	}
	return nil
}
