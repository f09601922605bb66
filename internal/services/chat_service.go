package services

import (
	"context"

	"chatapp/internal/domain"
	"chatapp/internal/proxy"
	"chatapp/internal/repository"
	chatapp_errors "chatapp/pkg/errors"

	"github.com/google/uuid"
)

// ChatService owns the member-scoped operations. The fixed evaluation
// order in every operation is: existence checks, then membership, then
// business validation.
type ChatService struct {
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	access      *proxy.AccessControl
}

func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository, messageRepo repository.MessageRepository, access *proxy.AccessControl) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		messageRepo: messageRepo,
		access:      access,
	}
}

// Create persists the chat and makes the creator its first member.
func (s *ChatService) Create(ctx context.Context, creatorID, name string) (domain.Chat, error) {
	if name == "" {
		return domain.Chat{}, chatapp_errors.ErrInvalidInput
	}

	chat := domain.Chat{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.chatRepo.Create(ctx, &chat); err != nil {
		return domain.Chat{}, err
	}
	if err := s.chatRepo.AddMember(ctx, creatorID, chat.ID); err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

func (s *ChatService) Get(ctx context.Context, id string) (domain.Chat, error) {
	return s.chatRepo.GetByID(ctx, id)
}

func (s *ChatService) List(ctx context.Context) ([]domain.Chat, error) {
	return s.chatRepo.GetAll(ctx)
}

func (s *ChatService) ChatsOfUser(ctx context.Context, userID string) ([]domain.Chat, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.chatRepo.FindByUser(ctx, userID)
}

func (s *ChatService) Members(ctx context.Context, principalID, chatID string) ([]domain.User, error) {
	if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
		return nil, err
	}
	if err := s.access.CanViewChat(ctx, principalID, chatID); err != nil {
		return nil, err
	}
	return s.chatRepo.GetMembers(ctx, chatID)
}

// Join adds the principal to the chat. Joining a chat you already belong
// to is a no-op, not an error.
func (s *ChatService) Join(ctx context.Context, principalID, chatID string) error {
	if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
		return err
	}
	return s.chatRepo.AddMember(ctx, principalID, chatID)
}

func (s *ChatService) Messages(ctx context.Context, principalID, chatID string, lastMessageID int64) ([]domain.Message, error) {
	if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
		return nil, err
	}
	if err := s.access.CanViewChat(ctx, principalID, chatID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListSince(ctx, chatID, lastMessageID)
}

// PostMessage records a message authored by userID in chatID. The
// membership check and the insert are separate statements; a revocation
// racing an in-flight post can slip through that window.
func (s *ChatService) PostMessage(ctx context.Context, userID, chatID, content string) (domain.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return domain.Message{}, err
	}
	if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
		return domain.Message{}, err
	}
	if err := s.access.CanPostMessage(ctx, userID, chatID); err != nil {
		return domain.Message{}, err
	}
	if content == "" {
		return domain.Message{}, chatapp_errors.ErrInvalidInput
	}

	msg := domain.Message{
		Content: content,
		UserID:  userID,
		ChatID:  chatID,
	}
	if err := s.messageRepo.Create(ctx, &msg); err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

// Delete removes the chat itself; its messages and membership rows are
// left in place.
func (s *ChatService) Delete(ctx context.Context, principalID, chatID string) error {
	if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
		return err
	}
	if err := s.access.CanDeleteChat(ctx, principalID, chatID); err != nil {
		return err
	}
	return s.chatRepo.Delete(ctx, chatID)
}
