package httpdto

import "chatapp/internal/domain"

type CreateChatRequest struct {
	Name string `json:"name"`
}

type ChatResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MembershipResponse struct {
	ChatID string `json:"chatId"`
	UserID string `json:"userId"`
}

func FromChat(c domain.Chat) ChatResponse {
	return ChatResponse{ID: c.ID, Name: c.Name}
}

func FromChatSlice(chats []domain.Chat) []ChatResponse {
	result := make([]ChatResponse, 0, len(chats))
	for _, c := range chats {
		result = append(result, FromChat(c))
	}
	return result
}
