package httpdto

import "chatapp/internal/domain"

type CreateMessageRequest struct {
	Content string `json:"content"`
}

type MessageResponse struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// ChatMessagesResponse pairs the chat identifier with its paged
// messages.
type ChatMessagesResponse struct {
	ID       string            `json:"id"`
	Messages []MessageResponse `json:"messages"`
}

func FromMessage(m domain.Message) MessageResponse {
	return MessageResponse{ID: m.ID, Content: m.Content}
}

func FromMessageSlice(messages []domain.Message) []MessageResponse {
	result := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, FromMessage(m))
	}
	return result
}
