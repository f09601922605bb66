package httpdto

import "chatapp/internal/domain"

type CreateUserRequest struct {
	Name string `json:"name"`
}

type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreatedUserResponse is the one response that carries the token.
type CreatedUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

func FromUser(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name}
}

func FromUserSlice(users []domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromUser(u))
	}
	return result
}

func FromCreatedUser(u domain.User) CreatedUserResponse {
	return CreatedUserResponse{ID: u.ID, Name: u.Name, Token: u.Token}
}
