package response

import (
	"libris/internal/usecase/queries"
)

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromUserView(view *queries.UserView) UserResponse {
	return UserResponse{
		ID:    view.ID.String(),
		Name:  view.Name,
		Email: view.Email,
		Role:  view.Role,
	}
}
