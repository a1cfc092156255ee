package dto

import "provider-match/internal/domain/user"

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

func NewAuthResponse(u user.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    u.ID,
			Email: u.Email,
			Role:  u.Role,
		},
	}
}
