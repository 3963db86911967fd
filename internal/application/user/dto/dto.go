package dto

import (
	"time"

	"github.com/avestaexchange/avesta/internal/domain/user"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required" validate:"required,oneof=USER ADMIN SUPER_ADMIN"`
}

// UpdateUserRequest replaces profile fields. An empty password keeps the current one.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     string `json:"role" binding:"required" validate:"required,oneof=USER ADMIN SUPER_ADMIN"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int64         `json:"expiresIn"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func ToUserResponses(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
