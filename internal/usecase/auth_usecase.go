package usecase

import (
	"context"

	"tuition/internal/domain/entity"
)

// AuthUsecase registers accounts and issues access tokens.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name     string      `json:"name" validate:"required,min=2,max=100"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role" validate:"required,oneof=teacher student"`
}

// LoginInput defines the credentials of a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is returned after a successful registration or login.
type AuthOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int64        `json:"expiresIn"`
}
