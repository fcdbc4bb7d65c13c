package auth

import (
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/user"
	"github.com/xw1nchester/hisba-backend/pkg/types"
)

type SignupRequest struct {
	Username string             `json:"username" validate:"required,min=3,max=150"`
	Email    string             `json:"email" validate:"required,email"`
	Password string             `json:"password" validate:"required,min=8,max=72"`
	Age      *types.IntOrString `json:"age" validate:"omitempty,gt=0"`
	Phone    string             `json:"phone" validate:"omitempty,max=20"`
	IDNumber string             `json:"idNumber" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type JwtToken struct {
	AccessToken string `json:"accessToken"`
}

type Tokens struct {
	JwtToken
	RefreshToken string `json:"-"`
}

type AuthResponse struct {
	user.UserResponse
	JwtToken
	Role access.Role `json:"role"`
}

type AuthFullResponse struct {
	user.UserResponse
	Tokens
	Role access.Role
}
