package dto

import "github.com/osunpoly/polyreg/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	MatricNumber string `json:"matricNumber" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterRequest represents a student self-registration request
type RegisterRequest struct {
	MatricNumber    string       `json:"matricNumber" binding:"required"`
	Password        string       `json:"password" binding:"required,min=6"`
	ConfirmPassword string       `json:"confirmPassword" binding:"required,eqfield=Password"`
	FullName        string       `json:"fullName" binding:"required"`
	Department      string       `json:"department" binding:"required"`
	Level           models.Level `json:"level" binding:"required"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID           int64            `json:"id"`
	MatricNumber string           `json:"matricNumber"`
	Role         string           `json:"role"`
	Profile      *ProfileResponse `json:"profile,omitempty"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}
