package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignupRequest holds the shared signup payload. Role-specific fields
// (department, registration id) are validated by the role rule table in
// the auth service rather than by struct tags.
type SignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	FullName        string `json:"full_name" validate:"required"`
	Department      string `json:"department,omitempty"`
	RegistrationID  string `json:"registration_id,omitempty"`
}

// SigninRequest holds credentials for authenticating a user.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SigninResponse returns the issued token and user info.
type SigninResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        UserInfo  `json:"user"`
}

// UserInfo describes the authenticated user in responses.
type UserInfo struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	Role     UserRole `json:"role"`
}

// JWTClaims represents the JWT payload for access tokens. The claims are
// the sole source of the per-request principal; nothing about the caller
// is kept in process-wide state.
type JWTClaims struct {
	UserID         string   `json:"user_id"`
	Role           UserRole `json:"role"`
	RegistrationID string   `json:"registration_id,omitempty"`
	jwt.RegisteredClaims
}
