package handler

import (
	"time"

	"github.com/google/uuid"
)

// SignupRequest is the request body for account signup
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Name     string `json:"name" binding:"omitempty,max=200"`
	Role     string `json:"role" binding:"omitempty,oneof=community business"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the request body for token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is the token data in auth responses
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// ProfileResponse is the profile view in API responses
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	Role        string    `json:"role"`
	Phone       string    `json:"phone,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	NotifyOptIn bool      `json:"notify_opt_in"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReclaimedListingResponse describes a listing reattached at login
type ReclaimedListingResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
}

// SignupResponse is the response body for successful signup
type SignupResponse struct {
	Profile ProfileResponse `json:"profile"`
}

// LoginResponse is the response body for successful login
type LoginResponse struct {
	Token   TokenResponse   `json:"token"`
	Profile ProfileResponse `json:"profile"`
	// ReclaimedListings lists listings reattached to this account during login
	ReclaimedListings []ReclaimedListingResponse `json:"reclaimed_listings,omitempty"`
}

// RefreshResponse is the response body for successful token refresh
type RefreshResponse struct {
	Token TokenResponse `json:"token"`
}

// LogoutResponse is the response body for logout
type LogoutResponse struct {
	Message string `json:"message"`
}
