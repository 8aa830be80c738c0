package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Preferences struct {
	Newsletter    bool `json:"newsletter"`
	Notifications bool `json:"notifications"`
}

// Identity is the signed-in visitor. Its JSON form is the persisted
// session record, so field names follow the storefront's stored layout.
type Identity struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	AvatarRef   string      `json:"avatar,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	Preferences Preferences `json:"preferences"`
}

// for registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success        bool      `json:"success"`
	Identity       *Identity `json:"identity,omitempty"`
	RemainingTries int       `json:"remaining_tries,omitempty"`
	RetryAfter     int       `json:"retry_after,omitempty"`
	Message        string    `json:"message,omitempty"`
}

// Only the non-nil fields are merged into the current identity.
type ProfilePatch struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Email       *string      `json:"email,omitempty" validate:"omitempty,email"`
	AvatarRef   *string      `json:"avatar,omitempty" validate:"omitempty,url"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

type SessionView struct {
	Identity        *Identity `json:"identity"`
	IsAuthenticated bool      `json:"is_authenticated"`
	Orders          []Order   `json:"orders"`
}

type SessionTokenResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	ExpiresIn int    `json:"expires_in"`
}

// JWT claims structure
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
