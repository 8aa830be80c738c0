package service

import (
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer mints the signed session tokens that identify a visitor.
type TokenIssuer struct {
	jwtKey []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(jwtKey []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{jwtKey: jwtKey, ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Issue() (*models.SessionTokenResponse, error) {

	now := t.now()
	sessionID := uuid.NewString()

	claims := &models.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(t.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate session token").WithError(fmt.Errorf("sign: %w", err))
	}

	return &models.SessionTokenResponse{
		Token:     tokenString,
		SessionID: sessionID,
		ExpiresIn: int(t.ttl.Seconds()),
	}, nil
}
