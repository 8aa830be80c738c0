package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type sessionContextKey string

const SessionContextKey = sessionContextKey("session")

// SessionTokenHeader is accepted as an alternative to "Authorization: Bearer".
const SessionTokenHeader = "X-Session-Token"

type SessionMiddleware struct {
	jwtKey []byte
}

func NewSessionMiddleware(jwtKey []byte) *SessionMiddleware {

	return &SessionMiddleware{jwtKey: jwtKey}

}

// RequireSession rejects requests without a valid session token and puts
// the session claims on the context.
func (m *SessionMiddleware) RequireSession(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		tokenString, appErr := sessionToken(r)
		if appErr != nil {
			logger.Warn("Session token rejected", slog.String("reason", appErr.Message))
			response.Error(w, appErr)
			return
		}

		claims := &models.SessionClaims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return m.jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			logger.Warn("Session token parsing failed", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Invalid or expired session"))
			return
		}

		if claims.SessionID == "" {
			logger.Warn("Session token without session id")
			response.Error(w, errors.UnauthorizedError("Invalid or expired session"))
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, claims)

		sessionLogger := logger.With(slog.String("session_id", claims.SessionID))
		ctx = context.WithValue(ctx, LoggerKey, sessionLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func sessionToken(r *http.Request) (string, *errors.AppError) {

	if token := strings.TrimSpace(r.Header.Get(SessionTokenHeader)); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.UnauthorizedError("Session token is required")
	}

	// "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", errors.UnauthorizedError("Invalid authorization format")
	}

	return tokenParts[1], nil
}

// SessionIDFromContext returns the session id set by RequireSession.
func SessionIDFromContext(ctx context.Context) (string, bool) {

	claims, ok := ctx.Value(SessionContextKey).(*models.SessionClaims)
	if !ok || claims.SessionID == "" {
		return "", false
	}

	return claims.SessionID, true
}
