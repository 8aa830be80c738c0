package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	"github.com/aaravmahajanofficial/papela-rentals/internal/cache"
	"github.com/aaravmahajanofficial/papela-rentals/internal/config"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"golang.org/x/crypto/bcrypt"
)

// CreateTestRequestWithSession builds a request as it looks after the
// session middleware ran.
func CreateTestRequestWithSession(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	claims := &models.SessionClaims{SessionID: sessionID}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.SessionContextKey, claims)
	ctx = context.WithValue(ctx, middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutSession(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// NewTestRegistry wires a registry on the in-memory stores with no
// artificial latency.
func NewTestRegistry() *service.VisitorRegistry {
	return service.NewVisitorRegistry(
		repository.NewMockCredentialRepoWithCost(bcrypt.MinCost),
		repository.NewReferenceOrderRepo(),
		cache.NewMemoryCache(&config.CacheConfig{DefaultTTL: time.Hour}),
		service.SessionOptions{StoragePrefix: cache.IdentityKeyPrefix},
		time.Hour,
	)
}
