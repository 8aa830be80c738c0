package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/metrics"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
)

// AccountService puts login throttling and error mapping in front of a
// visitor's SessionStore.
type AccountService interface {
	Login(ctx context.Context, session *SessionStore, req *models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, session *SessionStore, req *models.RegisterRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, session *SessionStore) error
	UpdateProfile(ctx context.Context, session *SessionStore, patch *models.ProfilePatch) (*models.Identity, error)
}

type accountService struct {
	rateLimitRepo repository.RateLimitRepository
}

func NewAccountService(rateLimitRepo repository.RateLimitRepository) AccountService {
	return &accountService{rateLimitRepo: rateLimitRepo}
}

func mapSessionError(err error, message string) error {

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return appErrors.RequestCancelledError("Request cancelled").WithError(err)
	}

	return appErrors.StorageError(message).WithError(err)
}

func (s *accountService) Login(ctx context.Context, session *SessionStore, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	allowed, remaining, retryAfter, err := s.rateLimitRepo.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		metrics.LoginAttempts.WithLabelValues("throttled").Inc()
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	identity, err := session.Login(ctx, req.Email, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		logger.Error("Login failed", slog.String("error", err.Error()))
		return nil, mapSessionError(err, "Failed to sign in")
	}

	if identity == nil {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()

	return &models.LoginResponse{
		Success:  true,
		Identity: identity,
		Message:  "Welcome back!",
	}, nil
}

func (s *accountService) Register(ctx context.Context, session *SessionStore, req *models.RegisterRequest) (*models.LoginResponse, error) {

	identity, err := session.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		metrics.Registrations.WithLabelValues("error").Inc()
		return nil, mapSessionError(err, "Failed to create account")
	}

	if identity == nil {
		metrics.Registrations.WithLabelValues("duplicate").Inc()
		return nil, appErrors.DuplicateEntryError("Email already registered")
	}

	metrics.Registrations.WithLabelValues("success").Inc()

	return &models.LoginResponse{
		Success:  true,
		Identity: identity,
		Message:  "Account created successfully!",
	}, nil
}

func (s *accountService) Logout(ctx context.Context, session *SessionStore) error {

	if err := session.Logout(ctx); err != nil {
		return mapSessionError(err, "Failed to sign out")
	}

	return nil
}

func (s *accountService) UpdateProfile(ctx context.Context, session *SessionStore, patch *models.ProfilePatch) (*models.Identity, error) {

	if !session.IsAuthenticated() {
		return nil, appErrors.UnauthorizedError("Please sign in to update your profile")
	}

	if err := session.UpdateProfile(ctx, *patch); err != nil {
		return nil, mapSessionError(err, "Failed to update profile")
	}

	return session.Identity(), nil
}
