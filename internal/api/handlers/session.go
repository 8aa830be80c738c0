package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	"github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SessionHandler struct {
	registry       *service.VisitorRegistry
	tokens         *service.TokenIssuer
	accountService service.AccountService
	validator      *validator.Validate
}

func NewSessionHandler(registry *service.VisitorRegistry, tokens *service.TokenIssuer, accountService service.AccountService) *SessionHandler {
	return &SessionHandler{registry: registry, tokens: tokens, accountService: accountService, validator: validator.New()}
}

// CreateSession godoc
//
//	@Summary	Start a visitor session
//	@Tags		Session
//	@Produce	json
//	@Success	201	{object}	models.SessionTokenResponse
//	@Router		/sessions [post]
func (h *SessionHandler) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		token, err := h.tokens.Issue()
		if err != nil {
			logger.Error("Failed to issue session token", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Session started", slog.String("session_id", token.SessionID))
		response.Success(w, http.StatusCreated, token)
	}
}

// GetSession godoc
//
//	@Summary	Current identity and order history
//	@Tags		Session
//	@Produce	json
//	@Success	200	{object}	models.SessionView
//	@Failure	401	{object}	response.ErrorResponse
//	@Router		/session [get]
func (h *SessionHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, visitor.Session.View())
	}
}

// Login godoc
//
//	@Summary	Sign in with email and password
//	@Tags		Session
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		models.LoginRequest	true	"Credentials"
//	@Success	200			{object}	models.LoginResponse
//	@Failure	401			{object}	response.ErrorResponse	"Invalid email or password"
//	@Failure	429			{object}	response.ErrorResponse	"Too many attempts"
//	@Router		/session/login [post]
func (h *SessionHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.accountService.Login(r.Context(), visitor.Session, &req)
		if err != nil {
			logger.Error("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if !resp.Success {

			if resp.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprint(resp.RetryAfter))
				logger.Warn("Login throttled", slog.Int("retry_after", resp.RetryAfter))
				response.Error(w, errors.TooManyRequestsError(resp.Message).WithDetail(fmt.Sprintf("Retry after %d seconds", resp.RetryAfter)))
				return
			}

			logger.Warn("Invalid credentials", slog.Int("remaining_tries", resp.RemainingTries))
			response.Error(w, errors.InvalidCredentialsError(resp.Message).WithDetail(fmt.Sprintf("%d attempts remaining", resp.RemainingTries)))
			return
		}

		logger.Info("User logged in", slog.String("user_id", resp.Identity.ID))
		response.Success(w, http.StatusOK, resp)
	}
}

// Register godoc
//
//	@Summary	Create an account and sign in
//	@Tags		Session
//	@Accept		json
//	@Produce	json
//	@Param		account	body		models.RegisterRequest	true	"New account"
//	@Success	201		{object}	models.LoginResponse
//	@Failure	409		{object}	response.ErrorResponse	"Email already registered"
//	@Router		/session/register [post]
func (h *SessionHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		resp, err := h.accountService.Register(r.Context(), visitor.Session, &req)
		if err != nil {
			logger.Warn("Registration failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("user_id", resp.Identity.ID))
		response.Success(w, http.StatusCreated, resp)
	}
}

// Logout godoc
//
//	@Summary	Sign out and forget the stored identity
//	@Tags		Session
//	@Success	204
//	@Router		/session/logout [post]
func (h *SessionHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		if err := h.accountService.Logout(r.Context(), visitor.Session); err != nil {
			logger.Error("Logout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User logged out")
		w.WriteHeader(http.StatusNoContent)
	}
}

// UpdateProfile godoc
//
//	@Summary	Change name, email, avatar or preferences
//	@Tags		Session
//	@Accept		json
//	@Produce	json
//	@Param		patch	body		models.ProfilePatch	true	"Fields to change"
//	@Success	200		{object}	models.Identity
//	@Failure	401		{object}	response.ErrorResponse
//	@Router		/session/profile [patch]
func (h *SessionHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		visitor, ok := visitorFrom(w, r, h.registry)
		if !ok {
			return
		}

		var patch models.ProfilePatch
		if !utils.ParseAndValidate(r, w, &patch, h.validator) {
			logger.Warn("Invalid profile input")
			return
		}

		identity, err := h.accountService.UpdateProfile(r.Context(), visitor.Session, &patch)
		if err != nil {
			logger.Warn("Profile update failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, identity)
	}
}
