package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/handlers"
	"github.com/aaravmahajanofficial/papela-rentals/internal/config"
	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/aaravmahajanofficial/papela-rentals/internal/services/mocks"
	"github.com/aaravmahajanofficial/papela-rentals/internal/testutils"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionID = "5f1d7a52-8c1e-4b8a-9d0f-3e2b6c4a7f90"

func setupSessionTest(t *testing.T) (*mocks.AccountService, *service.VisitorRegistry, *handlers.SessionHandler) {
	mockAccountService := mocks.NewAccountService(t)
	registry := testutils.NewTestRegistry()
	tokens := service.NewTokenIssuer([]byte("test-secret"), time.Hour)

	return mockAccountService, registry, handlers.NewSessionHandler(registry, tokens, mockAccountService)
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return resp
}

func TestCreateSession(t *testing.T) {
	t.Run("Success - Token issued", func(t *testing.T) {
		// Arrange
		_, _, handler := setupSessionTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodPost, "/api/v1/sessions", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.CreateSession()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var body struct {
			Success bool                        `json:"success"`
			Data    models.SessionTokenResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.Data.Token)
		assert.NotEmpty(t, body.Data.SessionID)
		assert.Equal(t, 3600, body.Data.ExpiresIn)
	})
}

func TestGetSession(t *testing.T) {
	t.Run("Success - Anonymous session", func(t *testing.T) {
		// Arrange
		_, _, handler := setupSessionTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/session", nil, testSessionID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.GetSession()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data models.SessionView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.False(t, body.Data.IsAuthenticated)
		assert.Nil(t, body.Data.Identity)
		assert.Empty(t, body.Data.Orders)
	})

	t.Run("Failure - Missing session", func(t *testing.T) {
		// Arrange
		_, _, handler := setupSessionTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/session", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.GetSession()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, resp.Error.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success - Valid credentials", func(t *testing.T) {
		// Arrange
		mockAccountService, registry, handler := setupSessionTest(t)
		visitor := registry.Get(context.Background(), testSessionID)

		loginReq := models.LoginRequest{Email: repository.DemoEmail, Password: repository.DemoPassword}
		body, _ := json.Marshal(loginReq)

		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/session/login", bytes.NewReader(body), testSessionID, nil)
		recorder := httptest.NewRecorder()

		mockAccountService.On("Login", mock.Anything, visitor.Session, &loginReq).
			Return(&models.LoginResponse{Success: true, Identity: &models.Identity{ID: repository.DemoUserID, Name: "Demo User"}}, nil).Once()

		// Act
		handler.Login()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, decodeResponse(t, recorder).Success)
	})

	t.Run("Failure - Invalid credentials", func(t *testing.T) {
		// Arrange
		mockAccountService, _, handler := setupSessionTest(t)

		body, _ := json.Marshal(models.LoginRequest{Email: repository.DemoEmail, Password: "wrong"})
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/session/login", bytes.NewReader(body), testSessionID, nil)
		recorder := httptest.NewRecorder()

		mockAccountService.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(&models.LoginResponse{Success: false, Message: "Invalid email or password", RemainingTries: 4}, nil).Once()

		// Act
		handler.Login()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.Equal(t, appErrors.ErrCodeInvalidCredentials, resp.Error.Code)
		assert.Equal(t, []string{"4 attempts remaining"}, resp.Error.Details)
	})

	t.Run("Failure - Throttled", func(t *testing.T) {
		// Arrange
		mockAccountService, _, handler := setupSessionTest(t)

		body, _ := json.Marshal(models.LoginRequest{Email: repository.DemoEmail, Password: "wrong"})
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/session/login", bytes.NewReader(body), testSessionID, nil)
		recorder := httptest.NewRecorder()

		mockAccountService.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(&models.LoginResponse{Success: false, Message: "Too many login attempts. Please try again later.", RetryAfter: 120}, nil).Once()

		// Act
		handler.Login()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
		assert.Equal(t, "120", recorder.Header().Get("Retry-After"))
	})

	t.Run("Failure - Validation error", func(t *testing.T) {
		// Arrange
		_, _, handler := setupSessionTest(t)

		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/session/login", bytes.NewReader([]byte(`{"email":"not-an-email"}`)), testSessionID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.Login()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeResponse(t, recorder).Error.Code)
	})

	t.Run("Failure - Service error", func(t *testing.T) {
		// Arrange
		mockAccountService, _, handler := setupSessionTest(t)

		body, _ := json.Marshal(models.LoginRequest{Email: repository.DemoEmail, Password: repository.DemoPassword})
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/session/login", bytes.NewReader(body), testSessionID, nil)
		recorder := httptest.NewRecorder()

		mockAccountService.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.StorageError("Failed to sign in")).Once()

		// Act
		handler.Login()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, appErrors.ErrCodeStorageError, decodeResponse(t, recorder).Error.Code)
	})
}

func TestRegister(t *testing.T) {
	t.Run("Success - Account created", func(t *testing.T) {
		// Arrange
		mockAccountService, _, handler := setupSessionTest(t)

		regReq := models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret"}
		body, _ := json.Marshal(regReq)
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/session/register", bytes.NewReader(body), testSessionID, nil)
		recorder := httptest.NewRecorder()

		mockAccountService.On("Register", mock.Anything, mock.Anything, &regReq).
			Return(&models.LoginResponse{Success: true, Identity: &models.Identity{ID: "1700000000000", Name: "Ana"}}, nil).Once()

		// Act
		handler.Register()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Failure - Email taken", func(t *testing.T) {
		// Arrange
		mockAccountService, _, handler := setupSessionTest(t)

		body, _ := json.Marshal(models.RegisterRequest{Name: "Demo", Email: repository.DemoEmail, Password: "x"})
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/session/register", bytes.NewReader(body), testSessionID, nil)
		recorder := httptest.NewRecorder()

		mockAccountService.On("Register", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		// Act
		handler.Register()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Success - Signed out", func(t *testing.T) {
		// Arrange
		mockAccountService, _, handler := setupSessionTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/session/logout", nil, testSessionID, nil)
		recorder := httptest.NewRecorder()

		mockAccountService.On("Logout", mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		handler.Logout()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("Success - Name changed", func(t *testing.T) {
		// Arrange
		mockAccountService, _, handler := setupSessionTest(t)

		req := testutils.CreateTestRequestWithSession(http.MethodPatch, "/api/v1/session/profile", bytes.NewReader([]byte(`{"name":"New Name"}`)), testSessionID, nil)
		recorder := httptest.NewRecorder()

		mockAccountService.On("UpdateProfile", mock.Anything, mock.Anything, mock.MatchedBy(func(p *models.ProfilePatch) bool {
			return p.Name != nil && *p.Name == "New Name" && p.Email == nil
		})).Return(&models.Identity{ID: "1", Name: "New Name"}, nil).Once()

		// Act
		handler.UpdateProfile()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Failure - Anonymous", func(t *testing.T) {
		// Arrange
		mockAccountService, _, handler := setupSessionTest(t)

		req := testutils.CreateTestRequestWithSession(http.MethodPatch, "/api/v1/session/profile", bytes.NewReader([]byte(`{"name":"x"}`)), testSessionID, nil)
		recorder := httptest.NewRecorder()

		mockAccountService.On("UpdateProfile", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.UnauthorizedError("Please sign in to update your profile")).Once()

		// Act
		handler.UpdateProfile()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestSessionFlow(t *testing.T) {
	t.Run("Success - Login then read session", func(t *testing.T) {
		// Arrange
		registry := testutils.NewTestRegistry()
		accounts := service.NewAccountService(repository.NewMemoryRateLimitRepo(&config.RateConfig{MaxAttempts: 5, WindowSize: time.Minute}))
		handler := handlers.NewSessionHandler(registry, service.NewTokenIssuer([]byte("k"), time.Hour), accounts)

		body, _ := json.Marshal(models.LoginRequest{Email: repository.DemoEmail, Password: repository.DemoPassword})
		loginRecorder := httptest.NewRecorder()

		// Act
		handler.Login()(loginRecorder, testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/session/login", bytes.NewReader(body), testSessionID, nil))

		getRecorder := httptest.NewRecorder()
		handler.GetSession()(getRecorder, testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/session", nil, testSessionID, nil))

		// Assert
		require.Equal(t, http.StatusOK, loginRecorder.Code)
		require.Equal(t, http.StatusOK, getRecorder.Code)

		var view struct {
			Data models.SessionView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(getRecorder.Body.Bytes(), &view))
		assert.True(t, view.Data.IsAuthenticated)
		assert.Equal(t, repository.DemoUserID, view.Data.Identity.ID)
		require.Len(t, view.Data.Orders, 2)
		assert.Equal(t, "order-001", view.Data.Orders[0].ID)
	})
}
