package service_test

import (
	"errors"
	"sync"
	"testing"

	appErrors "github.com/aaravmahajanofficial/papela-rentals/internal/errors"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	"github.com/aaravmahajanofficial/papela-rentals/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountLogin(t *testing.T) {
	demo := &models.LoginRequest{Email: repository.DemoEmail, Password: repository.DemoPassword}

	t.Run("Success - Signed in", func(t *testing.T) {
		// Arrange
		limiter := mocks.NewRateLimitRepository(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, repository.DemoEmail).Return(true, 4, 0, nil).Once()
		accountService := service.NewAccountService(limiter)
		session := newTestSession(t, newTestStorage())

		// Act
		resp, err := accountService.Login(t.Context(), session, demo)

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "1", resp.Identity.ID)
		assert.Equal(t, "Welcome back!", resp.Message)
	})

	t.Run("Success - Identity reported while a logout races", func(t *testing.T) {
		// Arrange
		limiter := mocks.NewRateLimitRepository(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, repository.DemoEmail).Return(true, 4, 0, nil)
		accountService := service.NewAccountService(limiter)
		session := newTestSession(t, newTestStorage())

		const attempts = 20
		responses := make([]*models.LoginResponse, attempts)

		// Act
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(2)

			go func() {
				defer wg.Done()
				responses[i], _ = accountService.Login(t.Context(), session, demo)
			}()

			go func() {
				defer wg.Done()
				_ = session.Logout(t.Context())
			}()
		}
		wg.Wait()

		// Assert
		for _, resp := range responses {
			require.NotNil(t, resp)
			require.True(t, resp.Success)
			require.NotNil(t, resp.Identity)
			assert.Equal(t, "1", resp.Identity.ID)
		}
	})

	t.Run("Success - Response identity survives logout", func(t *testing.T) {
		// Arrange
		limiter := mocks.NewRateLimitRepository(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, repository.DemoEmail).Return(true, 4, 0, nil).Once()
		accountService := service.NewAccountService(limiter)
		session := newTestSession(t, newTestStorage())

		resp, err := accountService.Login(t.Context(), session, demo)
		require.NoError(t, err)

		// Act
		require.NoError(t, session.Logout(t.Context()))

		// Assert
		require.NotNil(t, resp.Identity)
		assert.Equal(t, repository.DemoEmail, resp.Identity.Email)
		assert.Nil(t, session.Identity())
	})

	t.Run("Failure - Bad credentials report remaining tries", func(t *testing.T) {
		// Arrange
		limiter := mocks.NewRateLimitRepository(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, repository.DemoEmail).Return(true, 3, 0, nil).Once()
		accountService := service.NewAccountService(limiter)
		session := newTestSession(t, newTestStorage())

		// Act
		resp, err := accountService.Login(t.Context(), session, &models.LoginRequest{Email: repository.DemoEmail, Password: "nope"})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 3, resp.RemainingTries)
		assert.Nil(t, resp.Identity)
		assert.False(t, session.IsAuthenticated())
	})

	t.Run("Failure - Throttled before verifying", func(t *testing.T) {
		// Arrange
		limiter := mocks.NewRateLimitRepository(t)
		limiter.On("CheckLoginRateLimit", mock.Anything, repository.DemoEmail).Return(false, 0, 120, nil).Once()
		accountService := service.NewAccountService(limiter)
		session := newTestSession(t, newTestStorage())

		// Act
		resp, err := accountService.Login(t.Context(), session, demo)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 120, resp.RetryAfter)
		assert.False(t, session.IsAuthenticated())
	})

	t.Run("Failure - Limiter error", func(t *testing.T) {
		// Arrange
		limiter := mocks.NewRateLimitRepository(t)
		limiterErr := errors.New("redis down")
		limiter.On("CheckLoginRateLimit", mock.Anything, repository.DemoEmail).Return(false, 0, 0, limiterErr).Once()
		accountService := service.NewAccountService(limiter)

		// Act
		resp, err := accountService.Login(t.Context(), newTestSession(t, newTestStorage()), demo)

		// Assert
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
		assert.ErrorIs(t, err, limiterErr)
	})
}

func TestAccountRegister(t *testing.T) {
	accountService := service.NewAccountService(mocks.NewRateLimitRepository(t))

	t.Run("Success - Account created", func(t *testing.T) {
		session := newTestSession(t, newTestStorage())

		resp, err := accountService.Register(t.Context(), session, &models.RegisterRequest{Name: "A", Email: "new@example.com", Password: "x"})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "new@example.com", resp.Identity.Email)
	})

	t.Run("Failure - Duplicate email", func(t *testing.T) {
		session := newTestSession(t, newTestStorage())

		resp, err := accountService.Register(t.Context(), session, &models.RegisterRequest{Name: "A", Email: repository.DemoEmail, Password: "x"})

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)
	})
}

func TestAccountUpdateProfile(t *testing.T) {
	accountService := service.NewAccountService(mocks.NewRateLimitRepository(t))
	name := "New Name"

	t.Run("Failure - Anonymous", func(t *testing.T) {
		identity, err := accountService.UpdateProfile(t.Context(), newTestSession(t, newTestStorage()), &models.ProfilePatch{Name: &name})

		assert.Nil(t, identity)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
	})

	t.Run("Success - Signed in", func(t *testing.T) {
		session := newTestSession(t, newTestStorage())
		_, err := session.Login(t.Context(), repository.DemoEmail, repository.DemoPassword)
		require.NoError(t, err)

		identity, err := accountService.UpdateProfile(t.Context(), session, &models.ProfilePatch{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "New Name", identity.Name)
	})

	t.Run("Success - Logout", func(t *testing.T) {
		session := newTestSession(t, newTestStorage())
		_, err := session.Login(t.Context(), repository.DemoEmail, repository.DemoPassword)
		require.NoError(t, err)

		require.NoError(t, accountService.Logout(t.Context(), session))
		assert.False(t, session.IsAuthenticated())
	})
}
