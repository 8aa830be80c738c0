package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/stretchr/testify/mock"
)

// AccountService is a testify mock of the AccountService interface.
type AccountService struct {
	mock.Mock
}

func (_m *AccountService) Login(ctx context.Context, session *service.SessionStore, req *models.LoginRequest) (*models.LoginResponse, error) {
	ret := _m.Called(ctx, session, req)

	var r0 *models.LoginResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.LoginResponse)
	}

	return r0, ret.Error(1)
}

func (_m *AccountService) Register(ctx context.Context, session *service.SessionStore, req *models.RegisterRequest) (*models.LoginResponse, error) {
	ret := _m.Called(ctx, session, req)

	var r0 *models.LoginResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.LoginResponse)
	}

	return r0, ret.Error(1)
}

func (_m *AccountService) Logout(ctx context.Context, session *service.SessionStore) error {
	ret := _m.Called(ctx, session)

	return ret.Error(0)
}

func (_m *AccountService) UpdateProfile(ctx context.Context, session *service.SessionStore, patch *models.ProfilePatch) (*models.Identity, error) {
	ret := _m.Called(ctx, session, patch)

	var r0 *models.Identity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Identity)
	}

	return r0, ret.Error(1)
}

// NewAccountService creates a new instance of AccountService. It also registers a cleanup
// function to assert the mocks expectations.
func NewAccountService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountService {
	m := &AccountService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
