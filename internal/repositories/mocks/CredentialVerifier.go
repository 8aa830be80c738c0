package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/stretchr/testify/mock"
)

// CredentialVerifier is a testify mock of the CredentialVerifier interface.
type CredentialVerifier struct {
	mock.Mock
}

func (_m *CredentialVerifier) Verify(ctx context.Context, email string, password string) (*models.Identity, bool, error) {
	ret := _m.Called(ctx, email, password)

	var r0 *models.Identity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Identity)
	}

	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *CredentialVerifier) Exists(ctx context.Context, email string) (bool, error) {
	ret := _m.Called(ctx, email)

	return ret.Bool(0), ret.Error(1)
}

// NewCredentialVerifier creates a new instance of CredentialVerifier. It also registers a cleanup
// function to assert the mocks expectations.
func NewCredentialVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *CredentialVerifier {
	m := &CredentialVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
