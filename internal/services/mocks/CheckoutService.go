package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/stretchr/testify/mock"
)

// CheckoutService is a testify mock of the CheckoutService interface.
type CheckoutService struct {
	mock.Mock
}

func (_m *CheckoutService) CommitOrder(ctx context.Context, cart *service.CartStore, session *service.SessionStore, req *models.CheckoutRequest) (*models.Order, error) {
	ret := _m.Called(ctx, cart, session, req)

	var r0 *models.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	return r0, ret.Error(1)
}

// NewCheckoutService creates a new instance of CheckoutService. It also registers a cleanup
// function to assert the mocks expectations.
func NewCheckoutService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutService {
	m := &CheckoutService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
