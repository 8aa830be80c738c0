package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/stretchr/testify/mock"
)

// CartService is a testify mock of the CartService interface.
type CartService struct {
	mock.Mock
}

func (_m *CartService) AddItem(ctx context.Context, cart *service.CartStore, req *models.AddItemRequest) (*models.CartView, error) {
	ret := _m.Called(ctx, cart, req)

	var r0 *models.CartView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartView)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) UpdateQuantity(ctx context.Context, cart *service.CartStore, itemID int, req *models.UpdateQuantityRequest) (*models.CartView, error) {
	ret := _m.Called(ctx, cart, itemID, req)

	var r0 *models.CartView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartView)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) RemoveItem(ctx context.Context, cart *service.CartStore, itemID int, eventDate *string) (*models.CartView, error) {
	ret := _m.Called(ctx, cart, itemID, eventDate)

	var r0 *models.CartView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartView)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) ClearCart(ctx context.Context, cart *service.CartStore) (*models.CartView, error) {
	ret := _m.Called(ctx, cart)

	var r0 *models.CartView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartView)
	}

	return r0, ret.Error(1)
}

// NewCartService creates a new instance of CartService. It also registers a cleanup
// function to assert the mocks expectations.
func NewCartService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartService {
	m := &CartService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
