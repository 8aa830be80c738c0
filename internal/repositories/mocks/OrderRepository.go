package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/stretchr/testify/mock"
)

// OrderRepository is a testify mock of the OrderRepository interface.
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) ListOrdersByOwner(ctx context.Context, ownerID string) ([]models.Order, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 []models.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
