package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/stretchr/testify/mock"
)

// ProductRepository is a testify mock of the ProductRepository interface.
type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	ret := _m.Called(ctx)

	var r0 []models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	ret := _m.Called(ctx)

	var r0 []models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Category)
	}

	return r0, ret.Error(1)
}

// NewProductRepository creates a new instance of ProductRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
