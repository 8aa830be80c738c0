package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/stretchr/testify/mock"
)

// CatalogService is a testify mock of the CatalogService interface.
type CatalogService struct {
	mock.Mock
}

func (_m *CatalogService) ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.ProductListResponse, error) {
	ret := _m.Called(ctx, filter)

	var r0 *models.ProductListResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ProductListResponse)
	}

	return r0, ret.Error(1)
}

func (_m *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	ret := _m.Called(ctx)

	var r0 []models.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Category)
	}

	return r0, ret.Error(1)
}

// NewCatalogService creates a new instance of CatalogService. It also registers a cleanup
// function to assert the mocks expectations.
func NewCatalogService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogService {
	m := &CatalogService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
