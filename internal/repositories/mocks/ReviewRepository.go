package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/stretchr/testify/mock"
)

// ReviewRepository is a testify mock of the ReviewRepository interface.
type ReviewRepository struct {
	mock.Mock
}

func (_m *ReviewRepository) ListReviewsByProduct(ctx context.Context, productID int) ([]models.Review, error) {
	ret := _m.Called(ctx, productID)

	var r0 []models.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Review)
	}

	return r0, ret.Error(1)
}

func (_m *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	ret := _m.Called(ctx, review)

	return ret.Error(0)
}

// NewReviewRepository creates a new instance of ReviewRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewRepository {
	m := &ReviewRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
