package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/stretchr/testify/mock"
)

// ReviewService is a testify mock of the ReviewService interface.
type ReviewService struct {
	mock.Mock
}

func (_m *ReviewService) Summary(ctx context.Context, productID int) (*models.ReviewSummary, error) {
	ret := _m.Called(ctx, productID)

	var r0 *models.ReviewSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ReviewSummary)
	}

	return r0, ret.Error(1)
}

func (_m *ReviewService) Submit(ctx context.Context, identity *models.Identity, productID int, req *models.CreateReviewRequest) (*models.Review, error) {
	ret := _m.Called(ctx, identity, productID, req)

	var r0 *models.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Review)
	}

	return r0, ret.Error(1)
}

// NewReviewService creates a new instance of ReviewService. It also registers a cleanup
// function to assert the mocks expectations.
func NewReviewService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewService {
	m := &ReviewService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
