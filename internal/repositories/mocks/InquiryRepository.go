package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// InquiryRepository is a testify mock of the InquiryRepository interface.
type InquiryRepository struct {
	mock.Mock
}

func (_m *InquiryRepository) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	ret := _m.Called(ctx, inquiry)

	return ret.Error(0)
}

func (_m *InquiryRepository) UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus, errorMsg string) error {
	ret := _m.Called(ctx, id, status, errorMsg)

	return ret.Error(0)
}

// NewInquiryRepository creates a new instance of InquiryRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewInquiryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *InquiryRepository {
	m := &InquiryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
