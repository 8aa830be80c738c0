package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	"github.com/stretchr/testify/mock"
)

// ContactService is a testify mock of the ContactService interface.
type ContactService struct {
	mock.Mock
}

func (_m *ContactService) Submit(ctx context.Context, form *models.ContactInquiry) (*models.ContactResponse, error) {
	ret := _m.Called(ctx, form)

	var r0 *models.ContactResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ContactResponse)
	}

	return r0, ret.Error(1)
}

// NewContactService creates a new instance of ContactService. It also registers a cleanup
// function to assert the mocks expectations.
func NewContactService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContactService {
	m := &ContactService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
