package mocks

import (
	"context"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCustomerShadowRepository is a mock implementation of
// repository.CustomerShadowRepository.
type MockCustomerShadowRepository struct {
	mock.Mock
}

// NewMockCustomerShadowRepository creates a new MockCustomerShadowRepository
// bound to the test's lifecycle.
func NewMockCustomerShadowRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerShadowRepository {
	m := &MockCustomerShadowRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerShadowRepository) Upsert(ctx context.Context, customer *models.CustomerShadow) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerShadowRepository) FindByID(ctx context.Context, id int64) (*models.CustomerShadow, error) {
	args := m.Called(ctx, id)
	var customer *models.CustomerShadow
	if args.Get(0) != nil {
		customer = args.Get(0).(*models.CustomerShadow)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerShadowRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
