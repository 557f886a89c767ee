package mocks

import (
	"context"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a new MockCustomerRepository bound to the
// test's lifecycle.
func NewMockCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	var customer *models.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*models.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindAllPaged(ctx context.Context, page, size int) ([]*models.Customer, error) {
	args := m.Called(ctx, page, size)
	var customers []*models.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]*models.Customer)
	}
	return customers, args.Error(1)
}

func (m *MockCustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	args := m.Called(ctx, identification)
	return args.Bool(0), args.Error(1)
}
