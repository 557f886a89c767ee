// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a new MockAccountRepository bound to the
// test's lifecycle.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindByIDForUpdate(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	args := m.Called(ctx, accountNumber)
	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAllPaged(ctx context.Context, page, size int) ([]*models.Account, error) {
	args := m.Called(ctx, page, size)
	var accounts []*models.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]*models.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*models.Account, error) {
	args := m.Called(ctx, customerID)
	var accounts []*models.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]*models.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
