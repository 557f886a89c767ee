package mocks

import (
	"context"
	"time"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockMovementRepository is a mock implementation of repository.MovementRepository.
type MockMovementRepository struct {
	mock.Mock
}

// NewMockMovementRepository creates a new MockMovementRepository bound to the
// test's lifecycle.
func NewMockMovementRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMovementRepository {
	m := &MockMovementRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMovementRepository) Create(ctx context.Context, movement *models.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByID(ctx context.Context, id int64) (*models.Movement, error) {
	args := m.Called(ctx, id)
	var movement *models.Movement
	if args.Get(0) != nil {
		movement = args.Get(0).(*models.Movement)
	}
	return movement, args.Error(1)
}

func (m *MockMovementRepository) FindByIDAndAccountID(ctx context.Context, id, accountID int64) (*models.Movement, error) {
	args := m.Called(ctx, id, accountID)
	var movement *models.Movement
	if args.Get(0) != nil {
		movement = args.Get(0).(*models.Movement)
	}
	return movement, args.Error(1)
}

func (m *MockMovementRepository) FindByAccountIDPaged(ctx context.Context, accountID int64, page, size int) ([]*models.Movement, error) {
	args := m.Called(ctx, accountID, page, size)
	var movements []*models.Movement
	if args.Get(0) != nil {
		movements = args.Get(0).([]*models.Movement)
	}
	return movements, args.Error(1)
}

func (m *MockMovementRepository) FindByAccountIDAndDateBetween(ctx context.Context, accountID int64, start, end time.Time) ([]*models.Movement, error) {
	args := m.Called(ctx, accountID, start, end)
	var movements []*models.Movement
	if args.Get(0) != nil {
		movements = args.Get(0).([]*models.Movement)
	}
	return movements, args.Error(1)
}

func (m *MockMovementRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovementRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
