package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/acardenas/bank-ledger/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/acardenas/bank-ledger/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequest builds a request routed through a chi context so URL parameters
// resolve inside handlers.
func newRequest(t *testing.T, method, target, body string, params map[string]string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for name, value := range params {
		rctx.URLParams.Add(name, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

type mockAccountManager struct {
	mock.Mock
}

func (m *mockAccountManager) Create(ctx context.Context, accountNumber string, accountType models.AccountType, initialBalance decimal.Decimal, status bool, customerID int64) (*models.Account, error) {
	args := m.Called(ctx, accountNumber, accountType, initialBalance, status, customerID)
	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func (m *mockAccountManager) Update(ctx context.Context, accountID int64, accountNumber string, accountType models.AccountType, initialBalance decimal.Decimal, status bool) (*models.Account, error) {
	args := m.Called(ctx, accountID, accountNumber, accountType, initialBalance, status)
	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func (m *mockAccountManager) Delete(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *mockAccountManager) GetByID(ctx context.Context, accountID int64) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func (m *mockAccountManager) ListAll(ctx context.Context, page, size int) ([]*models.Account, error) {
	args := m.Called(ctx, page, size)
	var accounts []*models.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]*models.Account)
	}
	return accounts, args.Error(1)
}

func (m *mockAccountManager) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Account, error) {
	args := m.Called(ctx, customerID)
	var accounts []*models.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]*models.Account)
	}
	return accounts, args.Error(1)
}

type mockMovementPoster struct {
	mock.Mock
}

func (m *mockMovementPoster) Register(ctx context.Context, accountID int64, movementType models.MovementType, amount decimal.Decimal, description string) (*models.Movement, error) {
	args := m.Called(ctx, accountID, movementType, amount, description)
	var movement *models.Movement
	if args.Get(0) != nil {
		movement = args.Get(0).(*models.Movement)
	}
	return movement, args.Error(1)
}

func (m *mockMovementPoster) GetMovement(ctx context.Context, accountID, movementID int64) (*models.Movement, error) {
	args := m.Called(ctx, accountID, movementID)
	var movement *models.Movement
	if args.Get(0) != nil {
		movement = args.Get(0).(*models.Movement)
	}
	return movement, args.Error(1)
}

func (m *mockMovementPoster) ListMovements(ctx context.Context, accountID int64, page, size int) ([]*models.Movement, error) {
	args := m.Called(ctx, accountID, page, size)
	var movements []*models.Movement
	if args.Get(0) != nil {
		movements = args.Get(0).([]*models.Movement)
	}
	return movements, args.Error(1)
}

func (m *mockMovementPoster) DeleteMovement(ctx context.Context, accountID, movementID int64) error {
	args := m.Called(ctx, accountID, movementID)
	return args.Error(0)
}

type mockReportGenerator struct {
	mock.Mock
}

func (m *mockReportGenerator) GetClientReport(ctx context.Context, clientID int64, start, end time.Time) (*service.StatementReport, error) {
	args := m.Called(ctx, clientID, start, end)
	var report *service.StatementReport
	if args.Get(0) != nil {
		report = args.Get(0).(*service.StatementReport)
	}
	return report, args.Error(1)
}

type mockCustomerManager struct {
	mock.Mock
}

func (m *mockCustomerManager) Create(ctx context.Context, person models.PersonInfo, password string, status bool) (*models.Customer, error) {
	args := m.Called(ctx, person, password, status)
	var customer *models.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*models.Customer)
	}
	return customer, args.Error(1)
}

func (m *mockCustomerManager) GetByID(ctx context.Context, customerID int64) (*models.Customer, error) {
	args := m.Called(ctx, customerID)
	var customer *models.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*models.Customer)
	}
	return customer, args.Error(1)
}

func (m *mockCustomerManager) ListAll(ctx context.Context, page, size int) ([]*models.Customer, error) {
	args := m.Called(ctx, page, size)
	var customers []*models.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]*models.Customer)
	}
	return customers, args.Error(1)
}

func (m *mockCustomerManager) Update(ctx context.Context, customerID int64, person models.PersonInfo, password string, status bool) (*models.Customer, error) {
	args := m.Called(ctx, customerID, person, password, status)
	var customer *models.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*models.Customer)
	}
	return customer, args.Error(1)
}

func (m *mockCustomerManager) Delete(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}
