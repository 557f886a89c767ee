package service

import (
	"context"
	"time"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// MovementPoster posts and manages movements against accounts
type MovementPoster interface {
	Register(ctx context.Context, accountID int64, movementType models.MovementType, amount decimal.Decimal, description string) (*models.Movement, error)
	GetMovement(ctx context.Context, accountID, movementID int64) (*models.Movement, error)
	ListMovements(ctx context.Context, accountID int64, page, size int) ([]*models.Movement, error)
	DeleteMovement(ctx context.Context, accountID, movementID int64) error
}

// AccountManager handles the account lifecycle
type AccountManager interface {
	Create(ctx context.Context, accountNumber string, accountType models.AccountType, initialBalance decimal.Decimal, status bool, customerID int64) (*models.Account, error)
	Update(ctx context.Context, accountID int64, accountNumber string, accountType models.AccountType, initialBalance decimal.Decimal, status bool) (*models.Account, error)
	Delete(ctx context.Context, accountID int64) error
	GetByID(ctx context.Context, accountID int64) (*models.Account, error)
	ListAll(ctx context.Context, page, size int) ([]*models.Account, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*models.Account, error)
}

// ReportGenerator builds customer statement reports
type ReportGenerator interface {
	GetClientReport(ctx context.Context, clientID int64, start, end time.Time) (*StatementReport, error)
}

// CustomerRegistrar syncs the local customer shadow from upstream events
type CustomerRegistrar interface {
	Register(ctx context.Context, customer *models.CustomerShadow) (*models.CustomerShadow, error)
}

// CustomerManager handles the authoritative customer registry
type CustomerManager interface {
	Create(ctx context.Context, person models.PersonInfo, password string, status bool) (*models.Customer, error)
	GetByID(ctx context.Context, customerID int64) (*models.Customer, error)
	ListAll(ctx context.Context, page, size int) ([]*models.Customer, error)
	Update(ctx context.Context, customerID int64, person models.PersonInfo, password string, status bool) (*models.Customer, error)
	Delete(ctx context.Context, customerID int64) error
}

// Ensure concrete types implement interfaces
var (
	_ MovementPoster    = (*MovementService)(nil)
	_ AccountManager    = (*AccountService)(nil)
	_ ReportGenerator   = (*ReportService)(nil)
	_ CustomerRegistrar = (*CustomerRegistryService)(nil)
	_ CustomerManager   = (*CustomerService)(nil)
)
