package service

import (
	"context"
	"errors"
	"time"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/acardenas/bank-ledger/internal/repository"
	"github.com/shopspring/decimal"
)

// StatementReport is a customer's grouped account statement over a date
// window.
type StatementReport struct {
	GeneratedAt time.Time              `json:"generatedAt"`
	StartDate   string                 `json:"startDate"`
	EndDate     string                 `json:"endDate"`
	Customer    *models.CustomerShadow `json:"customer"`
	Accounts    []*AccountStatement    `json:"accounts"`
}

// AccountStatement is one account's group within a statement report.
// CurrentBalance is the snapshot balance of the most recent movement in the
// window, not a live recomputation; it is unset when the window holds no
// movements (in which case the account contributes no group at all).
type AccountStatement struct {
	AccountNumber  string             `json:"accountNumber"`
	AccountType    models.AccountType `json:"accountType"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	CurrentBalance *decimal.Decimal   `json:"currentBalance,omitempty"`
	Movements      []*MovementDetail  `json:"movements"`
	AccountID      int64              `json:"accountId"`
	Status         bool               `json:"status"`
}

// MovementDetail is one movement row within an account group, most recent
// first.
type MovementDetail struct {
	Date        time.Time           `json:"date"`
	Type        models.MovementType `json:"movementType"`
	Amount      decimal.Decimal     `json:"amount"`
	Balance     decimal.Decimal     `json:"balance"`
	Description string              `json:"description"`
	MovementID  int64               `json:"movementId"`
}

// ReportService aggregates a customer's accounts and movements into
// statement reports.
type ReportService struct {
	customers repository.CustomerShadowRepository
	accounts  repository.AccountRepository
	movements repository.MovementRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	customers repository.CustomerShadowRepository,
	accounts repository.AccountRepository,
	movements repository.MovementRepository,
) *ReportService {
	return &ReportService{
		customers: customers,
		accounts:  accounts,
		movements: movements,
	}
}

// GetClientReport builds the statement for one customer over [start, end).
// Both bounds must be midnight day boundaries: end is exclusive, the first
// day not in the window, and the report's displayed EndDate is the calendar
// day before it. Accounts are visited in first-seen order; an account appears
// in the report only when at least one of its movements falls inside the
// window.
func (s *ReportService) GetClientReport(ctx context.Context, clientID int64, start, end time.Time) (*StatementReport, error) {
	customer, err := s.customers.FindByID(ctx, clientID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, errCustomerNotFound(clientID)
	}
	if err != nil {
		return nil, errInternal("load customer", err)
	}

	accounts, err := s.accounts.FindByCustomerID(ctx, clientID)
	if err != nil {
		return nil, errInternal("list accounts by customer", err)
	}

	report := &StatementReport{
		Customer:    customer,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.AddDate(0, 0, -1).Format("2006-01-02"),
		GeneratedAt: time.Now(),
		Accounts:    []*AccountStatement{},
	}

	for _, account := range accounts {
		movements, err := s.movements.FindByAccountIDAndDateBetween(ctx, account.ID, start, end)
		if err != nil {
			return nil, errInternal("list movements by date range", err)
		}
		if len(movements) == 0 {
			continue
		}

		group := &AccountStatement{
			AccountID:      account.ID,
			AccountNumber:  account.AccountNumber,
			AccountType:    account.AccountType,
			InitialBalance: account.InitialBalance,
			Status:         account.Status,
			Movements:      make([]*MovementDetail, 0, len(movements)),
		}

		// Movements arrive date DESC, so the first row carries the most
		// recent snapshot balance.
		balance := movements[0].Balance
		group.CurrentBalance = &balance

		for _, movement := range movements {
			group.Movements = append(group.Movements, &MovementDetail{
				MovementID:  movement.ID,
				Date:        movement.Date,
				Type:        movement.Type,
				Amount:      movement.Amount,
				Balance:     movement.Balance,
				Description: movement.Description,
			})
		}

		report.Accounts = append(report.Accounts, group)
	}

	return report, nil
}
