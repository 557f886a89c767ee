package service

import (
	"context"
	"errors"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/acardenas/bank-ledger/internal/repository"
	"github.com/shopspring/decimal"
)

// AccountService handles the account lifecycle: creation, update, deletion
// and reads. Balance mutations are the MovementService's concern.
type AccountService struct {
	accounts  repository.AccountRepository
	customers repository.CustomerShadowRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accounts repository.AccountRepository, customers repository.CustomerShadowRepository) *AccountService {
	return &AccountService{
		accounts:  accounts,
		customers: customers,
	}
}

// Create opens a new account for an existing customer. The customer
// existence check always precedes the account-number uniqueness check.
// The current balance starts equal to the initial balance.
func (s *AccountService) Create(ctx context.Context, accountNumber string, accountType models.AccountType, initialBalance decimal.Decimal, status bool, customerID int64) (*models.Account, error) {
	customerExists, err := s.customers.ExistsByID(ctx, customerID)
	if err != nil {
		return nil, errInternal("check customer existence", err)
	}
	if !customerExists {
		return nil, errCustomerNotFound(customerID)
	}

	numberTaken, err := s.accounts.ExistsByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, errInternal("check account number", err)
	}
	if numberTaken {
		return nil, errAccountAlreadyExists(accountNumber)
	}

	account := models.NewAccount(accountNumber, accountType, initialBalance, status, customerID)
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, models.ErrDuplicateAccountNumber) {
			return nil, errAccountAlreadyExists(accountNumber)
		}
		return nil, errInternal("create account", err)
	}

	return account, nil
}

// Update overwrites an account's descriptive fields. The uniqueness check
// runs only when the requested number differs from the stored one; the
// current balance is never recomputed.
func (s *AccountService) Update(ctx context.Context, accountID int64, accountNumber string, accountType models.AccountType, initialBalance decimal.Decimal, status bool) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, errAccountNotFound(accountID)
	}
	if err != nil {
		return nil, errInternal("load account", err)
	}

	if account.AccountNumber != accountNumber {
		numberTaken, err := s.accounts.ExistsByAccountNumber(ctx, accountNumber)
		if err != nil {
			return nil, errInternal("check account number", err)
		}
		if numberTaken {
			return nil, errAccountAlreadyExists(accountNumber)
		}
	}

	account.Update(accountNumber, accountType, initialBalance, status)
	if err := s.accounts.Save(ctx, account); err != nil {
		if errors.Is(err, models.ErrDuplicateAccountNumber) {
			return nil, errAccountAlreadyExists(accountNumber)
		}
		return nil, errInternal("save account", err)
	}

	return account, nil
}

// Delete removes an account by identifier. Outstanding movements are not
// checked and are not cascade-deleted.
func (s *AccountService) Delete(ctx context.Context, accountID int64) error {
	err := s.accounts.DeleteByID(ctx, accountID)
	if errors.Is(err, models.ErrNotFound) {
		return errAccountNotFound(accountID)
	}
	if err != nil {
		return errInternal("delete account", err)
	}
	return nil
}

// GetByID retrieves a single account
func (s *AccountService) GetByID(ctx context.Context, accountID int64) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, errAccountNotFound(accountID)
	}
	if err != nil {
		return nil, errInternal("load account", err)
	}
	return account, nil
}

// ListAll returns one page of accounts. No matches yield an empty slice.
func (s *AccountService) ListAll(ctx context.Context, page, size int) ([]*models.Account, error) {
	accounts, err := s.accounts.FindAllPaged(ctx, page, size)
	if err != nil {
		return nil, errInternal("list accounts", err)
	}
	return accounts, nil
}

// ListByCustomer returns every account owned by the customer. No matches
// yield an empty slice.
func (s *AccountService) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Account, error) {
	accounts, err := s.accounts.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errInternal("list accounts by customer", err)
	}
	return accounts, nil
}
