package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType represents the type of a bank account
type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
)

// Valid reports whether the account type is one of the known values
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeChecking:
		return true
	}
	return false
}

// Account represents a ledger account owned by a customer.
//
// CurrentBalance is mutated only through Credit and Debit; descriptive
// fields are mutated only through Update, which never touches the balance.
type Account struct {
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
	AccountNumber  string          `db:"account_number" json:"accountNumber"`
	AccountType    AccountType     `db:"account_type" json:"accountType"`
	InitialBalance decimal.Decimal `db:"initial_balance" json:"initialBalance"`
	CurrentBalance decimal.Decimal `db:"current_balance" json:"currentBalance"`
	Status         bool            `db:"status" json:"status"`
	CustomerID     int64           `db:"customer_id" json:"customerId"`
	ID             int64           `db:"account_id" json:"accountId"`
}

// NewAccount builds a fresh account whose current balance starts equal to
// its initial balance.
func NewAccount(accountNumber string, accountType AccountType, initialBalance decimal.Decimal, status bool, customerID int64) *Account {
	now := time.Now()
	return &Account{
		AccountNumber:  accountNumber,
		AccountType:    accountType,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
		Status:         status,
		CustomerID:     customerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Credit adds amount to the current balance. The caller must have already
// validated the amount as strictly positive.
func (a *Account) Credit(amount decimal.Decimal) {
	a.CurrentBalance = a.CurrentBalance.Add(amount)
	a.UpdatedAt = time.Now()
}

// Debit subtracts amount from the current balance. A debit that would drive
// the balance negative fails with InsufficientBalanceError and leaves the
// account unmutated. A debit equal to the current balance is allowed.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.CurrentBalance.LessThan(amount) {
		return &InsufficientBalanceError{
			AccountID:       a.ID,
			CurrentBalance:  a.CurrentBalance,
			RequestedAmount: amount,
		}
	}
	a.CurrentBalance = a.CurrentBalance.Sub(amount)
	a.UpdatedAt = time.Now()
	return nil
}

// Update overwrites the descriptive fields. The current balance is tracked
// independently and is deliberately left untouched.
func (a *Account) Update(accountNumber string, accountType AccountType, initialBalance decimal.Decimal, status bool) {
	a.AccountNumber = accountNumber
	a.AccountType = accountType
	a.InitialBalance = initialBalance
	a.Status = status
	a.UpdatedAt = time.Now()
}
