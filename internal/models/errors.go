package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateAccountNumber indicates an account with the same number already exists
	ErrDuplicateAccountNumber = errors.New("duplicate account number")

	// ErrDuplicateIdentification indicates a customer with the same identification already exists
	ErrDuplicateIdentification = errors.New("duplicate identification")
)

// InsufficientBalanceError is returned by Account.Debit when the requested
// amount exceeds the current balance. It carries the data the caller needs
// to report the rejection.
type InsufficientBalanceError struct {
	CurrentBalance  decimal.Decimal
	RequestedAmount decimal.Decimal
	AccountID       int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on account %d: balance %s, requested %s",
		e.AccountID, e.CurrentBalance.String(), e.RequestedAmount.String())
}
