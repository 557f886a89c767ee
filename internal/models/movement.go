package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType represents the kind of a posted movement
type MovementType string

const (
	MovementTypeCredit MovementType = "CREDIT"
	MovementTypeDebit  MovementType = "DEBIT"
)

// Valid reports whether the movement type is one of the known values
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeCredit, MovementTypeDebit:
		return true
	}
	return false
}

// Movement is an immutable record of a single posted credit or debit.
// Balance is the account's current balance immediately after this movement
// was applied; it is a point-in-time snapshot and is never recomputed.
type Movement struct {
	Date        time.Time       `db:"date" json:"date"`
	Type        MovementType    `db:"movement_type" json:"movementType"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Balance     decimal.Decimal `db:"balance" json:"balance"`
	Description string          `db:"description" json:"description"`
	AccountID   int64           `db:"account_id" json:"accountId"`
	ID          int64           `db:"movement_id" json:"movementId"`
}

// NewCredit builds a credit movement carrying the post-mutation balance snapshot.
func NewCredit(accountID int64, amount, balanceAfter decimal.Decimal, description string) *Movement {
	return &Movement{
		AccountID:   accountID,
		Type:        MovementTypeCredit,
		Amount:      amount,
		Balance:     balanceAfter,
		Date:        time.Now(),
		Description: description,
	}
}

// NewDebit builds a debit movement carrying the post-mutation balance snapshot.
func NewDebit(accountID int64, amount, balanceAfter decimal.Decimal, description string) *Movement {
	return &Movement{
		AccountID:   accountID,
		Type:        MovementTypeDebit,
		Amount:      amount,
		Balance:     balanceAfter,
		Date:        time.Now(),
		Description: description,
	}
}

// IsCredit reports whether the movement is a credit
func (m *Movement) IsCredit() bool { return m.Type == MovementTypeCredit }

// IsDebit reports whether the movement is a debit
func (m *Movement) IsDebit() bool { return m.Type == MovementTypeDebit }
