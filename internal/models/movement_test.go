package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCredit(t *testing.T) {
	movement := NewCredit(42, decimal.NewFromInt(600), decimal.NewFromInt(2600), "Deposit of 600")

	assert.Equal(t, int64(42), movement.AccountID)
	assert.Equal(t, MovementTypeCredit, movement.Type)
	assert.True(t, movement.Amount.Equal(decimal.NewFromInt(600)))
	assert.True(t, movement.Balance.Equal(decimal.NewFromInt(2600)))
	assert.Equal(t, "Deposit of 600", movement.Description)
	assert.False(t, movement.Date.IsZero())
	assert.True(t, movement.IsCredit())
	assert.False(t, movement.IsDebit())
}

func TestNewDebit(t *testing.T) {
	movement := NewDebit(42, decimal.NewFromInt(575), decimal.NewFromInt(1425), "Withdrawal of 575")

	assert.Equal(t, MovementTypeDebit, movement.Type)
	assert.True(t, movement.Amount.Equal(decimal.NewFromInt(575)))
	assert.True(t, movement.Balance.Equal(decimal.NewFromInt(1425)))
	assert.True(t, movement.IsDebit())
	assert.False(t, movement.IsCredit())
}

func TestMovementType_Valid(t *testing.T) {
	assert.True(t, MovementTypeCredit.Valid())
	assert.True(t, MovementTypeDebit.Valid())
	assert.False(t, MovementType("TRANSFER").Valid())
	assert.False(t, MovementType("").Valid())
}
