package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acardenas/bank-ledger/internal/db"
	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/acardenas/bank-ledger/internal/repository"
	"github.com/shopspring/decimal"
)

// MovementService posts movements against accounts and keeps the running
// balance consistent: a posting either persists both the mutated account and
// the movement, or nothing at all.
type MovementService struct {
	db        *db.DB
	reconcile bool
}

// NewMovementService creates a new MovementService. reconcileOnDelete enables
// the stricter mode in which deleting a movement adjusts the account balance.
func NewMovementService(database *db.DB, reconcileOnDelete bool) *MovementService {
	return &MovementService{
		db:        database,
		reconcile: reconcileOnDelete,
	}
}

// Register validates and posts a movement. The amount check happens before
// any database access; the account row is locked for the duration of the
// transaction, so concurrent postings against one account serialize.
func (s *MovementService) Register(ctx context.Context, accountID int64, movementType models.MovementType, amount decimal.Decimal, description string) (*models.Movement, error) {
	if amount.Sign() <= 0 {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: "The movement amount must be greater than zero",
		}
	}
	if !movementType.Valid() {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidMovementType,
			Message: fmt.Sprintf("Unknown movement type: %s", movementType),
		}
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, errInternal("start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txAccountRepo := repository.NewAccountRepository(tx)
	txMovementRepo := repository.NewMovementRepository(tx)

	movement, err := s.performRegister(ctx, txAccountRepo, txMovementRepo, accountID, movementType, amount, description)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, errInternal("commit transaction", err)
	}

	return movement, nil
}

// performRegister contains the core posting business logic
func (s *MovementService) performRegister(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	movementRepo repository.MovementRepository,
	accountID int64,
	movementType models.MovementType,
	amount decimal.Decimal,
	description string,
) (*models.Movement, error) {
	account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, errAccountNotFound(accountID)
	}
	if err != nil {
		return nil, errInternal("load account", err)
	}

	var movement *models.Movement
	switch movementType {
	case models.MovementTypeDebit:
		if err := account.Debit(amount); err != nil {
			var insufficient *models.InsufficientBalanceError
			if errors.As(err, &insufficient) {
				return nil, &ServiceError{
					Code:    ErrCodeInsufficientBalance,
					Message: "Insufficient balance",
					Err:     insufficient,
				}
			}
			return nil, errInternal("debit account", err)
		}
		movement = models.NewDebit(account.ID, amount, account.CurrentBalance, description)
	case models.MovementTypeCredit:
		account.Credit(amount)
		movement = models.NewCredit(account.ID, amount, account.CurrentBalance, description)
	}

	if err := accountRepo.Save(ctx, account); err != nil {
		return nil, errInternal("save account", err)
	}
	if err := movementRepo.Create(ctx, movement); err != nil {
		return nil, errInternal("save movement", err)
	}

	return movement, nil
}

// GetMovement retrieves a movement scoped to its owning account
func (s *MovementService) GetMovement(ctx context.Context, accountID, movementID int64) (*models.Movement, error) {
	repo := repository.NewMovementRepository(s.db)
	return s.performGetMovement(ctx, repo, accountID, movementID)
}

func (s *MovementService) performGetMovement(ctx context.Context, movementRepo repository.MovementRepository, accountID, movementID int64) (*models.Movement, error) {
	movement, err := movementRepo.FindByIDAndAccountID(ctx, movementID, accountID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, errMovementNotFound(movementID)
	}
	if err != nil {
		return nil, errInternal("load movement", err)
	}
	return movement, nil
}

// ListMovements returns one page of an account's movements, most recent
// first. The account must exist.
func (s *MovementService) ListMovements(ctx context.Context, accountID int64, page, size int) ([]*models.Movement, error) {
	return s.performListMovements(ctx,
		repository.NewAccountRepository(s.db),
		repository.NewMovementRepository(s.db),
		accountID, page, size)
}

func (s *MovementService) performListMovements(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	movementRepo repository.MovementRepository,
	accountID int64,
	page, size int,
) ([]*models.Movement, error) {
	exists, err := accountRepo.ExistsByID(ctx, accountID)
	if err != nil {
		return nil, errInternal("check account existence", err)
	}
	if !exists {
		return nil, errAccountNotFound(accountID)
	}

	movements, err := movementRepo.FindByAccountIDPaged(ctx, accountID, page, size)
	if err != nil {
		return nil, errInternal("list movements", err)
	}
	return movements, nil
}

// DeleteMovement removes a movement. By default the account's running
// balance is left untouched and the movement history no longer sums to the
// balance; deletes are treated as administrative corrections. With
// reconciliation enabled the account balance is adjusted in the same
// transaction.
func (s *MovementService) DeleteMovement(ctx context.Context, accountID, movementID int64) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errInternal("start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txAccountRepo := repository.NewAccountRepository(tx)
	txMovementRepo := repository.NewMovementRepository(tx)

	if err := s.performDeleteMovement(ctx, txAccountRepo, txMovementRepo, accountID, movementID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errInternal("commit transaction", err)
	}

	return nil
}

func (s *MovementService) performDeleteMovement(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	movementRepo repository.MovementRepository,
	accountID, movementID int64,
) error {
	movement, err := movementRepo.FindByIDAndAccountID(ctx, movementID, accountID)
	if errors.Is(err, models.ErrNotFound) {
		return errMovementNotFound(movementID)
	}
	if err != nil {
		return errInternal("load movement", err)
	}

	if s.reconcile {
		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if errors.Is(err, models.ErrNotFound) {
			return errAccountNotFound(accountID)
		}
		if err != nil {
			return errInternal("load account", err)
		}

		// Undo the movement's effect on the running balance.
		if movement.IsCredit() {
			if err := account.Debit(movement.Amount); err != nil {
				var insufficient *models.InsufficientBalanceError
				if errors.As(err, &insufficient) {
					return &ServiceError{
						Code:    ErrCodeInsufficientBalance,
						Message: "Insufficient balance",
						Err:     insufficient,
					}
				}
				return errInternal("reconcile balance", err)
			}
		} else {
			account.Credit(movement.Amount)
		}

		if err := accountRepo.Save(ctx, account); err != nil {
			return errInternal("save account", err)
		}
	}

	if err := movementRepo.DeleteByID(ctx, movementID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return errMovementNotFound(movementID)
		}
		return errInternal("delete movement", err)
	}

	return nil
}
