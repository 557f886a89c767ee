package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/acardenas/bank-ledger/internal/db"
	"github.com/acardenas/bank-ledger/internal/models"
)

// MovementRepository defines the interface for movement data access
type MovementRepository interface {
	Create(ctx context.Context, movement *models.Movement) error
	FindByID(ctx context.Context, id int64) (*models.Movement, error)
	FindByIDAndAccountID(ctx context.Context, id, accountID int64) (*models.Movement, error)
	FindByAccountIDPaged(ctx context.Context, accountID int64, page, size int) ([]*models.Movement, error)
	FindByAccountIDAndDateBetween(ctx context.Context, accountID int64, start, end time.Time) ([]*models.Movement, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

const movementColumns = `movement_id, date, movement_type, amount, balance, account_id, description`

// movementRepository implements MovementRepository
type movementRepository struct {
	q db.Querier
}

// NewMovementRepository creates a new MovementRepository over the given Querier.
func NewMovementRepository(q db.Querier) MovementRepository {
	return &movementRepository{q: q}
}

// Create inserts a movement row and assigns its identifier. Movements are
// append-only: there is no update path.
func (r *movementRepository) Create(ctx context.Context, movement *models.Movement) error {
	query := `
		INSERT INTO movements (date, movement_type, amount, balance, account_id, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING movement_id
	`

	err := r.q.QueryRowContext(ctx, query,
		movement.Date,
		movement.Type,
		movement.Amount,
		movement.Balance,
		movement.AccountID,
		movement.Description,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("failed to create movement: %w", err)
	}

	return nil
}

// FindByID retrieves a movement by its identifier
func (r *movementRepository) FindByID(ctx context.Context, id int64) (*models.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// FindByIDAndAccountID retrieves a movement scoped to its owning account
func (r *movementRepository) FindByIDAndAccountID(ctx context.Context, id, accountID int64) (*models.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1 AND account_id = $2`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id, accountID))
}

// FindByAccountIDPaged retrieves one page of an account's movements,
// most recent first.
func (r *movementRepository) FindByAccountIDPaged(ctx context.Context, accountID int64, page, size int) ([]*models.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements
		WHERE account_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.q.QueryContext(ctx, query, accountID, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	defer rows.Close()

	return r.scanMany(rows)
}

// FindByAccountIDAndDateBetween retrieves an account's movements posted in
// [start, end), most recent first.
func (r *movementRepository) FindByAccountIDAndDateBetween(ctx context.Context, accountID int64, start, end time.Time) ([]*models.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements
		WHERE account_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC`

	rows, err := r.q.QueryContext(ctx, query, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements by date range: %w", err)
	}
	defer rows.Close()

	return r.scanMany(rows)
}

// DeleteByID removes a movement row. The owning account's balance is not
// adjusted here; reconciliation, when enabled, is the service's concern.
func (r *movementRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM movements WHERE movement_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movement: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// ExistsByID reports whether a movement with the identifier exists
func (r *movementRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM movements WHERE movement_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check movement existence: %w", err)
	}
	return exists, nil
}

func (r *movementRepository) scanOne(row *sql.Row) (*models.Movement, error) {
	var movement models.Movement
	err := row.Scan(
		&movement.ID,
		&movement.Date,
		&movement.Type,
		&movement.Amount,
		&movement.Balance,
		&movement.AccountID,
		&movement.Description,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan movement: %w", err)
	}

	return &movement, nil
}

func (r *movementRepository) scanMany(rows *sql.Rows) ([]*models.Movement, error) {
	movements := []*models.Movement{}
	for rows.Next() {
		var movement models.Movement
		if err := rows.Scan(
			&movement.ID,
			&movement.Date,
			&movement.Type,
			&movement.Amount,
			&movement.Balance,
			&movement.AccountID,
			&movement.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		movements = append(movements, &movement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movement rows: %w", err)
	}
	return movements, nil
}
