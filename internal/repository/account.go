// Package repository provides the persistence gateway for both services.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acardenas/bank-ledger/internal/db"
	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/lib/pq"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	Save(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*models.Account, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	FindAllPaged(ctx context.Context, page, size int) ([]*models.Account, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]*models.Account, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

const accountColumns = `account_id, account_number, account_type, initial_balance,
	       current_balance, status, customer_id, created_at, updated_at`

// accountRepository implements AccountRepository
type accountRepository struct {
	q db.Querier
}

// NewAccountRepository creates a new AccountRepository over the given Querier
// (the connection pool or an open transaction).
func NewAccountRepository(q db.Querier) AccountRepository {
	return &accountRepository{q: q}
}

// Create inserts a new account and assigns its identifier.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (account_number, account_type, initial_balance,
		                      current_balance, status, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING account_id
	`

	err := r.q.QueryRowContext(ctx, query,
		account.AccountNumber,
		account.AccountType,
		account.InitialBalance,
		account.CurrentBalance,
		account.Status,
		account.CustomerID,
		account.CreatedAt,
		account.UpdatedAt,
	).Scan(&account.ID)

	if isUniqueViolation(err) {
		return models.ErrDuplicateAccountNumber
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// Save persists the current state of an existing account.
func (r *accountRepository) Save(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET account_number = $2,
		    account_type = $3,
		    initial_balance = $4,
		    current_balance = $5,
		    status = $6,
		    updated_at = $7
		WHERE account_id = $1
	`

	result, err := r.q.ExecContext(ctx, query,
		account.ID,
		account.AccountNumber,
		account.AccountType,
		account.InitialBalance,
		account.CurrentBalance,
		account.Status,
		account.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return models.ErrDuplicateAccountNumber
	}
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
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

// FindByID retrieves an account by its identifier
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// FindByIDForUpdate retrieves an account by id and locks its row for the
// duration of the enclosing transaction. Serializes concurrent postings
// against the same account.
func (r *accountRepository) FindByIDForUpdate(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// FindByAccountNumber retrieves an account by its unique number
func (r *accountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, accountNumber))
}

// FindAllPaged retrieves one page of accounts ordered by identifier
func (r *accountRepository) FindAllPaged(ctx context.Context, page, size int) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY account_id LIMIT $1 OFFSET $2`

	rows, err := r.q.QueryContext(ctx, query, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	return r.scanMany(rows)
}

// FindByCustomerID retrieves every account owned by the given customer
func (r *accountRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = $1 ORDER BY account_id`

	rows, err := r.q.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by customer: %w", err)
	}
	defer rows.Close()

	return r.scanMany(rows)
}

// DeleteByID removes an account. Movements are not cascade-deleted.
func (r *accountRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM accounts WHERE account_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
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

// ExistsByAccountNumber reports whether an account with the number exists
func (r *accountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`, accountNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check account number existence: %w", err)
	}
	return exists, nil
}

// ExistsByID reports whether an account with the identifier exists
func (r *accountRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

func (r *accountRepository) scanOne(row *sql.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.AccountType,
		&account.InitialBalance,
		&account.CurrentBalance,
		&account.Status,
		&account.CustomerID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) scanMany(rows *sql.Rows) ([]*models.Account, error) {
	accounts := []*models.Account{}
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID,
			&account.AccountNumber,
			&account.AccountType,
			&account.InitialBalance,
			&account.CurrentBalance,
			&account.Status,
			&account.CustomerID,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return accounts, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
