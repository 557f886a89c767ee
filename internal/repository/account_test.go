package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockDB opens a sqlmock connection. *sql.DB satisfies db.Querier, so
// repositories run against it directly.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to open sqlmock connection")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet(), "unmet sqlmock expectations")
		_ = conn.Close()
	})

	return conn, mock
}

func accountRows(account *models.Account) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"account_id", "account_number", "account_type", "initial_balance",
		"current_balance", "status", "customer_id", "created_at", "updated_at",
	}).AddRow(
		account.ID, account.AccountNumber, string(account.AccountType),
		account.InitialBalance.String(), account.CurrentBalance.String(),
		account.Status, account.CustomerID, account.CreatedAt, account.UpdatedAt,
	)
}

func testAccount() *models.Account {
	return &models.Account{
		ID:             42,
		AccountNumber:  "478758",
		AccountType:    models.AccountTypeSavings,
		InitialBalance: decimal.NewFromInt(2000),
		CurrentBalance: decimal.NewFromInt(2000),
		Status:         true,
		CustomerID:     1,
		CreatedAt:      time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestAccountRepository_Create(t *testing.T) {
	t.Run("assigns the generated identifier", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewAccountRepository(conn)

		account := testAccount()
		account.ID = 0

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts")).
			WithArgs(account.AccountNumber, account.AccountType, account.InitialBalance,
				account.CurrentBalance, account.Status, account.CustomerID,
				account.CreatedAt, account.UpdatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"account_id"}).AddRow(int64(42)))

		err := repo.Create(context.Background(), account)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), account.ID)
	})

	t.Run("maps a unique violation to the duplicate sentinel", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewAccountRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts")).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(context.Background(), testAccount())

		assert.ErrorIs(t, err, models.ErrDuplicateAccountNumber)
	})
}

func TestAccountRepository_Save(t *testing.T) {
	t.Run("updates the existing row", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewAccountRepository(conn)

		account := testAccount()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts")).
			WithArgs(account.ID, account.AccountNumber, account.AccountType,
				account.InitialBalance, account.CurrentBalance, account.Status,
				account.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(context.Background(), account))
	})

	t.Run("zero rows affected means not found", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewAccountRepository(conn)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Save(context.Background(), testAccount())

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestAccountRepository_FindByID(t *testing.T) {
	t.Run("existing account", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewAccountRepository(conn)

		expected := testAccount()

		mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE account_id = $1")).
			WithArgs(int64(42)).
			WillReturnRows(accountRows(expected))

		account, err := repo.FindByID(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, expected.AccountNumber, account.AccountNumber)
		assert.True(t, account.CurrentBalance.Equal(expected.CurrentBalance))
	})

	t.Run("missing account", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewAccountRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE account_id = $1")).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		account, err := repo.FindByID(context.Background(), 99)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestAccountRepository_FindByIDForUpdate(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewAccountRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE account_id = $1 FOR UPDATE")).
		WithArgs(int64(42)).
		WillReturnRows(accountRows(testAccount()))

	account, err := repo.FindByIDForUpdate(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), account.ID)
}

func TestAccountRepository_FindAllPaged(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewAccountRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY account_id LIMIT $1 OFFSET $2")).
		WithArgs(20, 40).
		WillReturnRows(accountRows(testAccount()))

	accounts, err := repo.FindAllPaged(context.Background(), 2, 20)

	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountRepository_DeleteByID(t *testing.T) {
	t.Run("missing account", func(t *testing.T) {
		conn, mock := newMockDB(t)
		repo := NewAccountRepository(conn)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE account_id = $1")).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteByID(context.Background(), 99), models.ErrNotFound)
	})
}

func TestAccountRepository_ExistsByAccountNumber(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewAccountRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)")).
		WithArgs("478758").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByAccountNumber(context.Background(), "478758")

	require.NoError(t, err)
	assert.True(t, exists)
}
