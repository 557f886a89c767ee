package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/acardenas/bank-ledger/internal/db"
)

// IdempotencyKey tracks processed requests to prevent duplicate postings
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}

// IdempotencyRepository stores and retrieves cached responses for idempotent
// requests.
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*IdempotencyKey, error)
	Store(ctx context.Context, idemKey *IdempotencyKey) error
}

// idempotencyRepository implements IdempotencyRepository
type idempotencyRepository struct {
	q db.Querier
}

// NewIdempotencyRepository creates a new IdempotencyRepository over the given Querier.
func NewIdempotencyRepository(q db.Querier) IdempotencyRepository {
	return &idempotencyRepository{q: q}
}

// Get returns the cached response for (key, path), or nil when none exists.
func (r *idempotencyRepository) Get(ctx context.Context, key, requestPath string) (*IdempotencyKey, error) {
	query := `
		SELECT key, request_path, response_status, response_body, created_at
		FROM idempotency_keys
		WHERE key = $1 AND request_path = $2
	`

	var idemKey IdempotencyKey
	err := r.q.QueryRowContext(ctx, query, key, requestPath).Scan(
		&idemKey.Key,
		&idemKey.RequestPath,
		&idemKey.ResponseStatus,
		&idemKey.ResponseBody,
		&idemKey.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}

	return &idemKey, nil
}

// Store persists a cached response. A concurrent duplicate insert is ignored:
// first writer wins.
func (r *idempotencyRepository) Store(ctx context.Context, idemKey *IdempotencyKey) error {
	query := `
		INSERT INTO idempotency_keys (key, request_path, response_status, response_body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key, request_path) DO NOTHING
	`

	_, err := r.q.ExecContext(ctx, query,
		idemKey.Key,
		idemKey.RequestPath,
		idemKey.ResponseStatus,
		idemKey.ResponseBody,
		idemKey.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}

	return nil
}
