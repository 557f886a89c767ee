package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acardenas/bank-ledger/internal/db"
	"github.com/acardenas/bank-ledger/internal/models"
)

// CustomerShadowRepository defines data access for the account service's
// local copy of upstream customers.
type CustomerShadowRepository interface {
	Upsert(ctx context.Context, customer *models.CustomerShadow) error
	FindByID(ctx context.Context, id int64) (*models.CustomerShadow, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// customerShadowRepository implements CustomerShadowRepository
type customerShadowRepository struct {
	q db.Querier
}

// NewCustomerShadowRepository creates a new CustomerShadowRepository over the
// given Querier.
func NewCustomerShadowRepository(q db.Querier) CustomerShadowRepository {
	return &customerShadowRepository{q: q}
}

// Upsert inserts the customer if absent, otherwise overwrites its
// descriptive fields. Keyed by the upstream customer identifier, so replayed
// events are idempotent.
func (r *customerShadowRepository) Upsert(ctx context.Context, customer *models.CustomerShadow) error {
	query := `
		INSERT INTO customers (customer_id, name, identification, address, phone, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (customer_id) DO UPDATE
		SET name = EXCLUDED.name,
		    identification = EXCLUDED.identification,
		    address = EXCLUDED.address,
		    phone = EXCLUDED.phone,
		    status = EXCLUDED.status
	`

	_, err := r.q.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Identification,
		customer.Address,
		customer.Phone,
		customer.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert customer: %w", err)
	}

	return nil
}

// FindByID retrieves a shadow customer by its upstream identifier
func (r *customerShadowRepository) FindByID(ctx context.Context, id int64) (*models.CustomerShadow, error) {
	query := `
		SELECT customer_id, name, identification, address, phone, status
		FROM customers
		WHERE customer_id = $1
	`

	var customer models.CustomerShadow
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Identification,
		&customer.Address,
		&customer.Phone,
		&customer.Status,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &customer, nil
}

// ExistsByID reports whether a shadow customer with the identifier exists
func (r *customerShadowRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE customer_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return exists, nil
}
