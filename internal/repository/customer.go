package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acardenas/bank-ledger/internal/db"
	"github.com/acardenas/bank-ledger/internal/models"
)

// CustomerRepository defines data access for the authoritative customer
// registry owned by the customer service.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	Save(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	FindAllPaged(ctx context.Context, page, size int) ([]*models.Customer, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByIdentification(ctx context.Context, identification string) (bool, error)
}

const customerColumns = `customer_id, name, gender, identification, address, phone,
	       password, status, created_at, updated_at`

// customerRepository implements CustomerRepository
type customerRepository struct {
	q db.Querier
}

// NewCustomerRepository creates a new CustomerRepository over the given Querier.
func NewCustomerRepository(q db.Querier) CustomerRepository {
	return &customerRepository{q: q}
}

// Create inserts a new customer and assigns its identifier.
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (name, gender, identification, address, phone,
		                       password, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING customer_id
	`

	err := r.q.QueryRowContext(ctx, query,
		customer.Name,
		customer.Gender,
		customer.Identification,
		customer.Address,
		customer.Phone,
		customer.Password,
		customer.Status,
		customer.CreatedAt,
		customer.UpdatedAt,
	).Scan(&customer.ID)

	if isUniqueViolation(err) {
		return models.ErrDuplicateIdentification
	}
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// Save persists the current state of an existing customer.
func (r *customerRepository) Save(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET name = $2,
		    gender = $3,
		    identification = $4,
		    address = $5,
		    phone = $6,
		    password = $7,
		    status = $8,
		    updated_at = $9
		WHERE customer_id = $1
	`

	result, err := r.q.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Gender,
		customer.Identification,
		customer.Address,
		customer.Phone,
		customer.Password,
		customer.Status,
		customer.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return models.ErrDuplicateIdentification
	}
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
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

// FindByID retrieves a customer by its identifier
func (r *customerRepository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`

	var customer models.Customer
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Gender,
		&customer.Identification,
		&customer.Address,
		&customer.Phone,
		&customer.Password,
		&customer.Status,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &customer, nil
}

// FindAllPaged retrieves one page of customers ordered by identifier
func (r *customerRepository) FindAllPaged(ctx context.Context, page, size int) ([]*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY customer_id LIMIT $1 OFFSET $2`

	rows, err := r.q.QueryContext(ctx, query, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Gender,
			&customer.Identification,
			&customer.Address,
			&customer.Phone,
			&customer.Password,
			&customer.Status,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, &customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer rows: %w", err)
	}

	return customers, nil
}

// DeleteByID removes a customer
func (r *customerRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
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

// ExistsByIdentification reports whether a customer with the identification
// number exists
func (r *customerRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE identification = $1)`, identification,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check identification existence: %w", err)
	}
	return exists, nil
}
