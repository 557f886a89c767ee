package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/acardenas/bank-ledger/internal/repository"
)

// CustomerEventPublisher announces customer lifecycle events to the event
// channel. Publishing is fire-and-forget from the caller's point of view.
type CustomerEventPublisher interface {
	PublishCustomerCreated(ctx context.Context, customer *models.Customer) error
}

// CustomerService handles the authoritative customer registry owned by the
// customer service.
type CustomerService struct {
	customers repository.CustomerRepository
	publisher CustomerEventPublisher
	logger    *slog.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers repository.CustomerRepository, publisher CustomerEventPublisher, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		customers: customers,
		publisher: publisher,
		logger:    logger,
	}
}

// Create registers a new customer and announces it on the event channel.
// Publish failures are logged and do not roll back the create.
func (s *CustomerService) Create(ctx context.Context, person models.PersonInfo, password string, status bool) (*models.Customer, error) {
	exists, err := s.customers.ExistsByIdentification(ctx, person.Identification)
	if err != nil {
		return nil, errInternal("check identification", err)
	}
	if exists {
		return nil, errCustomerAlreadyExists(person.Identification)
	}

	now := time.Now()
	customer := &models.Customer{
		PersonInfo: person,
		Password:   password,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		if errors.Is(err, models.ErrDuplicateIdentification) {
			return nil, errCustomerAlreadyExists(person.Identification)
		}
		return nil, errInternal("create customer", err)
	}

	if err := s.publisher.PublishCustomerCreated(ctx, customer); err != nil {
		s.logger.Error("failed to publish customer created event",
			"customer_id", customer.ID,
			"error", err,
		)
	}

	return customer, nil
}

// GetByID retrieves a single customer
func (s *CustomerService) GetByID(ctx context.Context, customerID int64) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, errCustomerNotFound(customerID)
	}
	if err != nil {
		return nil, errInternal("load customer", err)
	}
	return customer, nil
}

// ListAll returns one page of customers
func (s *CustomerService) ListAll(ctx context.Context, page, size int) ([]*models.Customer, error) {
	customers, err := s.customers.FindAllPaged(ctx, page, size)
	if err != nil {
		return nil, errInternal("list customers", err)
	}
	return customers, nil
}

// Update overwrites a customer's personal fields, password and status
func (s *CustomerService) Update(ctx context.Context, customerID int64, person models.PersonInfo, password string, status bool) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, errCustomerNotFound(customerID)
	}
	if err != nil {
		return nil, errInternal("load customer", err)
	}

	if customer.Identification != person.Identification {
		taken, err := s.customers.ExistsByIdentification(ctx, person.Identification)
		if err != nil {
			return nil, errInternal("check identification", err)
		}
		if taken {
			return nil, errCustomerAlreadyExists(person.Identification)
		}
	}

	customer.PersonInfo = person
	customer.Password = password
	customer.Status = status
	customer.UpdatedAt = time.Now()

	if err := s.customers.Save(ctx, customer); err != nil {
		if errors.Is(err, models.ErrDuplicateIdentification) {
			return nil, errCustomerAlreadyExists(person.Identification)
		}
		return nil, errInternal("save customer", err)
	}

	return customer, nil
}

// Delete removes a customer by identifier
func (s *CustomerService) Delete(ctx context.Context, customerID int64) error {
	err := s.customers.DeleteByID(ctx, customerID)
	if errors.Is(err, models.ErrNotFound) {
		return errCustomerNotFound(customerID)
	}
	if err != nil {
		return errInternal("delete customer", err)
	}
	return nil
}

func errCustomerAlreadyExists(identification string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeCustomerAlreadyExists,
		Message: fmt.Sprintf("Customer already exists with identification: %s", identification),
	}
}
