package service

import (
	"context"
	"log/slog"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/acardenas/bank-ledger/internal/repository"
)

// CustomerRegistryService keeps the account service's customer shadow in
// sync with the upstream registry. Registration is an idempotent upsert
// keyed by the upstream customer identifier.
type CustomerRegistryService struct {
	customers repository.CustomerShadowRepository
	logger    *slog.Logger
}

// NewCustomerRegistryService creates a new CustomerRegistryService
func NewCustomerRegistryService(customers repository.CustomerShadowRepository, logger *slog.Logger) *CustomerRegistryService {
	return &CustomerRegistryService{
		customers: customers,
		logger:    logger,
	}
}

// Register inserts or overwrites the local copy of an upstream customer.
func (s *CustomerRegistryService) Register(ctx context.Context, customer *models.CustomerShadow) (*models.CustomerShadow, error) {
	if err := s.customers.Upsert(ctx, customer); err != nil {
		return nil, errInternal("upsert customer", err)
	}

	s.logger.Info("customer registered", "customer_id", customer.ID)
	return customer, nil
}
