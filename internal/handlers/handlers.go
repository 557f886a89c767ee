// Package handlers implements the HTTP layer for both services.
package handlers

import (
	"log/slog"

	"github.com/acardenas/bank-ledger/internal/service"
	"github.com/go-playground/validator/v10"
)

// Handler serves the account service endpoints: accounts, movements and
// statement reports.
type Handler struct {
	accountService  service.AccountManager
	movementService service.MovementPoster
	reportService   service.ReportGenerator
	healthChecker   service.HealthChecker
	logger          *slog.Logger
	validate        *validator.Validate
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	accountService service.AccountManager,
	movementService service.MovementPoster,
	reportService service.ReportGenerator,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		accountService:  accountService,
		movementService: movementService,
		reportService:   reportService,
		healthChecker:   healthChecker,
		logger:          logger,
		validate:        validator.New(),
	}
}

// CustomerHandler serves the customer service endpoints.
type CustomerHandler struct {
	customerService service.CustomerManager
	healthChecker   service.HealthChecker
	logger          *slog.Logger
	validate        *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler with injected service
// dependencies.
func NewCustomerHandler(
	customerService service.CustomerManager,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		healthChecker:   healthChecker,
		logger:          logger,
		validate:        validator.New(),
	}
}
