package handlers

import (
	"log/slog"
	"net/http"

	"github.com/acardenas/bank-ledger/internal/api"
	"github.com/acardenas/bank-ledger/internal/config"
	"github.com/acardenas/bank-ledger/internal/db"
	"github.com/acardenas/bank-ledger/internal/middleware"
	"github.com/acardenas/bank-ledger/internal/repository"
	"github.com/acardenas/bank-ledger/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewAccountRouter creates and configures the account service router with
// all routes and middleware.
func NewAccountRouter(database *db.DB, cfg *config.Config, logger *slog.Logger) http.Handler {
	accountRepo := repository.NewAccountRepository(database)
	movementRepo := repository.NewMovementRepository(database)
	shadowRepo := repository.NewCustomerShadowRepository(database)

	accountService := service.NewAccountService(accountRepo, shadowRepo)
	movementService := service.NewMovementService(database, cfg.App.ReconcileOnMovementDelete)
	reportService := service.NewReportService(shadowRepo, accountRepo, movementRepo)

	handler := NewHandler(accountService, movementService, reportService, database, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", healthHandler(database, logger))
	api.RegisterDocsRoutes(r, api.AccountServiceSpec)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", handler.CreateAccount)
			r.Get("/", handler.ListAccounts)
			r.Get("/customer/{customerId}", handler.ListAccountsByCustomer)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetAccount)
				r.Put("/", handler.UpdateAccount)
				r.Delete("/", handler.DeleteAccount)

				r.Route("/movements", func(r chi.Router) {
					r.Post("/", handler.RegisterMovement)
					r.Get("/", handler.ListMovements)
					r.Get("/{movementId}", handler.GetMovement)
					r.Delete("/{movementId}", handler.DeleteMovement)
				})
			})
		})

		r.Get("/reports/{clientId}", handler.GenerateReport)
	})

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	return middleware.Idempotency(idempotencyRepo, logger)(r)
}

// NewCustomerRouter creates and configures the customer service router.
func NewCustomerRouter(database *db.DB, publisher service.CustomerEventPublisher, logger *slog.Logger) http.Handler {
	customerRepo := repository.NewCustomerRepository(database)
	customerService := service.NewCustomerService(customerRepo, publisher, logger)

	handler := NewCustomerHandler(customerService, database, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", healthHandler(database, logger))
	api.RegisterDocsRoutes(r, api.CustomerServiceSpec)

	r.Route("/api/v1/customers", func(r chi.Router) {
		r.Post("/", handler.CreateCustomer)
		r.Get("/", handler.ListCustomers)
		r.Get("/{id}", handler.GetCustomer)
		r.Put("/{id}", handler.UpdateCustomer)
		r.Delete("/{id}", handler.DeleteCustomer)
	})

	return r
}
