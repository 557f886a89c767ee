package handlers

import (
	"net/http"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the body of POST /api/v1/accounts
type CreateAccountRequest struct {
	AccountNumber  string          `json:"accountNumber" validate:"required"`
	AccountType    string          `json:"accountType" validate:"required,oneof=SAVINGS CHECKING"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Status         *bool           `json:"status" validate:"required"`
	CustomerID     int64           `json:"customerId" validate:"required,gt=0"`
}

// UpdateAccountRequest is the body of PUT /api/v1/accounts/{id}
type UpdateAccountRequest struct {
	AccountNumber  string          `json:"accountNumber" validate:"required"`
	AccountType    string          `json:"accountType" validate:"required,oneof=SAVINGS CHECKING"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Status         *bool           `json:"status" validate:"required"`
}

// CreateAccount handles POST /api/v1/accounts
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, h.logger, err)
		return
	}
	if req.InitialBalance.Sign() < 0 {
		writeError(w, h.logger, http.StatusBadRequest, "VALIDATION_ERROR", "initialBalance: must not be negative")
		return
	}

	account, err := h.accountService.Create(r.Context(),
		req.AccountNumber,
		models.AccountType(req.AccountType),
		req.InitialBalance,
		*req.Status,
		req.CustomerID,
	)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("account created", "account_id", account.ID, "account_number", account.AccountNumber)
	writeJSON(w, h.logger, http.StatusCreated, account)
}

// GetAccount handles GET /api/v1/accounts/{id}
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, account)
}

// ListAccounts handles GET /api/v1/accounts?page&size
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	page, size := pagination(r)

	accounts, err := h.accountService.ListAll(r.Context(), page, size)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, accounts)
}

// ListAccountsByCustomer handles GET /api/v1/accounts/customer/{customerId}
func (h *Handler) ListAccountsByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	accounts, err := h.accountService.ListByCustomer(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, accounts)
}

// UpdateAccount handles PUT /api/v1/accounts/{id}
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	var req UpdateAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, h.logger, err)
		return
	}
	if req.InitialBalance.Sign() < 0 {
		writeError(w, h.logger, http.StatusBadRequest, "VALIDATION_ERROR", "initialBalance: must not be negative")
		return
	}

	account, err := h.accountService.Update(r.Context(), accountID,
		req.AccountNumber,
		models.AccountType(req.AccountType),
		req.InitialBalance,
		*req.Status,
	)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, account)
}

// DeleteAccount handles DELETE /api/v1/accounts/{id}
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.accountService.Delete(r.Context(), accountID); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("account deleted", "account_id", accountID)
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}
