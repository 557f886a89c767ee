package handlers

import (
	"net/http"

	"github.com/acardenas/bank-ledger/internal/models"
)

// CustomerRequest is the body of POST and PUT /api/v1/customers
type CustomerRequest struct {
	Name           string `json:"name" validate:"required"`
	Gender         string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	Identification string `json:"identification" validate:"required"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Password       string `json:"password" validate:"required,min=4"`
	Status         *bool  `json:"status" validate:"required"`
}

func (req *CustomerRequest) person() models.PersonInfo {
	return models.PersonInfo{
		Name:           req.Name,
		Gender:         models.Gender(req.Gender),
		Identification: req.Identification,
		Address:        req.Address,
		Phone:          req.Phone,
	}
}

// CreateCustomer handles POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, h.logger, err)
		return
	}

	customer, err := h.customerService.Create(r.Context(), req.person(), req.Password, *req.Status)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("customer created", "customer_id", customer.ID)
	writeJSON(w, h.logger, http.StatusCreated, customer)
}

// GetCustomer handles GET /api/v1/customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, customer)
}

// ListCustomers handles GET /api/v1/customers?page&size
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, size := pagination(r)

	customers, err := h.customerService.ListAll(r.Context(), page, size)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, customers)
}

// UpdateCustomer handles PUT /api/v1/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	var req CustomerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, h.logger, err)
		return
	}

	customer, err := h.customerService.Update(r.Context(), customerID, req.person(), req.Password, *req.Status)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.customerService.Delete(r.Context(), customerID); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("customer deleted", "customer_id", customerID)
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}
