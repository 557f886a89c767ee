package handlers

import (
	"net/http"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterMovementRequest is the body of POST /api/v1/accounts/{id}/movements
type RegisterMovementRequest struct {
	MovementType string          `json:"movementType" validate:"required,oneof=CREDIT DEBIT"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description" validate:"max=255"`
}

// RegisterMovement handles POST /api/v1/accounts/{id}/movements
func (h *Handler) RegisterMovement(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	var req RegisterMovementRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, h.logger, err)
		return
	}

	movement, err := h.movementService.Register(r.Context(), accountID,
		models.MovementType(req.MovementType),
		req.Amount,
		req.Description,
	)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("movement registered",
		"movement_id", movement.ID,
		"account_id", accountID,
		"type", movement.Type,
		"amount", movement.Amount.String(),
	)
	writeJSON(w, h.logger, http.StatusCreated, movement)
}

// GetMovement handles GET /api/v1/accounts/{id}/movements/{movementId}
func (h *Handler) GetMovement(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	movementID, err := pathID(r, "movementId")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	movement, err := h.movementService.GetMovement(r.Context(), accountID, movementID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, movement)
}

// ListMovements handles GET /api/v1/accounts/{id}/movements?page&size
func (h *Handler) ListMovements(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	page, size := pagination(r)

	movements, err := h.movementService.ListMovements(r.Context(), accountID, page, size)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, movements)
}

// DeleteMovement handles DELETE /api/v1/accounts/{id}/movements/{movementId}
func (h *Handler) DeleteMovement(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	movementID, err := pathID(r, "movementId")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.movementService.DeleteMovement(r.Context(), accountID, movementID); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("movement deleted", "movement_id", movementID, "account_id", accountID)
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}
