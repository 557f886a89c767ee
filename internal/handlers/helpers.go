package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/acardenas/bank-ledger/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ErrorResponse is the structured error body returned on every failure
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, code, message string) {
	writeJSON(w, logger, status, ErrorResponse{
		Status:    status,
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// writeServiceError maps a business error to its HTTP status and code.
// Unknown errors become 500s with a generic message.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) {
		logger.Error("unexpected error", "error", err)
		writeError(w, logger, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
		return
	}

	status, code := mapServiceError(svcErr.Code)
	if status == http.StatusInternalServerError {
		logger.Error("internal service error", "code", svcErr.Code, "error", err)
		writeError(w, logger, status, code, "An unexpected error occurred")
		return
	}

	logger.Warn("request rejected", "code", svcErr.Code, "message", svcErr.Message)
	writeError(w, logger, status, code, svcErr.Message)
}

func mapServiceError(code string) (int, string) {
	switch code {
	case service.ErrCodeAccountNotFound:
		return http.StatusNotFound, "ACCOUNT_NOT_FOUND"
	case service.ErrCodeCustomerNotFound:
		return http.StatusNotFound, "CUSTOMER_NOT_FOUND"
	case service.ErrCodeMovementNotFound:
		return http.StatusNotFound, "MOVEMENT_NOT_FOUND"
	case service.ErrCodeAccountAlreadyExists:
		return http.StatusConflict, "ACCOUNT_ALREADY_EXISTS"
	case service.ErrCodeCustomerAlreadyExists:
		return http.StatusConflict, "CUSTOMER_ALREADY_EXISTS"
	case service.ErrCodeInsufficientBalance:
		return http.StatusBadRequest, "INSUFFICIENT_BALANCE"
	case service.ErrCodeInvalidAmount:
		return http.StatusBadRequest, "INVALID_AMOUNT"
	case service.ErrCodeInvalidMovementType:
		return http.StatusBadRequest, "INVALID_MOVEMENT_TYPE"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// writeValidationError reports validator failures as one joined detail line
func writeValidationError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		writeError(w, logger, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, fmt.Sprintf("%s: failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}
	writeError(w, logger, http.StatusBadRequest, "VALIDATION_ERROR", strings.Join(details, ", "))
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close() //nolint:errcheck
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// pagination reads page and size query parameters with defaults and a cap
func pagination(r *http.Request) (page, size int) {
	page = 0
	size = defaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			size = v
		}
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
