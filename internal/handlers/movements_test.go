package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/acardenas/bank-ledger/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterMovement(t *testing.T) {
	t.Run("successful posting", func(t *testing.T) {
		movements := &mockMovementPoster{}
		handler := NewHandler(nil, movements, nil, nil, testLogger())

		posted := models.NewDebit(42, decimal.NewFromInt(575), decimal.NewFromInt(1425), "Withdrawal of 575")
		posted.ID = 7

		movements.On("Register", mock.Anything, int64(42), models.MovementTypeDebit,
			mock.Anything, "Withdrawal of 575").Return(posted, nil)

		req := newRequest(t, http.MethodPost, "/api/v1/accounts/42/movements",
			`{"movementType":"DEBIT","amount":"575","description":"Withdrawal of 575"}`,
			map[string]string{"id": "42"})
		rec := httptest.NewRecorder()

		handler.RegisterMovement(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var body models.Movement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(7), body.ID)
		assert.True(t, body.Balance.Equal(decimal.NewFromInt(1425)))
		movements.AssertExpectations(t)
	})

	t.Run("insufficient balance maps to 400", func(t *testing.T) {
		movements := &mockMovementPoster{}
		handler := NewHandler(nil, movements, nil, nil, testLogger())

		movements.On("Register", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything).
			Return(nil, &service.ServiceError{
				Code:    service.ErrCodeInsufficientBalance,
				Message: "Insufficient balance",
			})

		req := newRequest(t, http.MethodPost, "/api/v1/accounts/42/movements",
			`{"movementType":"DEBIT","amount":"575"}`,
			map[string]string{"id": "42"})
		rec := httptest.NewRecorder()

		handler.RegisterMovement(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeErrorResponse(t, rec)
		assert.Equal(t, "INSUFFICIENT_BALANCE", body.Error)
		assert.Equal(t, "Insufficient balance", body.Message)
	})

	t.Run("non-positive amount maps to 400", func(t *testing.T) {
		movements := &mockMovementPoster{}
		handler := NewHandler(nil, movements, nil, nil, testLogger())

		movements.On("Register", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything).
			Return(nil, &service.ServiceError{
				Code:    service.ErrCodeInvalidAmount,
				Message: "The movement amount must be greater than zero",
			})

		req := newRequest(t, http.MethodPost, "/api/v1/accounts/42/movements",
			`{"movementType":"CREDIT","amount":"0"}`,
			map[string]string{"id": "42"})
		rec := httptest.NewRecorder()

		handler.RegisterMovement(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_AMOUNT", decodeErrorResponse(t, rec).Error)
	})

	t.Run("unknown movement type fails validation before the service", func(t *testing.T) {
		movements := &mockMovementPoster{}
		handler := NewHandler(nil, movements, nil, nil, testLogger())

		req := newRequest(t, http.MethodPost, "/api/v1/accounts/42/movements",
			`{"movementType":"TRANSFER","amount":"100"}`,
			map[string]string{"id": "42"})
		rec := httptest.NewRecorder()

		handler.RegisterMovement(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorResponse(t, rec).Error)
		movements.AssertNotCalled(t, "Register", mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetMovement(t *testing.T) {
	t.Run("movement not found", func(t *testing.T) {
		movements := &mockMovementPoster{}
		handler := NewHandler(nil, movements, nil, nil, testLogger())

		movements.On("GetMovement", mock.Anything, int64(42), int64(7)).
			Return(nil, &service.ServiceError{
				Code:    service.ErrCodeMovementNotFound,
				Message: "Movement not found with id: 7",
			})

		req := newRequest(t, http.MethodGet, "/api/v1/accounts/42/movements/7", "",
			map[string]string{"id": "42", "movementId": "7"})
		rec := httptest.NewRecorder()

		handler.GetMovement(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MOVEMENT_NOT_FOUND", decodeErrorResponse(t, rec).Error)
	})
}

func TestListMovements(t *testing.T) {
	movements := &mockMovementPoster{}
	handler := NewHandler(nil, movements, nil, nil, testLogger())

	movements.On("ListMovements", mock.Anything, int64(42), 0, 20).
		Return([]*models.Movement{}, nil)

	req := newRequest(t, http.MethodGet, "/api/v1/accounts/42/movements", "",
		map[string]string{"id": "42"})
	rec := httptest.NewRecorder()

	handler.ListMovements(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	movements.AssertExpectations(t)
}

func TestDeleteMovement(t *testing.T) {
	movements := &mockMovementPoster{}
	handler := NewHandler(nil, movements, nil, nil, testLogger())

	movements.On("DeleteMovement", mock.Anything, int64(42), int64(7)).Return(nil)

	req := newRequest(t, http.MethodDelete, "/api/v1/accounts/42/movements/7", "",
		map[string]string{"id": "42", "movementId": "7"})
	rec := httptest.NewRecorder()

	handler.DeleteMovement(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	movements.AssertExpectations(t)
}
