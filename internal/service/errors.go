package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeAccountNotFound       = "account_not_found"
	ErrCodeAccountAlreadyExists  = "account_already_exists"
	ErrCodeCustomerNotFound      = "customer_not_found"
	ErrCodeCustomerAlreadyExists = "customer_already_exists"
	ErrCodeMovementNotFound      = "movement_not_found"
	ErrCodeInsufficientBalance   = "insufficient_balance"
	ErrCodeInvalidAmount         = "invalid_amount"
	ErrCodeInvalidMovementType   = "invalid_movement_type"
	ErrCodeInternalError         = "internal_error"
)

func errAccountNotFound(accountID int64) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("Account not found with id: %d", accountID),
	}
}

func errAccountAlreadyExists(accountNumber string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeAccountAlreadyExists,
		Message: fmt.Sprintf("Account already exists with number: %s", accountNumber),
	}
}

func errCustomerNotFound(customerID int64) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeCustomerNotFound,
		Message: fmt.Sprintf("Customer not found with id: %d", customerID),
	}
}

func errMovementNotFound(movementID int64) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeMovementNotFound,
		Message: fmt.Sprintf("Movement not found with id: %d", movementID),
	}
}

func errInternal(op string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: fmt.Sprintf("failed to %s", op),
		Err:     err,
	}
}
