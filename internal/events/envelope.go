// Package events implements the customer event channel between the two
// services over NATS.
package events

import (
	"fmt"
	"strconv"
	"time"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/google/uuid"
)

// EventTypeCustomerCreated is the event type announced when a customer is
// registered upstream.
const EventTypeCustomerCreated = "CustomerCreated"

// CustomerCreatedEvent is the wire envelope for customer notifications.
// AggregateID carries the customer identifier as a string and doubles as the
// per-customer affinity key on the subject.
type CustomerCreatedEvent struct {
	EventID        string    `json:"eventId"`
	EventType      string    `json:"eventType"`
	OccurredOn     time.Time `json:"occurredOn"`
	AggregateID    string    `json:"aggregateId"`
	Name           string    `json:"name"`
	Identification string    `json:"identification"`
	Gender         string    `json:"gender"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Status         bool      `json:"status"`
}

// NewCustomerCreatedEvent builds the envelope for a freshly created customer.
func NewCustomerCreatedEvent(customer *models.Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		EventID:        uuid.NewString(),
		EventType:      EventTypeCustomerCreated,
		OccurredOn:     time.Now(),
		AggregateID:    strconv.FormatInt(customer.ID, 10),
		Name:           customer.Name,
		Identification: customer.Identification,
		Gender:         string(customer.Gender),
		Address:        customer.Address,
		Phone:          customer.Phone,
		Status:         customer.Status,
	}
}

// CustomerID parses the aggregate identifier back into a customer id.
func (e *CustomerCreatedEvent) CustomerID() (int64, error) {
	id, err := strconv.ParseInt(e.AggregateID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aggregate id %q: %w", e.AggregateID, err)
	}
	return id, nil
}

// Shadow converts the envelope into the account service's local customer
// representation.
func (e *CustomerCreatedEvent) Shadow() (*models.CustomerShadow, error) {
	customerID, err := e.CustomerID()
	if err != nil {
		return nil, err
	}
	return &models.CustomerShadow{
		ID:             customerID,
		Name:           e.Name,
		Identification: e.Identification,
		Address:        e.Address,
		Phone:          e.Phone,
		Status:         e.Status,
	}, nil
}
