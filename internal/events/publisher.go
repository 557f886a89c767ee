package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/acardenas/bank-ledger/internal/service"
	"github.com/nats-io/nats.go"
)

// Publisher announces customer events on the NATS channel. The aggregate id
// is appended to the subject so subscribers can rely on per-customer
// ordering within a subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
	logger  *slog.Logger
}

var _ service.CustomerEventPublisher = (*Publisher)(nil)

// NewPublisher creates a new Publisher over an established NATS connection.
func NewPublisher(nc *nats.Conn, subject string, logger *slog.Logger) *Publisher {
	return &Publisher{
		nc:      nc,
		subject: subject,
		logger:  logger,
	}
}

// PublishCustomerCreated serializes and publishes the CustomerCreated
// envelope for the given customer.
func (p *Publisher) PublishCustomerCreated(_ context.Context, customer *models.Customer) error {
	event := NewCustomerCreatedEvent(customer)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	subject := p.subject + "." + event.AggregateID
	if err := p.nc.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Info("event published",
		"type", event.EventType,
		"aggregate_id", event.AggregateID,
		"subject", subject,
	)
	return nil
}
