package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/acardenas/bank-ledger/internal/service"
	"github.com/nats-io/nats.go"
)

const handleTimeout = 10 * time.Second

// Consumer subscribes to customer events and keeps the account service's
// customer shadow in sync. Processing failures are logged and dropped so a
// bad message can never stall the feed.
type Consumer struct {
	nc        *nats.Conn
	subject   string
	queue     string
	registrar service.CustomerRegistrar
	logger    *slog.Logger
	sub       *nats.Subscription
}

// NewConsumer creates a new Consumer over an established NATS connection.
func NewConsumer(nc *nats.Conn, subject, queue string, registrar service.CustomerRegistrar, logger *slog.Logger) *Consumer {
	return &Consumer{
		nc:        nc,
		subject:   subject,
		queue:     queue,
		registrar: registrar,
		logger:    logger,
	}
}

// Start subscribes to the customer event subject tree as part of the
// consumer's queue group.
func (c *Consumer) Start() error {
	sub, err := c.nc.QueueSubscribe(c.subject+".>", c.queue, c.handle)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", c.subject, err)
	}
	c.sub = sub

	c.logger.Info("customer event consumer started",
		"subject", c.subject+".>",
		"queue", c.queue,
	)
	return nil
}

// Stop drains the subscription, letting in-flight messages finish.
func (c *Consumer) Stop() error {
	if c.sub == nil {
		return nil
	}
	return c.sub.Drain()
}

func (c *Consumer) handle(msg *nats.Msg) {
	var event CustomerCreatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		c.logger.Error("failed to decode customer event, dropping",
			"subject", msg.Subject,
			"error", err,
		)
		return
	}

	c.logger.Info("received customer event",
		"type", event.EventType,
		"aggregate_id", event.AggregateID,
		"name", event.Name,
	)

	shadow, err := event.Shadow()
	if err != nil {
		c.logger.Error("failed to map customer event, dropping",
			"aggregate_id", event.AggregateID,
			"error", err,
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if _, err := c.registrar.Register(ctx, shadow); err != nil {
		c.logger.Error("failed to register customer from event",
			"customer_id", shadow.ID,
			"error", err,
		)
	}
}
