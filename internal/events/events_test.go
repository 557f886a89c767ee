package events

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/acardenas/bank-ledger/internal/models"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startEmbeddedServer runs an in-process NATS server on a random port so the
// round trip needs no external infrastructure.
func startEmbeddedServer(t *testing.T) *nats.Conn {
	t.Helper()

	opts := &server.Options{
		Host: "127.0.0.1",
		Port: -1,
	}
	srv, err := server.NewServer(opts)
	require.NoError(t, err, "failed to create embedded server")

	go srv.Start()
	require.True(t, srv.ReadyForConnections(5*time.Second), "server not ready")
	t.Cleanup(srv.Shutdown)

	nc, err := nats.Connect(srv.ClientURL())
	require.NoError(t, err, "failed to connect to embedded server")
	t.Cleanup(nc.Close)

	return nc
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingRegistrar captures customers handed to it by the consumer.
type recordingRegistrar struct {
	mu        sync.Mutex
	customers []*models.CustomerShadow
	err       error
	received  chan struct{}
}

func newRecordingRegistrar() *recordingRegistrar {
	return &recordingRegistrar{received: make(chan struct{}, 16)}
}

func (r *recordingRegistrar) Register(_ context.Context, customer *models.CustomerShadow) (*models.CustomerShadow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, customer)
	r.received <- struct{}{}
	return customer, r.err
}

func (r *recordingRegistrar) all() []*models.CustomerShadow {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.CustomerShadow(nil), r.customers...)
}

func waitForEvent(t *testing.T, registrar *recordingRegistrar) {
	t.Helper()
	select {
	case <-registrar.received:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the consumer to process the event")
	}
}

func TestPublisherConsumerRoundTrip(t *testing.T) {
	nc := startEmbeddedServer(t)

	registrar := newRecordingRegistrar()
	consumer := NewConsumer(nc, "customers.events", "account-service", registrar, testLogger())
	require.NoError(t, consumer.Start())
	t.Cleanup(func() { _ = consumer.Stop() })

	publisher := NewPublisher(nc, "customers.events", testLogger())

	customer := &models.Customer{
		PersonInfo: models.PersonInfo{
			Name:           "Jose Lema",
			Gender:         models.GenderMale,
			Identification: "1717171717",
			Address:        "Otavalo sn y principal",
			Phone:          "098254785",
		},
		Status: true,
		ID:     1,
	}

	require.NoError(t, publisher.PublishCustomerCreated(context.Background(), customer))
	waitForEvent(t, registrar)

	received := registrar.all()
	require.Len(t, received, 1)
	shadow := received[0]
	assert.Equal(t, int64(1), shadow.ID)
	assert.Equal(t, "Jose Lema", shadow.Name)
	assert.Equal(t, "1717171717", shadow.Identification)
	assert.True(t, shadow.Status)
}

func TestConsumerDropsMalformedMessages(t *testing.T) {
	nc := startEmbeddedServer(t)

	registrar := newRecordingRegistrar()
	consumer := NewConsumer(nc, "customers.events", "account-service", registrar, testLogger())
	require.NoError(t, consumer.Start())
	t.Cleanup(func() { _ = consumer.Stop() })

	publisher := NewPublisher(nc, "customers.events", testLogger())

	// Garbage on the subject tree must not stall the feed
	require.NoError(t, nc.Publish("customers.events.1", []byte("not json")))
	// Parseable envelope with a bad aggregate id is dropped too
	require.NoError(t, nc.Publish("customers.events.x", []byte(`{"eventType":"CustomerCreated","aggregateId":"abc"}`)))

	customer := &models.Customer{
		PersonInfo: models.PersonInfo{Name: "Marianela Montalvo", Identification: "0909090909"},
		Status:     true,
		ID:         2,
	}
	require.NoError(t, publisher.PublishCustomerCreated(context.Background(), customer))
	waitForEvent(t, registrar)

	received := registrar.all()
	require.Len(t, received, 1, "only the valid event reaches the registrar")
	assert.Equal(t, int64(2), received[0].ID)
}

func TestConsumerSwallowsRegistrarErrors(t *testing.T) {
	nc := startEmbeddedServer(t)

	registrar := newRecordingRegistrar()
	registrar.err = assert.AnError
	consumer := NewConsumer(nc, "customers.events", "account-service", registrar, testLogger())
	require.NoError(t, consumer.Start())
	t.Cleanup(func() { _ = consumer.Stop() })

	publisher := NewPublisher(nc, "customers.events", testLogger())

	first := &models.Customer{PersonInfo: models.PersonInfo{Name: "Jose Lema"}, ID: 1}
	second := &models.Customer{PersonInfo: models.PersonInfo{Name: "Marianela Montalvo"}, ID: 2}

	require.NoError(t, publisher.PublishCustomerCreated(context.Background(), first))
	waitForEvent(t, registrar)
	require.NoError(t, publisher.PublishCustomerCreated(context.Background(), second))
	waitForEvent(t, registrar)

	assert.Len(t, registrar.all(), 2, "a failing registration never stalls the feed")
}

func TestCustomerCreatedEvent_Envelope(t *testing.T) {
	customer := &models.Customer{
		PersonInfo: models.PersonInfo{
			Name:           "Jose Lema",
			Gender:         models.GenderMale,
			Identification: "1717171717",
		},
		Status: true,
		ID:     15,
	}

	event := NewCustomerCreatedEvent(customer)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, EventTypeCustomerCreated, event.EventType)
	assert.Equal(t, "15", event.AggregateID)
	assert.False(t, event.OccurredOn.IsZero())

	id, err := event.CustomerID()
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	shadow, err := event.Shadow()
	require.NoError(t, err)
	assert.Equal(t, int64(15), shadow.ID)
	assert.Equal(t, "Jose Lema", shadow.Name)
}
