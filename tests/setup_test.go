//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/acardenas/bank-ledger/internal/config"
	"github.com/acardenas/bank-ledger/internal/db"
	"github.com/acardenas/bank-ledger/internal/handlers"
	"github.com/stretchr/testify/require"
)

// TestServer wraps the HTTP test server and database for integration tests.
type TestServer struct {
	Server   *httptest.Server
	Database *db.DB
	t        *testing.T
}

// SetupTest creates an account-service test server with a clean database
// state. Requires a reachable Postgres; gated behind INTEGRATION_TESTS so the
// suite is skipped in environments without one.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	if os.Getenv("INTEGRATION_TESTS") != "1" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests")
	}

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	require.NoError(t, err, "failed to connect to database")

	runMigrations(t, database)
	resetTestData(t, database)

	router := handlers.NewAccountRouter(database, cfg, logger)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:   server,
		Database: database,
		t:        t,
	}
}

// Close shuts down the test server and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "internal", "db", "migrations", "account", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	if _, err := database.ExecContext(context.Background(), string(sqlBytes)); err != nil {
		t.Logf("migration execution completed (tables may already exist): %v", err)
	}
}

func resetTestData(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE movements CASCADE;
		TRUNCATE TABLE idempotency_keys CASCADE;
		DELETE FROM accounts;
		DELETE FROM customers;
		INSERT INTO customers (customer_id, name, identification, address, phone, status) VALUES
			(1, 'Jose Lema', '1717171717', 'Otavalo sn y principal', '098254785', true),
			(2, 'Marianela Montalvo', '0909090909', 'Amazonas y NNUU', '097548965', true);
	`)
	require.NoError(t, err, "failed to reset test data")
}

// CreateAccount sends a POST request to open an account.
func (ts *TestServer) CreateAccount(t *testing.T, accountNumber, accountType, initialBalance string, customerID int64, idempotencyKey string) *http.Response {
	t.Helper()

	body := map[string]any{
		"accountNumber":  accountNumber,
		"accountType":    accountType,
		"initialBalance": initialBalance,
		"status":         true,
		"customerId":     customerID,
	}
	jsonBody, _ := json.Marshal(body)

	req, err := http.NewRequest(http.MethodPost, ts.URL("/api/v1/accounts"), bytes.NewReader(jsonBody))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

// RegisterMovement sends a POST request to post a movement against an account.
func (ts *TestServer) RegisterMovement(t *testing.T, accountID, movementType, amount, idempotencyKey string) *http.Response {
	t.Helper()

	body := map[string]any{
		"movementType": movementType,
		"amount":       amount,
	}
	jsonBody, _ := json.Marshal(body)

	req, err := http.NewRequest(http.MethodPost, ts.URL("/api/v1/accounts/"+accountID+"/movements"), bytes.NewReader(jsonBody))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

// Get sends a GET request to the given path.
func (ts *TestServer) Get(t *testing.T, path string) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.URL(path))
	require.NoError(t, err)

	return resp
}
