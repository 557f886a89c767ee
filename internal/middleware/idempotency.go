// Package middleware provides HTTP middleware shared by both services.
package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/acardenas/bank-ledger/internal/repository"
)

const idempotencyKeyHeader = "Idempotency-Key"

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // Default if WriteHeader not called
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b) // Capture for caching
	return rc.ResponseWriter.Write(b)
}

// Idempotency creates middleware that caches responses to mutating requests
// carrying an Idempotency-Key header, so retried account creations and
// movement postings are not applied twice.
func Idempotency(repo repository.IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := r.Header.Get(idempotencyKeyHeader)
			if idempotencyKey == "" {
				// Idempotency is opt-in: without a key the request passes through
				next.ServeHTTP(w, r)
				return
			}

			requestPath := normalizeRequestPath(r.URL.Path)
			ctx := r.Context()

			cached, err := repo.Get(ctx, idempotencyKey, requestPath)
			if err != nil {
				logger.Error("failed to check idempotency cache", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if cached != nil {
				logger.Debug("returning cached idempotent response",
					"key", idempotencyKey,
					"path", requestPath,
					"status", cached.ResponseStatus,
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Idempotent-Replayed", "true")
				w.WriteHeader(cached.ResponseStatus)
				//nolint:errcheck // Best effort response writing
				w.Write([]byte(cached.ResponseBody))
				return
			}

			capture := newResponseCapture(w)
			next.ServeHTTP(capture, r)

			if shouldCacheResponse(capture.statusCode) {
				idemKey := &repository.IdempotencyKey{
					Key:            idempotencyKey,
					RequestPath:    requestPath,
					ResponseStatus: capture.statusCode,
					ResponseBody:   capture.body.String(),
					CreatedAt:      time.Now(),
				}

				if err := repo.Store(ctx, idemKey); err != nil {
					logger.Error("failed to store idempotency key",
						"error", err,
						"key", idempotencyKey,
					)
				}
			}
		})
	}
}

// requiresIdempotency reports whether the request is a mutating operation
// that supports idempotent replay: account creation and movement posting.
func requiresIdempotency(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}

	path := normalizeRequestPath(r.URL.Path)
	if path == "/api/v1/accounts" {
		return true
	}
	return strings.HasPrefix(path, "/api/v1/accounts/") && strings.HasSuffix(path, "/movements")
}

func normalizeRequestPath(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// shouldCacheResponse reports whether the outcome is final enough to replay.
// Server errors are not cached so clients can retry them.
func shouldCacheResponse(statusCode int) bool {
	return statusCode < http.StatusInternalServerError
}
