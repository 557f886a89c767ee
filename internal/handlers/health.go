package handlers

import (
	"log/slog"
	"net/http"

	"github.com/acardenas/bank-ledger/internal/service"
)

type healthResponse struct {
	Status string `json:"status"`
}

func healthHandler(checker service.HealthChecker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.PingContext(r.Context()); err != nil {
			logger.Error("health check failed", "error", err)
			writeJSON(w, logger, http.StatusServiceUnavailable, healthResponse{Status: "unhealthy"})
			return
		}
		writeJSON(w, logger, http.StatusOK, healthResponse{Status: "healthy"})
	}
}
