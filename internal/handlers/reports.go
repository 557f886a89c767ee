package handlers

import (
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

// GenerateReport handles GET /api/v1/reports/{clientId}?startDate&endDate.
// Dates are calendar days; the window is inclusive of both days, which the
// service sees as [startDate, endDate+1).
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	start, err := time.Parse(dateLayout, r.URL.Query().Get("startDate"))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", "startDate must be a date in YYYY-MM-DD format")
		return
	}
	end, err := time.Parse(dateLayout, r.URL.Query().Get("endDate"))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", "endDate must be a date in YYYY-MM-DD format")
		return
	}
	if end.Before(start) {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_REQUEST", "endDate must not precede startDate")
		return
	}

	report, err := h.reportService.GetClientReport(r.Context(), clientID, start, end.AddDate(0, 0, 1))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("report generated",
		"client_id", clientID,
		"accounts", len(report.Accounts),
	)
	writeJSON(w, h.logger, http.StatusOK, report)
}
