package httpapi

import (
	"net/http"
	"strconv"
	"time"
)

func (h *Handler) dashboardReport(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportSvc.GetDashboardStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}

func (h *Handler) yearlyReport(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errBadRequest)
			return
		}
		year = n
	}

	stats, err := h.reportSvc.GetYearlyStats(r.Context(), year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}
