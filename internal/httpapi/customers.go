package httpapi

import (
	"net/http"
	"strconv"

	"lumak-be/internal/customer"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.GetCustomers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.customerSvc.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, c)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var input customer.UpsertCustomerInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.customerSvc.AddCustomer(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, c)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input customer.UpsertCustomerInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.customerSvc.UpdateCustomer(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, c)
}

func (h *Handler) inactiveCustomers(w http.ResponseWriter, r *http.Request) {
	days := h.cfg.InactiveAfterDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, errBadRequest)
			return
		}
		days = n
	}

	customers, err := h.customerSvc.GetInactiveCustomers(r.Context(), days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, customers)
}

type transferPointsRequest struct {
	SenderID    int64 `json:"senderId"`
	RecipientID int64 `json:"recipientId"`
	Points      int   `json:"points"`
}

func (h *Handler) transferPoints(w http.ResponseWriter, r *http.Request) {
	var req transferPointsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.loyaltySvc.TransferPoints(r.Context(), req.SenderID, req.RecipientID, req.Points); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"status": "transferred"})
}
