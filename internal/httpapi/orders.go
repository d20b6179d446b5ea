package httpapi

import (
	"net/http"

	"lumak-be/internal/order"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, err := h.orderSvc.GetOrders(r.Context(), q.Get("search"), q.Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input order.CreateOrderInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	o, err := h.orderSvc.CreateOrder(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, o)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	o, err := h.orderSvc.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, o)
}

type updateStatusRequest struct {
	Status order.Status `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	o, err := h.orderSvc.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, o)
}
