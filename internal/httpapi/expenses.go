package httpapi

import (
	"net/http"

	"lumak-be/internal/expense"
)

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseSvc.GetExpenses(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, expenses)
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var input expense.CreateExpenseInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	e, err := h.expenseSvc.CreateExpense(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, e)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.expenseSvc.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"id": id})
}
