package httpapi

import (
	"net/http"

	"lumak-be/internal/product"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.GetProducts(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var input product.CreateProductInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	p, err := h.productSvc.AddProduct(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input product.UpdateProductInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	p, err := h.productSvc.UpdateProduct(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.productSvc.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"id": id})
}
