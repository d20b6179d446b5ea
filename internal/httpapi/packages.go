package httpapi

import (
	"net/http"

	"lumak-be/internal/packages"
)

func (h *Handler) listPackages(w http.ResponseWriter, r *http.Request) {
	list, err := h.packageSvc.GetPackages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (h *Handler) createPackage(w http.ResponseWriter, r *http.Request) {
	var input packages.CreatePackageInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	pkg, err := h.packageSvc.AddPackage(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, pkg)
}

func (h *Handler) deletePackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.packageSvc.DeletePackage(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"id": id})
}
