package httpapi

import (
	"net/http"
	"time"

	"lumak-be/internal/logger"

	"go.uber.org/zap"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		logger.FromCtx(r.Context()).Warn("login rejected", zap.String("username", req.Username))
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	writeData(w, http.StatusOK, loginResponse{Token: token})
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := h.db.PingContext(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	writeData(w, code, map[string]any{
		"status":  status,
		"metrics": h.reg.Snapshot(),
	})
}
