package api

import (
	"encoding/json"
	"net/http"

	httperrors "rentacar/internal/errors"
	"rentacar/internal/service"
)

type AdminAuthHandler struct {
	service service.AdminAuthService
}

func NewAdminAuthHandler(svc service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, httperrors.ErrValidation("Invalid request body."))
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, httperrors.ErrUnauthorized("Invalid credentials"))
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
