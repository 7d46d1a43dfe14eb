package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/smdv/password-vault/internal/logger"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type principalResponse struct {
	UserID int64 `json:"user_id"`
}

func (c credentialsRequest) validate() string {
	if strings.TrimSpace(c.Email) == "" {
		return "email is required"
	}
	if c.Password == "" {
		return "password is required"
	}
	return ""
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if msg := creds.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	userID, err := h.gateway.Register(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Msg("registration failed")
		respondError(w, err)
		return
	}

	writeJSON(w, principalResponse{UserID: userID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if msg := creds.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	userID, err := h.gateway.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Msg("login failed")
		respondError(w, err)
		return
	}

	log.Debug().Int64("user_id", userID).Msg("session activated")
	writeJSON(w, principalResponse{UserID: userID}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	h.gateway.Logout()
	w.WriteHeader(http.StatusNoContent)
}
