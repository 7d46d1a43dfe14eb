package http

import (
	"net/http"

	"github.com/smdv/password-vault/internal/logger"
)

type suggestionResponse struct {
	Password string `json:"password"`
}

// suggestPassword proxies the external generator so the UI never holds the
// generator's API key.
func (h *Handler) suggestPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	password, err := h.suggester.Suggest(ctx)
	if err != nil {
		log.Err(err).Msg("password suggestion failed")
		respondError(w, err)
		return
	}

	writeJSON(w, suggestionResponse{Password: password}, http.StatusOK)
}
