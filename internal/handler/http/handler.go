package http

import (
	"encoding/json"
	"net/http"

	"github.com/smdv/password-vault/internal/adapter"
	"github.com/smdv/password-vault/internal/logger"
	"github.com/smdv/password-vault/internal/service"
)

type Handler struct {
	gateway   service.Gateway
	suggester adapter.Suggester

	logger *logger.Logger
}

func NewHandler(gateway service.Gateway, suggester adapter.Suggester, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		gateway:   gateway,
		suggester: suggester,
		logger:    logger,
	}
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
