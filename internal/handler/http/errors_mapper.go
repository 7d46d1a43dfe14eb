package http

import (
	"errors"
	"net/http"

	"github.com/smdv/password-vault/internal/adapter"
	"github.com/smdv/password-vault/internal/service"
	"github.com/smdv/password-vault/models"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthenticated:      http.StatusUnauthorized,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,
	service.ErrDuplicateEmail:       http.StatusConflict,
	service.ErrRecordNotFound:       http.StatusNotFound,
	service.ErrCrypto:               http.StatusInternalServerError,
	service.ErrPersistence:          http.StatusInternalServerError,

	models.ErrInvalidAddress: http.StatusBadRequest,

	adapter.ErrSuggestionUnavailable: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError hides internal failure detail behind the generic status text.
// Client-class statuses carry the sentinel's message.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
