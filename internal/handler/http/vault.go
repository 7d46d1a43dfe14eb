package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/smdv/password-vault/internal/logger"
	"github.com/smdv/password-vault/internal/service"
	"github.com/smdv/password-vault/models"
)

type recordRequest struct {
	Name   string `json:"name"`
	Secret string `json:"secret"`
}

type recordIDResponse struct {
	RecordID int64 `json:"record_id"`
}

func (rr recordRequest) validate() string {
	if strings.TrimSpace(rr.Name) == "" {
		return "name is required"
	}
	return ""
}

// listRecords resolves the collection address. Secrets stay encrypted at
// rest and are omitted from the listing.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	records, err := h.gateway.Query(ctx, models.CollectionAddress())
	if err != nil {
		log.Err(err).Msg("listing vault records failed")
		respondError(w, err)
		return
	}

	writeJSON(w, records, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	addr, err := models.ParseAddress("vault_records/" + chi.URLParam(r, "recordID"))
	if err != nil {
		log.Err(err).Msg("bad record address")
		respondError(w, err)
		return
	}

	records, err := h.gateway.Query(ctx, addr)
	if err != nil {
		log.Err(err).Msg("fetching vault record failed")
		respondError(w, err)
		return
	}

	writeJSON(w, records[0], http.StatusOK)
}

func (h *Handler) addRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	recordID, err := h.gateway.AddRecord(ctx, req.Name, req.Secret)
	if err != nil {
		log.Err(err).Msg("storing vault record failed")
		respondError(w, err)
		return
	}

	writeJSON(w, recordIDResponse{RecordID: recordID}, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	addr, err := models.ParseAddress("vault_records/" + chi.URLParam(r, "recordID"))
	if err != nil {
		log.Err(err).Msg("bad record address")
		respondError(w, err)
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	updated, err := h.gateway.UpdateRecord(ctx, addr.RecordID, req.Name, req.Secret)
	if err != nil {
		log.Err(err).Msg("updating vault record failed")
		respondError(w, err)
		return
	}
	if !updated {
		respondError(w, service.ErrRecordNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	addr, err := models.ParseAddress("vault_records/" + chi.URLParam(r, "recordID"))
	if err != nil {
		log.Err(err).Msg("bad record address")
		respondError(w, err)
		return
	}

	deleted, err := h.gateway.DeleteRecord(ctx, addr.RecordID)
	if err != nil {
		log.Err(err).Msg("deleting vault record failed")
		respondError(w, err)
		return
	}
	if !deleted {
		respondError(w, service.ErrRecordNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
