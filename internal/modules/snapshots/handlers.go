package snapshots

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers provides HTTP handlers for snapshot retrieval
type Handlers struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandlers creates a new snapshots handlers instance
func NewHandlers(repo *Repository, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo: repo,
		log:  log.With().Str("module", "snapshots_handlers").Logger(),
	}
}

// HandleList handles GET /api/snapshots/{symbol}
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	snapshots, err := h.repo.ListBySymbol(symbol, limit)
	if err != nil {
		h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to list snapshots")
		h.writeError(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":    symbol,
		"snapshots": snapshots,
	})
}

// HandleLatest handles GET /api/snapshots/{symbol}/latest
func (h *Handlers) HandleLatest(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	snapshot, err := h.repo.Latest(symbol)
	if errors.Is(err, sql.ErrNoRows) {
		h.writeError(w, http.StatusNotFound, "no snapshots for symbol")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to load latest snapshot")
		h.writeError(w, http.StatusInternalServerError, "failed to load snapshot")
		return
	}

	h.writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
