package comparison

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/risk"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/pkg/formulas"
)

// Handlers provides HTTP handlers for the comparison module
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new comparison handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "comparison_handlers").Logger(),
	}
}

// RankRequest is a peer group to rank.
type RankRequest struct {
	Peers []Peer `json:"peers"`
}

// HandleRankPeers handles POST /api/comparison/rank
func (h *Handlers) HandleRankPeers(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode rank request")
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Peers) == 0 {
		h.writeError(w, http.StatusBadRequest, "no peers supplied")
		return
	}

	ranked := h.service.RankPeers(req.Peers)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"ranking": ranked})
}

// PortfolioRequest is a set of weighted holdings to aggregate.
type PortfolioRequest struct {
	Holdings         []Holding `json:"holdings"`
	RiskFreeRate     *float64  `json:"risk_free_rate,omitempty"`
	ConfidenceLevels []float64 `json:"confidence_levels,omitempty"`
}

// HandleAnalyzePortfolio handles POST /api/comparison/portfolio
func (h *Handlers) HandleAnalyzePortfolio(w http.ResponseWriter, r *http.Request) {
	var req PortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode portfolio request")
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg := risk.DefaultConfig()
	if req.RiskFreeRate != nil {
		cfg.RiskFreeRate = *req.RiskFreeRate
	}
	if len(req.ConfidenceLevels) > 0 {
		cfg.ConfidenceLevels = req.ConfidenceLevels
	}

	profile, err := h.service.AnalyzePortfolio(req.Holdings, cfg)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, formulas.ErrInvalidWeights) ||
			errors.Is(err, formulas.ErrMisalignedSeries) ||
			errors.Is(err, formulas.ErrInsufficientData) ||
			errors.Is(err, formulas.ErrInvalidConfidence) {
			status = http.StatusUnprocessableEntity
		}
		h.writeError(w, status, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, profile)
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
