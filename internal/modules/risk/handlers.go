package risk

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/domain"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/pkg/formulas"
)

// Handlers provides HTTP handlers for the risk module
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new risk handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "risk_handlers").Logger(),
	}
}

// ProfileRequest represents a request to compute a risk profile.
// Engine parameters are explicit per request; omitted ones take defaults.
type ProfileRequest struct {
	Prices           domain.PriceSeries `json:"prices"`
	BenchmarkPrices  domain.PriceSeries `json:"benchmark_prices,omitempty"`
	RiskFreeRate     *float64           `json:"risk_free_rate,omitempty"`
	ConfidenceLevels []float64          `json:"confidence_levels,omitempty"`
}

// ProfileResponse represents the computed risk profile
type ProfileResponse struct {
	Profile *Profile `json:"profile"`
	Summary []string `json:"summary"`
}

// HandleComputeProfile handles POST /api/risk/profile
func (h *Handlers) HandleComputeProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode profile request")
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg := DefaultConfig()
	if req.RiskFreeRate != nil {
		cfg.RiskFreeRate = *req.RiskFreeRate
	}
	if len(req.ConfidenceLevels) > 0 {
		cfg.ConfidenceLevels = req.ConfidenceLevels
	}

	returns, err := domain.NewReturnSeries(req.Prices)
	if err != nil {
		h.writeError(w, statusFor(err), err.Error())
		return
	}

	var benchmark *domain.ReturnSeries
	if len(req.BenchmarkPrices) > 0 {
		b, err := domain.NewReturnSeries(req.BenchmarkPrices)
		if err != nil {
			h.writeError(w, statusFor(err), "benchmark: "+err.Error())
			return
		}
		benchmark = &b
	}

	profile, err := h.service.ComputeProfile(returns, benchmark, req.Prices, cfg)
	if err != nil {
		h.writeError(w, statusFor(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, ProfileResponse{
		Profile: profile,
		Summary: Summary(profile),
	})
}

// statusFor maps typed computation failures to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, formulas.ErrInsufficientData),
		errors.Is(err, formulas.ErrDegenerateSeries),
		errors.Is(err, formulas.ErrMisalignedSeries),
		errors.Is(err, formulas.ErrInvalidWeights),
		errors.Is(err, formulas.ErrInvalidConfidence):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
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
