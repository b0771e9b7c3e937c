package scoring

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/risk"
)

// Recorder persists scoring results for later retrieval. Implemented by the
// snapshots module; nil disables persistence.
type Recorder interface {
	Record(symbol string, result CompositeResult) error
}

// Handlers provides HTTP handlers for the scoring module
type Handlers struct {
	scorer   *Scorer
	recorder Recorder
	log      zerolog.Logger
}

// NewHandlers creates a new scoring handlers instance
func NewHandlers(scorer *Scorer, recorder Recorder, log zerolog.Logger) *Handlers {
	return &Handlers{
		scorer:   scorer,
		recorder: recorder,
		log:      log.With().Str("module", "scoring_handlers").Logger(),
	}
}

// ScoreRequest represents a request to score one instrument. The risk profile
// is the output of the risk module; fundamentals may be partially absent.
type ScoreRequest struct {
	Symbol       string              `json:"symbol"`
	Fundamentals FundamentalSnapshot `json:"fundamentals"`
	RiskProfile  *risk.Profile       `json:"risk_profile,omitempty"`
	Persist      bool                `json:"persist,omitempty"`
}

// ScoreResponse carries the lens profile and composite result.
type ScoreResponse struct {
	Symbol string          `json:"symbol"`
	Result CompositeResult `json:"result"`
}

// HandleScore handles POST /api/scoring/score
func (h *Handlers) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode score request")
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile := h.scorer.ScoreLenses(req.Fundamentals, req.RiskProfile)
	result := Aggregate(profile)

	if req.Persist && h.recorder != nil && req.Symbol != "" {
		if err := h.recorder.Record(req.Symbol, result); err != nil {
			// Persistence is best-effort; the computation already succeeded.
			h.log.Error().Err(err).Str("symbol", req.Symbol).Msg("Failed to record snapshot")
		}
	}

	h.writeJSON(w, http.StatusOK, ScoreResponse{Symbol: req.Symbol, Result: result})
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
