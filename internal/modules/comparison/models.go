// Package comparison provides cross-sectional peer ranking and portfolio-level
// aggregation on top of the risk and scoring modules.
package comparison

import (
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/domain"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/risk"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/scoring"
)

// Peer is one instrument entering a cross-sectional ranking.
type Peer struct {
	Symbol       string                      `json:"symbol"`
	Fundamentals scoring.FundamentalSnapshot `json:"fundamentals"`
	RiskProfile  *risk.Profile               `json:"risk_profile,omitempty"`
}

// RankedPeer is one row of a ranking result, ordered by composite score
// descending with ties broken lexically by symbol.
type RankedPeer struct {
	Rank   int                     `json:"rank"`
	Symbol string                  `json:"symbol"`
	Result scoring.CompositeResult `json:"result"`
}

// Holding is one instrument with its return history and portfolio weight.
type Holding struct {
	Symbol  string              `json:"symbol"`
	Returns domain.ReturnSeries `json:"returns"`
	Weight  float64             `json:"weight"`
}

// PortfolioProfile is the portfolio-level aggregation result: the blended
// risk profile, the pairwise return correlations on aligned dates, and the
// diversification ratio (weighted-average standalone volatility over portfolio
// volatility; > 1 indicates diversification benefit).
//
// Recomputed whole whenever weights or constituents change, never patched.
type PortfolioProfile struct {
	Symbols              []string      `json:"symbols"`
	Weights              []float64     `json:"weights"`
	Risk                 *risk.Profile `json:"risk"`
	Correlations         [][]float64   `json:"correlations"`
	BlendedReturns       []float64     `json:"blended_returns"`
	DiversificationRatio *float64      `json:"diversification_ratio,omitempty"`
}
