package comparison

import (
	"fmt"
	"math"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/domain"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/risk"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/pkg/formulas"
)

// weightTolerance is how far the weight sum may drift from 1.0.
const weightTolerance = 1e-4

// AnalyzePortfolio blends the holdings' return series by weight, re-runs the
// risk engine on the blended series, and computes the pairwise correlation
// matrix and diversification ratio.
//
// Weights must be non-negative and sum to 1.0 within tolerance, otherwise the
// analysis fails with ErrInvalidWeights. Series are intersected on their
// common dates before blending; fewer than 2 shared dates fails with
// ErrMisalignedSeries.
func (s *Service) AnalyzePortfolio(holdings []Holding, cfg risk.Config) (*PortfolioProfile, error) {
	if len(holdings) == 0 {
		return nil, formulas.ErrInsufficientData
	}

	weights := make([]float64, len(holdings))
	symbols := make([]string, len(holdings))
	series := make([]domain.ReturnSeries, len(holdings))
	var weightSum float64
	for i, h := range holdings {
		if err := h.Returns.Validate(); err != nil {
			return nil, fmt.Errorf("holding %s: %w", h.Symbol, err)
		}
		if h.Weight < 0 {
			return nil, formulas.ErrInvalidWeights
		}
		weights[i] = h.Weight
		symbols[i] = h.Symbol
		series[i] = h.Returns
		weightSum += h.Weight
	}
	if math.Abs(weightSum-1.0) > weightTolerance {
		return nil, formulas.ErrInvalidWeights
	}

	dates, aligned, err := domain.AlignAll(series)
	if err != nil {
		return nil, err
	}

	blended := make([]float64, len(dates))
	for col := range dates {
		var r float64
		for row := range aligned {
			r += weights[row] * aligned[row][col]
		}
		blended[col] = r
	}

	blendedSeries := domain.ReturnSeries{Dates: dates, Values: blended}
	riskProfile, err := s.riskSvc.ComputeProfile(blendedSeries, nil, nil, cfg)
	if err != nil {
		return nil, err
	}

	profile := &PortfolioProfile{
		Symbols:        symbols,
		Weights:        weights,
		Risk:           riskProfile,
		BlendedReturns: blended,
		Correlations:   correlationMatrix(aligned),
	}

	if ratio := diversificationRatio(aligned, weights, riskProfile, cfg); ratio != nil {
		profile.DiversificationRatio = ratio
	}

	return profile, nil
}

// correlationMatrix computes pairwise Pearson correlations over the aligned
// return rows. Pairs involving a zero-variance series are reported as 0.
func correlationMatrix(aligned [][]float64) [][]float64 {
	n := len(aligned)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1.0
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if corr, err := formulas.Correlation(aligned[i], aligned[j]); err == nil {
				matrix[i][j] = corr
				matrix[j][i] = corr
			}
		}
	}
	return matrix
}

// diversificationRatio is the weighted-average standalone volatility over the
// portfolio volatility. Nil when either side is unavailable or degenerate.
func diversificationRatio(aligned [][]float64, weights []float64, portfolio *risk.Profile, cfg risk.Config) *float64 {
	if portfolio.Volatility == nil || *portfolio.Volatility == 0 {
		return nil
	}

	var weightedVol float64
	for i, row := range aligned {
		vol, err := formulas.AnnualizedVolatility(row, cfg.TradingDays)
		if err != nil {
			return nil
		}
		weightedVol += weights[i] * vol
	}

	ratio := weightedVol / *portfolio.Volatility
	return &ratio
}
