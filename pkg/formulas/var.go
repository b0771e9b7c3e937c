package formulas

import (
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Minimum sample sizes for the distribution-based estimators. Below these the
// estimate is statistically meaningless and the functions fail instead of
// producing a silently misleading number.
const (
	// MinVaRSample is the minimum number of returns for an empirical quantile.
	MinVaRSample = 30

	// MinMomentSample is the minimum number of returns before sample skewness
	// and kurtosis are stable enough for the Cornish-Fisher expansion.
	MinMomentSample = 100
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// HistoricalVaR calculates Value at Risk from the empirical return distribution.
// The result is the return at the (1-confidence) quantile: VaR(0.95) is the 5th
// percentile, typically a negative number.
func HistoricalVaR(returns []float64, confidence float64) (float64, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, ErrInvalidConfidence
	}
	if len(returns) < MinVaRSample {
		return 0, ErrInsufficientData
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	return stat.Quantile(1-confidence, stat.Empirical, sorted, nil), nil
}

// ParametricVaR calculates Value at Risk assuming normally distributed returns:
//
//	VaR = mean - z_c * sigma
//
// where z_c is the standard normal quantile for the confidence level and sigma is the
// per-period (not annualized) standard deviation. This is an approximation: real
// return distributions have fatter tails than the normal. See CornishFisherVaR
// for a moment-corrected estimate.
func ParametricVaR(returns []float64, confidence float64) (float64, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, ErrInvalidConfidence
	}
	if len(returns) < 2 {
		return 0, ErrInsufficientData
	}

	z := stdNormal.Quantile(confidence)
	return Mean(returns) - z*StdDev(returns), nil
}

// CornishFisherVaR calculates Value at Risk with the Cornish-Fisher expansion,
// which adjusts the normal quantile by sample skewness and excess kurtosis to
// account for the asymmetry and fat tails the parametric method ignores.
//
// Third and fourth sample moments are noisy on small samples, so this fails with
// ErrInsufficientData below MinMomentSample observations rather than reporting a
// number driven by estimation error.
func CornishFisherVaR(returns []float64, confidence float64) (float64, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, ErrInvalidConfidence
	}
	if len(returns) < MinMomentSample {
		return 0, ErrInsufficientData
	}

	s := Skewness(returns)
	k := ExcessKurtosis(returns)

	// Lower-tail quantile, adjusted.
	z := stdNormal.Quantile(1 - confidence)
	zcf := z +
		(z*z-1)*s/6 +
		(z*z*z-3*z)*k/24 -
		(2*z*z*z-5*z)*s*s/36

	return Mean(returns) + zcf*StdDev(returns), nil
}

// CVaR calculates Conditional Value at Risk (expected shortfall): the mean of
// all returns at or below the historical VaR threshold. Fails with
// ErrInsufficientData when the tail sample is empty.
func CVaR(returns []float64, confidence float64) (float64, error) {
	threshold, err := HistoricalVaR(returns, confidence)
	if err != nil {
		return 0, err
	}

	var sum float64
	var n int
	for _, r := range returns {
		if r <= threshold {
			sum += r
			n++
		}
	}
	if n == 0 {
		return 0, ErrInsufficientData
	}

	return sum / float64(n), nil
}
