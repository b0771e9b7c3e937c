package formulas

import "errors"

// Typed computation outcomes. Callers branch on these with errors.Is; nothing in
// this package ever substitutes 0 or NaN for a statistic it cannot estimate.
var (
	// ErrInsufficientData means the sample is too small for the requested statistic.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateSeries means a variance-like quantity needed as a denominator is zero.
	ErrDegenerateSeries = errors.New("degenerate series")

	// ErrMisalignedSeries means two series do not share enough overlapping observations.
	ErrMisalignedSeries = errors.New("misaligned series")

	// ErrInvalidWeights means portfolio weights are negative or do not sum to 1.0.
	ErrInvalidWeights = errors.New("invalid weights")

	// ErrInvalidConfidence means a VaR confidence level is outside (0, 1).
	ErrInvalidConfidence = errors.New("invalid confidence level")

	// ErrUndefined means the ratio has no meaningful value for this input
	// (e.g. Sharpe on a zero-volatility series). It is "unknown", not zero
	// and not infinity.
	ErrUndefined = errors.New("undefined ratio")
)
