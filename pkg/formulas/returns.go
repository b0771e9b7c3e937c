package formulas

// Returns converts a price series into simple periodic returns.
// Returns[i] = (Price[i+1] - Price[i]) / Price[i]
//
// The whole engine uses simple (not log) returns, consistently. Fails with
// ErrInsufficientData below 2 prices and ErrDegenerateSeries on a non-positive
// price, which cannot come from an adjusted-close series.
func Returns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, ErrInsufficientData
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] <= 0 {
			return nil, ErrDegenerateSeries
		}
		returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}

	return returns, nil
}

// TotalReturn calculates the total return over the whole price window.
func TotalReturn(prices []float64) (float64, error) {
	if len(prices) < 2 {
		return 0, ErrInsufficientData
	}
	if prices[0] <= 0 {
		return 0, ErrDegenerateSeries
	}
	return (prices[len(prices)-1] - prices[0]) / prices[0], nil
}

// EquityCurve compounds periodic returns into a cumulative equity curve
// starting at 1.0. The result has len(returns)+1 elements.
func EquityCurve(returns []float64) []float64 {
	curve := make([]float64, len(returns)+1)
	curve[0] = 1.0
	for i, r := range returns {
		curve[i+1] = curve[i] * (1 + r)
	}
	return curve
}
