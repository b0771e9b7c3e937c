package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharpeRatio(t *testing.T) {
	// Mean 1%/period with modest dispersion and zero risk-free rate: strongly positive.
	returns := []float64{0.01, 0.03, -0.01, 0.01, 0.01}

	sharpe, err := SharpeRatio(returns, 0, TradingDaysPerYear)
	require.NoError(t, err)
	assert.Greater(t, sharpe, 0.0)

	// A risk-free rate above the annualized mean flips the sign.
	sharpeHighRf, err := SharpeRatio(returns, 10.0, TradingDaysPerYear)
	require.NoError(t, err)
	assert.Less(t, sharpeHighRf, 0.0)
}

func TestSharpeRatio_ZeroVolatility(t *testing.T) {
	flat := []float64{0.0, 0.0, 0.0, 0.0}
	_, err := SharpeRatio(flat, 0.05, TradingDaysPerYear)
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestSortinoRatio_NoDownside(t *testing.T) {
	// Every return above target: downside risk is unknown, not infinite.
	returns := []float64{0.01, 0.02, 0.015, 0.03}
	_, err := SortinoRatio(returns, 0.0, 0.0, TradingDaysPerYear)
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestSortinoRatio(t *testing.T) {
	returns := []float64{0.02, -0.01, 0.03, -0.02, 0.01}

	sortino, err := SortinoRatio(returns, 0.0, 0.0, TradingDaysPerYear)
	require.NoError(t, err)

	sharpe, err := SharpeRatio(returns, 0.0, TradingDaysPerYear)
	require.NoError(t, err)

	// Same numerator, downside-only denominator: confirm both are defined
	// and positive for this mixed series.
	assert.Greater(t, sortino, 0.0)
	assert.Greater(t, sharpe, 0.0)
}

func TestCalmarRatio(t *testing.T) {
	returns := []float64{0.10, -0.50, 0.25}

	calmar, err := CalmarRatio(returns, TradingDaysPerYear)
	require.NoError(t, err)

	// Max drawdown is -50%, annualized return is negative: Calmar < 0.
	assert.Less(t, calmar, 0.0)
}

func TestCalmarRatio_NoDrawdown(t *testing.T) {
	rising := []float64{0.01, 0.02, 0.01}
	_, err := CalmarRatio(rising, TradingDaysPerYear)
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestBeta_SelfIsOne(t *testing.T) {
	returns := []float64{0.01, -0.02, 0.03, 0.005, -0.01}

	beta, err := Beta(returns, returns)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, beta, 1e-12)
}

func TestBeta_LinearScaleOfBenchmark(t *testing.T) {
	bench := []float64{0.01, -0.02, 0.03, 0.005, -0.01}
	scaled := make([]float64, len(bench))
	for i, r := range bench {
		scaled[i] = 2 * r
	}

	beta, err := Beta(scaled, bench)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, beta, 1e-12)
}

func TestBeta_Misaligned(t *testing.T) {
	_, err := Beta([]float64{0.01, 0.02}, []float64{0.01})
	assert.ErrorIs(t, err, ErrMisalignedSeries)

	_, err = Beta([]float64{0.01}, []float64{0.01})
	assert.ErrorIs(t, err, ErrMisalignedSeries)
}

func TestBeta_DegenerateBenchmark(t *testing.T) {
	flatBench := []float64{0.0, 0.0, 0.0}
	_, err := Beta([]float64{0.01, -0.02, 0.03}, flatBench)
	assert.ErrorIs(t, err, ErrDegenerateSeries)
}
