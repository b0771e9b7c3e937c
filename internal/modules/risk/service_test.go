package risk

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/domain"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/pkg/formulas"
)

func priceSeries(closes []float64) domain.PriceSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ps := make(domain.PriceSeries, len(closes))
	for i, c := range closes {
		ps[i] = domain.PricePoint{Date: start.AddDate(0, 0, i), Close: c}
	}
	return ps
}

func flatPrices(n int) domain.PriceSeries {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100
	}
	return priceSeries(closes)
}

func TestComputeProfile_FlatSeries(t *testing.T) {
	svc := NewService(zerolog.Nop())

	prices := flatPrices(60)
	returns, err := domain.NewReturnSeries(prices)
	require.NoError(t, err)

	profile, err := svc.ComputeProfile(returns, nil, prices, DefaultConfig())
	require.NoError(t, err)

	// A flat price series has zero volatility; the risk-adjusted ratios are
	// undefined (nil), not zero, and the drawdown is exactly zero.
	require.NotNil(t, profile.Volatility)
	assert.Equal(t, 0.0, *profile.Volatility)
	assert.Nil(t, profile.SharpeRatio)
	assert.Nil(t, profile.SortinoRatio)
	assert.Nil(t, profile.CalmarRatio)
	require.NotNil(t, profile.MaxDrawdown)
	assert.Equal(t, 0.0, *profile.MaxDrawdown)
}

func TestComputeProfile_BetaAgainstSelf(t *testing.T) {
	svc := NewService(zerolog.Nop())

	prices := priceSeries([]float64{100, 101, 99, 103, 102, 104, 101, 105})
	returns, err := domain.NewReturnSeries(prices)
	require.NoError(t, err)

	profile, err := svc.ComputeProfile(returns, &returns, prices, DefaultConfig())
	require.NoError(t, err)

	require.NotNil(t, profile.Beta)
	assert.InDelta(t, 1.0, *profile.Beta, 1e-12)
}

func TestComputeProfile_VaREstimates(t *testing.T) {
	svc := NewService(zerolog.Nop())

	// 200 prices with alternating moves gives a sample large enough for every
	// estimator, including Cornish-Fisher.
	closes := make([]float64, 0, 201)
	price := 100.0
	closes = append(closes, price)
	for i := 0; i < 200; i++ {
		if i%2 == 0 {
			price *= 1.01
		} else {
			price *= 0.995
		}
		closes = append(closes, price)
	}
	prices := priceSeries(closes)

	returns, err := domain.NewReturnSeries(prices)
	require.NoError(t, err)

	profile, err := svc.ComputeProfile(returns, nil, prices, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, profile.VaR, 2)
	for _, est := range profile.VaR {
		require.NotNil(t, est.Historical)
		require.NotNil(t, est.Parametric)
		require.NotNil(t, est.CornishFisher)
		require.NotNil(t, est.CVaR)

		// Expected shortfall is at least as severe as the threshold loss.
		assert.LessOrEqual(t, *est.CVaR, *est.Historical)
	}

	// Higher confidence is an equal or more severe threshold.
	assert.GreaterOrEqual(t, *profile.VaR[0].Historical, *profile.VaR[1].Historical)

	require.NotNil(t, profile.RSI)
	assert.GreaterOrEqual(t, *profile.RSI, 0.0)
	assert.LessOrEqual(t, *profile.RSI, 100.0)
	require.NotNil(t, profile.Momentum)
}

func TestComputeProfile_ShortHistory(t *testing.T) {
	svc := NewService(zerolog.Nop())

	prices := priceSeries([]float64{100, 101})
	returns, err := domain.NewReturnSeries(prices)
	require.NoError(t, err)

	_, err = svc.ComputeProfile(returns, nil, prices, DefaultConfig())
	assert.ErrorIs(t, err, formulas.ErrInsufficientData)
}

func TestComputeProfile_InvalidConfidence(t *testing.T) {
	svc := NewService(zerolog.Nop())

	prices := priceSeries(func() []float64 {
		closes := make([]float64, 50)
		price := 100.0
		for i := range closes {
			closes[i] = price
			price *= 1.001
		}
		return closes
	}())
	returns, err := domain.NewReturnSeries(prices)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.ConfidenceLevels = []float64{1.5}

	_, err = svc.ComputeProfile(returns, nil, prices, cfg)
	assert.ErrorIs(t, err, formulas.ErrInvalidConfidence)
}

func TestComputeProfile_MalformedSeries(t *testing.T) {
	svc := NewService(zerolog.Nop())

	prices := priceSeries([]float64{100, 101, 102, 103})
	returns, err := domain.NewReturnSeries(prices)
	require.NoError(t, err)
	returns.Values = returns.Values[:1]

	_, err = svc.ComputeProfile(returns, nil, prices, DefaultConfig())
	assert.ErrorIs(t, err, formulas.ErrMisalignedSeries)
}

func TestComputeProfile_ShortHistoryOmitsVaR(t *testing.T) {
	svc := NewService(zerolog.Nop())

	// 20 returns: enough for volatility, far too few for empirical VaR.
	prices := priceSeries(func() []float64 {
		closes := make([]float64, 21)
		price := 100.0
		for i := range closes {
			closes[i] = price
			price *= 1.002
		}
		return closes
	}())
	returns, err := domain.NewReturnSeries(prices)
	require.NoError(t, err)

	profile, err := svc.ComputeProfile(returns, nil, prices, DefaultConfig())
	require.NoError(t, err)

	require.NotNil(t, profile.Volatility)
	for _, est := range profile.VaR {
		assert.Nil(t, est.Historical)
		assert.Nil(t, est.CornishFisher)
		assert.Nil(t, est.CVaR)
	}
}

func TestSummary_FlatSeries(t *testing.T) {
	svc := NewService(zerolog.Nop())

	prices := flatPrices(40)
	returns, err := domain.NewReturnSeries(prices)
	require.NoError(t, err)

	profile, err := svc.ComputeProfile(returns, nil, prices, DefaultConfig())
	require.NoError(t, err)

	lines := Summary(profile)
	assert.Contains(t, lines, "Beta: market data unavailable")
	assert.Contains(t, lines, "Sharpe ratio: undefined for this series")
}
