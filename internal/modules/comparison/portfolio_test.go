package comparison

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/domain"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/risk"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/scoring"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/pkg/formulas"
)

func newTestService() *Service {
	log := zerolog.Nop()
	return NewService(
		scoring.NewScorer(scoring.DefaultTables(), nil),
		risk.NewService(log),
		log,
	)
}

func returnSeries(values []float64) domain.ReturnSeries {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, len(values))
	for i := range values {
		dates[i] = start.AddDate(0, 0, i)
	}
	return domain.ReturnSeries{Dates: dates, Values: values}
}

func TestAnalyzePortfolio_BlendedSeries(t *testing.T) {
	svc := newTestService()

	holdings := []Holding{
		{Symbol: "AAA", Returns: returnSeries([]float64{0.01, -0.02, 0.03}), Weight: 0.6},
		{Symbol: "BBB", Returns: returnSeries([]float64{0.02, 0.01, -0.01}), Weight: 0.4},
	}

	profile, err := svc.AnalyzePortfolio(holdings, risk.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, profile.BlendedReturns, 3)
	assert.InDelta(t, 0.014, profile.BlendedReturns[0], 1e-12)
	assert.InDelta(t, -0.008, profile.BlendedReturns[1], 1e-12)
	assert.InDelta(t, 0.014, profile.BlendedReturns[2], 1e-12)

	require.NotNil(t, profile.Risk)
	require.NotNil(t, profile.Risk.Volatility)

	// Imperfectly correlated constituents always yield a diversification benefit.
	require.Len(t, profile.Correlations, 2)
	assert.InDelta(t, 1.0, profile.Correlations[0][0], 1e-12)
	assert.InDelta(t, profile.Correlations[0][1], profile.Correlations[1][0], 1e-12)
	assert.Less(t, profile.Correlations[0][1], 1.0)

	require.NotNil(t, profile.DiversificationRatio)
	assert.Greater(t, *profile.DiversificationRatio, 1.0)
}

func TestAnalyzePortfolio_InvalidWeights(t *testing.T) {
	svc := newTestService()
	returns := returnSeries([]float64{0.01, -0.02, 0.03})

	tests := []struct {
		name     string
		weights  []float64
	}{
		{name: "sum below one", weights: []float64{0.5, 0.3}},
		{name: "sum above one", weights: []float64{0.8, 0.4}},
		{name: "negative weight", weights: []float64{1.2, -0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holdings := []Holding{
				{Symbol: "AAA", Returns: returns, Weight: tt.weights[0]},
				{Symbol: "BBB", Returns: returns, Weight: tt.weights[1]},
			}
			_, err := svc.AnalyzePortfolio(holdings, risk.DefaultConfig())
			assert.ErrorIs(t, err, formulas.ErrInvalidWeights)
		})
	}
}

func TestAnalyzePortfolio_MisalignedDates(t *testing.T) {
	svc := newTestService()

	a := returnSeries([]float64{0.01, 0.02, 0.03})
	// Shift B a year away so no dates overlap.
	b := returnSeries([]float64{0.01, 0.02, 0.03})
	for i := range b.Dates {
		b.Dates[i] = b.Dates[i].AddDate(1, 0, 0)
	}

	holdings := []Holding{
		{Symbol: "AAA", Returns: a, Weight: 0.5},
		{Symbol: "BBB", Returns: b, Weight: 0.5},
	}

	_, err := svc.AnalyzePortfolio(holdings, risk.DefaultConfig())
	assert.ErrorIs(t, err, formulas.ErrMisalignedSeries)
}

func TestAnalyzePortfolio_DuplicateDateRejected(t *testing.T) {
	svc := newTestService()

	// Three holdings each returning +10% every period. One series repeats a
	// date another lacks; blending it would fabricate 0.0 returns for the
	// observations the others are missing, so the whole analysis must fail.
	a := returnSeries([]float64{0.10, 0.10, 0.10, 0.10})
	b := returnSeries([]float64{0.10, 0.10, 0.10, 0.10})
	c := returnSeries([]float64{0.10, 0.10, 0.10, 0.10})
	c.Dates[1] = c.Dates[0]

	holdings := []Holding{
		{Symbol: "AAA", Returns: a, Weight: 0.4},
		{Symbol: "BBB", Returns: b, Weight: 0.3},
		{Symbol: "CCC", Returns: c, Weight: 0.3},
	}

	_, err := svc.AnalyzePortfolio(holdings, risk.DefaultConfig())
	assert.ErrorIs(t, err, formulas.ErrMisalignedSeries)
}

func TestAnalyzePortfolio_DanglingDatesRejected(t *testing.T) {
	svc := newTestService()

	bad := returnSeries([]float64{0.01, 0.02, 0.03})
	bad.Values = bad.Values[:1]

	holdings := []Holding{
		{Symbol: "AAA", Returns: returnSeries([]float64{0.01, 0.02, 0.03}), Weight: 0.5},
		{Symbol: "BBB", Returns: bad, Weight: 0.5},
	}

	_, err := svc.AnalyzePortfolio(holdings, risk.DefaultConfig())
	assert.ErrorIs(t, err, formulas.ErrMisalignedSeries)
}

func TestAnalyzePortfolio_Empty(t *testing.T) {
	svc := newTestService()
	_, err := svc.AnalyzePortfolio(nil, risk.DefaultConfig())
	assert.ErrorIs(t, err, formulas.ErrInsufficientData)
}
