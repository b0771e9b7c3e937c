package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/risk"
)

func fp(v float64) *float64 { return &v }

func TestScoreValuation_AveragesAvailableMetrics(t *testing.T) {
	scorer := NewScorer(DefaultTables(), nil)

	// Only P/E and P/B supplied; P/S and yield are absent and must shrink the
	// divisor, not count as zero.
	ls := scorer.ScoreValuation(FundamentalSnapshot{
		PERatio: fp(12), // plateau: 90
		PBRatio: fp(1),  // anchor: 90
	})

	require.False(t, ls.Unscored())
	require.Len(t, ls.SubScores, 2)
	assert.InDelta(t, 90.0, *ls.Score, 1e-9)
}

func TestScoreValuation_AllAbsent(t *testing.T) {
	scorer := NewScorer(DefaultTables(), nil)

	ls := scorer.ScoreValuation(FundamentalSnapshot{})
	assert.True(t, ls.Unscored())
	assert.Nil(t, ls.Score)
	assert.Empty(t, ls.SubScores)
}

func TestScoreQuality(t *testing.T) {
	scorer := NewScorer(DefaultTables(), nil)

	ls := scorer.ScoreQuality(FundamentalSnapshot{
		ROE:          fp(0.15), // 80
		ROA:          fp(0.10), // 85
		ProfitMargin: fp(0.10), // 70
	})

	require.False(t, ls.Unscored())
	assert.InDelta(t, (80.0+85.0+70.0)/3, *ls.Score, 1e-9)
}

func TestScoreRiskMomentum_NilProfile(t *testing.T) {
	scorer := NewScorer(DefaultTables(), nil)

	ls := scorer.ScoreRiskMomentum(nil)
	assert.True(t, ls.Unscored())
}

func TestScoreRiskMomentum(t *testing.T) {
	scorer := NewScorer(DefaultTables(), nil)

	profile := &risk.Profile{
		Volatility:  fp(0.20),  // 75
		Beta:        fp(1.0),   // 90
		MaxDrawdown: fp(-0.15), // 75
	}

	ls := scorer.ScoreRiskMomentum(profile)
	require.False(t, ls.Unscored())
	require.Len(t, ls.SubScores, 3)
	assert.InDelta(t, (75.0+90.0+75.0)/3, *ls.Score, 1e-9)
}

func TestScoreLenses_CanonicalOrderAndWeights(t *testing.T) {
	scorer := NewScorer(DefaultTables(), nil)

	profile := scorer.ScoreLenses(FundamentalSnapshot{}, nil)
	require.Len(t, profile.Lenses, 5)

	var sum float64
	for i, ls := range profile.Lenses {
		assert.Equal(t, AllLenses[i], ls.Lens)
		sum += ls.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 0.25, profile.Lenses[1].Weight, 1e-9) // quality carries the most
}

func TestScores_AlwaysInBounds(t *testing.T) {
	scorer := NewScorer(DefaultTables(), nil)

	extremes := []FundamentalSnapshot{
		{PERatio: fp(-50), ROE: fp(-5), RevenueGrowth: fp(-3), DebtToEquity: fp(100)},
		{PERatio: fp(1e6), ROE: fp(10), RevenueGrowth: fp(50), DebtToEquity: fp(0)},
	}
	for _, f := range extremes {
		profile := scorer.ScoreLenses(f, nil)
		for _, ls := range profile.Lenses {
			if ls.Unscored() {
				continue
			}
			assert.GreaterOrEqual(t, *ls.Score, 0.0)
			assert.LessOrEqual(t, *ls.Score, 100.0)
		}
	}
}
