package scoring

import (
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/risk"
)

// Canonical lens weights. They sum to 1.0; the composite renormalizes over the
// scored subset when a lens is unscored.
var defaultWeights = map[Lens]float64{
	LensValuation:    0.20,
	LensQuality:      0.25,
	LensGrowth:       0.20,
	LensHealth:       0.20,
	LensRiskMomentum: 0.15,
}

// DefaultWeights returns a copy of the canonical lens weights.
func DefaultWeights() map[Lens]float64 {
	weights := make(map[Lens]float64, len(defaultWeights))
	for lens, w := range defaultWeights {
		weights[lens] = w
	}
	return weights
}

// Scorer maps fundamentals and a risk profile onto the five lenses. Stateless
// apart from its calibration; safe for concurrent use.
type Scorer struct {
	tables  Tables
	weights map[Lens]float64
}

// NewScorer creates a scorer with the given calibration. Nil weights use the
// canonical 20/25/20/20/15 split.
func NewScorer(tables Tables, weights map[Lens]float64) *Scorer {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Scorer{tables: tables, weights: weights}
}

// lensBuilder accumulates sub-scores for one lens, skipping absent metrics so
// they shrink the divisor instead of injecting synthetic values.
type lensBuilder struct {
	subScores map[string]float64
	sum       float64
}

func newLensBuilder() *lensBuilder {
	return &lensBuilder{subScores: make(map[string]float64)}
}

func (b *lensBuilder) add(name string, value *float64, table Table) {
	if value == nil {
		return
	}
	score := table.Interpolate(*value)
	b.subScores[name] = score
	b.sum += score
}

// build averages the available sub-scores. Zero available metrics yields an
// unscored lens (nil score), never a synthetic neutral number.
func (b *lensBuilder) build(lens Lens, weight float64) LensScore {
	ls := LensScore{Lens: lens, SubScores: b.subScores, Weight: weight}
	if len(b.subScores) > 0 {
		avg := b.sum / float64(len(b.subScores))
		ls.Score = &avg
	}
	return ls
}

// ScoreValuation maps the price multiples and dividend yield.
func (s *Scorer) ScoreValuation(f FundamentalSnapshot) LensScore {
	b := newLensBuilder()
	b.add("pe_ratio", f.PERatio, s.tables.PERatio)
	b.add("pb_ratio", f.PBRatio, s.tables.PBRatio)
	b.add("ps_ratio", f.PSRatio, s.tables.PSRatio)
	b.add("dividend_yield", f.DividendYield, s.tables.DividendYield)
	return b.build(LensValuation, s.weights[LensValuation])
}

// ScoreQuality maps the profitability ratios.
func (s *Scorer) ScoreQuality(f FundamentalSnapshot) LensScore {
	b := newLensBuilder()
	b.add("roe", f.ROE, s.tables.ROE)
	b.add("roa", f.ROA, s.tables.ROA)
	b.add("profit_margin", f.ProfitMargin, s.tables.ProfitMargin)
	return b.build(LensQuality, s.weights[LensQuality])
}

// ScoreGrowth maps the growth rates.
func (s *Scorer) ScoreGrowth(f FundamentalSnapshot) LensScore {
	b := newLensBuilder()
	b.add("revenue_growth", f.RevenueGrowth, s.tables.RevenueGrowth)
	b.add("earnings_growth", f.EarningsGrowth, s.tables.EarningsGrowth)
	return b.build(LensGrowth, s.weights[LensGrowth])
}

// ScoreHealth maps the balance sheet ratios.
func (s *Scorer) ScoreHealth(f FundamentalSnapshot) LensScore {
	b := newLensBuilder()
	b.add("debt_to_equity", f.DebtToEquity, s.tables.DebtToEquity)
	b.add("current_ratio", f.CurrentRatio, s.tables.CurrentRatio)
	b.add("quick_ratio", f.QuickRatio, s.tables.QuickRatio)
	return b.build(LensHealth, s.weights[LensHealth])
}

// ScoreRiskMomentum maps the risk profile's statistics. A nil profile leaves
// the lens unscored.
func (s *Scorer) ScoreRiskMomentum(p *risk.Profile) LensScore {
	b := newLensBuilder()
	if p != nil {
		b.add("volatility", p.Volatility, s.tables.Volatility)
		b.add("beta", p.Beta, s.tables.Beta)
		b.add("sharpe", p.SharpeRatio, s.tables.Sharpe)
		b.add("max_drawdown", p.MaxDrawdown, s.tables.MaxDrawdown)
		b.add("rsi", p.RSI, s.tables.RSI)
	}
	return b.build(LensRiskMomentum, s.weights[LensRiskMomentum])
}

// ScoreLenses runs all five lenses and assembles the profile in canonical order.
func (s *Scorer) ScoreLenses(f FundamentalSnapshot, p *risk.Profile) LensProfile {
	return LensProfile{
		Lenses: []LensScore{
			s.ScoreValuation(f),
			s.ScoreQuality(f),
			s.ScoreGrowth(f),
			s.ScoreHealth(f),
			s.ScoreRiskMomentum(p),
		},
	}
}
