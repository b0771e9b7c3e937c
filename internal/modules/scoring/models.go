// Package scoring maps fundamental ratios and risk statistics into five
// weighted lens scores (0-100) and a composite investment signal.
package scoring

// Lens identifies one of the five scoring dimensions.
type Lens string

const (
	LensValuation    Lens = "valuation"
	LensQuality      Lens = "quality"
	LensGrowth       Lens = "growth"
	LensHealth       Lens = "financial_health"
	LensRiskMomentum Lens = "risk_momentum"
)

// AllLenses is the canonical lens ordering used in every profile.
var AllLenses = []Lens{LensValuation, LensQuality, LensGrowth, LensHealth, LensRiskMomentum}

// FundamentalSnapshot is a point-in-time set of fundamental ratios. A nil
// field means the ratio is unknown; it is excluded from scoring, never
// defaulted to a value that looks like a real measurement.
//
// Ratios are decimals (0.15 = 15%) except the price multiples and balance
// sheet ratios, which are plain multiples.
type FundamentalSnapshot struct {
	PERatio        *float64 `json:"pe_ratio,omitempty"`
	PBRatio        *float64 `json:"pb_ratio,omitempty"`
	PSRatio        *float64 `json:"ps_ratio,omitempty"`
	DividendYield  *float64 `json:"dividend_yield,omitempty"`
	ROE            *float64 `json:"roe,omitempty"`
	ROA            *float64 `json:"roa,omitempty"`
	ProfitMargin   *float64 `json:"profit_margin,omitempty"`
	RevenueGrowth  *float64 `json:"revenue_growth,omitempty"`
	EarningsGrowth *float64 `json:"earnings_growth,omitempty"`
	DebtToEquity   *float64 `json:"debt_to_equity,omitempty"`
	CurrentRatio   *float64 `json:"current_ratio,omitempty"`
	QuickRatio     *float64 `json:"quick_ratio,omitempty"`
}

// LensScore is one lens's result: the 0-100 score (nil when no input metric
// was available, an explicit "no opinion" distinct from a low score), the
// per-metric sub-scores that produced it, and the lens's canonical weight.
type LensScore struct {
	Lens      Lens               `json:"lens"`
	Score     *float64           `json:"score,omitempty"`
	SubScores map[string]float64 `json:"sub_scores"`
	Weight    float64            `json:"weight"`
}

// Unscored reports whether the lens had zero available inputs.
func (ls LensScore) Unscored() bool { return ls.Score == nil }

// LensProfile is the set of five lens scores in canonical order.
type LensProfile struct {
	Lenses []LensScore `json:"lenses"`
}

// Tier is the discrete recommendation derived from the composite score.
type Tier string

const (
	TierStrongBuy Tier = "strong_buy"
	TierBuy       Tier = "buy"
	TierHold      Tier = "hold"
	TierWatch     Tier = "watch"
	TierAvoid     Tier = "avoid"
	TierUnscored  Tier = "unscored"
)

// LensContribution explains one lens's share of the composite: its score, its
// canonical weight, and the effective weight after renormalizing around
// unscored lenses.
type LensContribution struct {
	Lens            Lens    `json:"lens"`
	Score           float64 `json:"score"`
	Weight          float64 `json:"weight"`
	EffectiveWeight float64 `json:"effective_weight"`
	Contribution    float64 `json:"contribution"`
}

// CompositeResult is the terminal artifact of the scoring pipeline. Score is
// nil only when every lens was unscored.
type CompositeResult struct {
	Profile   LensProfile        `json:"profile"`
	Score     *float64           `json:"score,omitempty"`
	Tier      Tier               `json:"tier"`
	Breakdown []LensContribution `json:"breakdown"`
}
