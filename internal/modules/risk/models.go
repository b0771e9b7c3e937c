package risk

// Config holds the engine parameters threaded explicitly through every
// computation. There is no ambient/global state: two analyses with different
// configs can run concurrently.
type Config struct {
	// RiskFreeRate is the annual risk-free rate as a decimal (0.05 = 5%).
	RiskFreeRate float64 `json:"risk_free_rate"`

	// TradingDays is the annualization factor (252 for daily series).
	TradingDays int `json:"trading_days"`

	// ConfidenceLevels are the VaR confidence levels to estimate.
	ConfidenceLevels []float64 `json:"confidence_levels"`

	// SortinoTarget is the annual minimum acceptable return for the Sortino
	// downside deviation. Defaults to 0.
	SortinoTarget float64 `json:"sortino_target"`
}

// DefaultConfig returns the canonical engine parameters.
func DefaultConfig() Config {
	return Config{
		RiskFreeRate:     0.05,
		TradingDays:      252,
		ConfidenceLevels: []float64{0.95, 0.99},
	}
}

// VaREstimate groups the three Value-at-Risk estimators and the expected
// shortfall at one confidence level. Nil fields are estimates the sample could
// not support, never zeroes.
type VaREstimate struct {
	Confidence    float64  `json:"confidence"`
	Historical    *float64 `json:"historical,omitempty"`
	Parametric    *float64 `json:"parametric,omitempty"`
	CornishFisher *float64 `json:"cornish_fisher,omitempty"`
	CVaR          *float64 `json:"cvar,omitempty"`
}

// Profile holds all computed risk metrics for one instrument over one period.
// Immutable value object: created once by the engine, consumed by the scoring
// and comparison modules. A nil field means the metric was undefined or the
// sample could not support it, not that it was zero.
type Profile struct {
	Volatility       *float64      `json:"volatility,omitempty"`
	SharpeRatio      *float64      `json:"sharpe_ratio,omitempty"`
	SortinoRatio     *float64      `json:"sortino_ratio,omitempty"`
	Beta             *float64      `json:"beta,omitempty"`
	MaxDrawdown      *float64      `json:"max_drawdown,omitempty"`
	DrawdownDuration *int          `json:"drawdown_duration,omitempty"`
	CalmarRatio      *float64      `json:"calmar_ratio,omitempty"`
	TotalReturn      *float64      `json:"total_return,omitempty"`
	AnnualizedReturn *float64      `json:"annualized_return,omitempty"`
	RSI              *float64      `json:"rsi,omitempty"`
	Momentum         *float64      `json:"momentum,omitempty"`
	VaR              []VaREstimate `json:"var,omitempty"`
}
