package scoring

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Anchor is one interpolation point: a raw metric value and the 0-100 score
// assigned at that value.
type Anchor struct {
	Value float64 `yaml:"value" json:"value"`
	Score float64 `yaml:"score" json:"score"`
}

// Table is an ordered list of anchors defining a piecewise-linear mapping from
// a raw metric to a 0-100 sub-score. Between anchors the score is linearly
// interpolated; outside the outer anchors it is clamped to the nearest anchor's
// score, so small input changes never produce score cliffs.
//
// Tables are configuration data, not code: the defaults below can be replaced
// wholesale from a YAML file to recalibrate without touching scoring logic.
type Table []Anchor

// Interpolate maps a raw metric value to its sub-score.
func (t Table) Interpolate(x float64) float64 {
	if len(t) == 0 {
		return 0
	}
	if x <= t[0].Value {
		return t[0].Score
	}
	if x >= t[len(t)-1].Value {
		return t[len(t)-1].Score
	}

	i := sort.Search(len(t), func(i int) bool { return t[i].Value >= x })
	lo, hi := t[i-1], t[i]
	frac := (x - lo.Value) / (hi.Value - lo.Value)
	return lo.Score + frac*(hi.Score-lo.Score)
}

// Validate checks anchor ordering and score bounds.
func (t Table) Validate() error {
	if len(t) < 2 {
		return fmt.Errorf("table needs at least 2 anchors, got %d", len(t))
	}
	for i, a := range t {
		if a.Score < 0 || a.Score > 100 {
			return fmt.Errorf("anchor %d: score %.2f outside [0,100]", i, a.Score)
		}
		if i > 0 && t[i-1].Value >= a.Value {
			return fmt.Errorf("anchor %d: values not strictly increasing", i)
		}
	}
	return nil
}

// Tables holds every metric's interpolation table, keyed by the metric names
// the lens scorers report in their sub-score maps.
type Tables struct {
	PERatio        Table `yaml:"pe_ratio"`
	PBRatio        Table `yaml:"pb_ratio"`
	PSRatio        Table `yaml:"ps_ratio"`
	DividendYield  Table `yaml:"dividend_yield"`
	ROE            Table `yaml:"roe"`
	ROA            Table `yaml:"roa"`
	ProfitMargin   Table `yaml:"profit_margin"`
	RevenueGrowth  Table `yaml:"revenue_growth"`
	EarningsGrowth Table `yaml:"earnings_growth"`
	DebtToEquity   Table `yaml:"debt_to_equity"`
	CurrentRatio   Table `yaml:"current_ratio"`
	QuickRatio     Table `yaml:"quick_ratio"`
	Volatility     Table `yaml:"volatility"`
	Beta           Table `yaml:"beta"`
	Sharpe         Table `yaml:"sharpe"`
	MaxDrawdown    Table `yaml:"max_drawdown"`
	RSI            Table `yaml:"rsi"`
}

// DefaultTables returns the canonical calibration.
//
// Each table forms a plateau over the attractive band and linear ramps toward
// the outer anchors; values beyond the outer anchors clamp instead of cliffing.
func DefaultTables() Tables {
	return Tables{
		// Multiples: cheap-but-not-broken plateaus.
		PERatio: Table{
			{Value: 0, Score: 10}, {Value: 5, Score: 60}, {Value: 10, Score: 90},
			{Value: 15, Score: 90}, {Value: 25, Score: 60}, {Value: 40, Score: 30},
			{Value: 60, Score: 0},
		},
		PBRatio: Table{
			{Value: 0, Score: 50}, {Value: 1, Score: 90}, {Value: 2, Score: 85},
			{Value: 4, Score: 50}, {Value: 8, Score: 10},
		},
		PSRatio: Table{
			{Value: 0, Score: 60}, {Value: 1, Score: 90}, {Value: 2, Score: 80},
			{Value: 5, Score: 40}, {Value: 10, Score: 10},
		},
		// Very high yields usually signal distress, so the curve comes back down.
		DividendYield: Table{
			{Value: 0, Score: 20}, {Value: 0.01, Score: 50}, {Value: 0.02, Score: 80},
			{Value: 0.04, Score: 90}, {Value: 0.06, Score: 70}, {Value: 0.10, Score: 40},
		},
		ROE: Table{
			{Value: -0.10, Score: 0}, {Value: 0, Score: 20}, {Value: 0.08, Score: 50},
			{Value: 0.15, Score: 80}, {Value: 0.25, Score: 95}, {Value: 0.40, Score: 100},
		},
		ROA: Table{
			{Value: -0.05, Score: 0}, {Value: 0, Score: 20}, {Value: 0.05, Score: 60},
			{Value: 0.10, Score: 85}, {Value: 0.20, Score: 100},
		},
		ProfitMargin: Table{
			{Value: -0.10, Score: 0}, {Value: 0, Score: 25}, {Value: 0.05, Score: 50},
			{Value: 0.10, Score: 70}, {Value: 0.20, Score: 90}, {Value: 0.35, Score: 100},
		},
		RevenueGrowth: Table{
			{Value: -0.20, Score: 0}, {Value: 0, Score: 30}, {Value: 0.05, Score: 55},
			{Value: 0.10, Score: 75}, {Value: 0.20, Score: 90}, {Value: 0.40, Score: 100},
		},
		EarningsGrowth: Table{
			{Value: -0.25, Score: 0}, {Value: 0, Score: 30}, {Value: 0.05, Score: 55},
			{Value: 0.15, Score: 80}, {Value: 0.30, Score: 95}, {Value: 0.50, Score: 100},
		},
		// Balance sheet: lower leverage is better; liquidity peaks around 2x.
		DebtToEquity: Table{
			{Value: 0, Score: 95}, {Value: 0.5, Score: 85}, {Value: 1.0, Score: 65},
			{Value: 2.0, Score: 35}, {Value: 4.0, Score: 0},
		},
		CurrentRatio: Table{
			{Value: 0.5, Score: 10}, {Value: 1.0, Score: 50}, {Value: 2.0, Score: 90},
			{Value: 3.0, Score: 90}, {Value: 6.0, Score: 70},
		},
		QuickRatio: Table{
			{Value: 0.3, Score: 10}, {Value: 1.0, Score: 70}, {Value: 1.5, Score: 90},
			{Value: 3.0, Score: 90},
		},
		// Risk & momentum inputs (annualized decimals except RSI).
		Volatility: Table{
			{Value: 0.10, Score: 95}, {Value: 0.15, Score: 90}, {Value: 0.20, Score: 75},
			{Value: 0.30, Score: 50}, {Value: 0.45, Score: 25}, {Value: 0.60, Score: 5},
		},
		Beta: Table{
			{Value: 0, Score: 60}, {Value: 0.5, Score: 80}, {Value: 0.8, Score: 95},
			{Value: 1.0, Score: 90}, {Value: 1.2, Score: 70}, {Value: 1.6, Score: 40},
			{Value: 2.5, Score: 10},
		},
		Sharpe: Table{
			{Value: -1.0, Score: 0}, {Value: 0, Score: 30}, {Value: 0.5, Score: 55},
			{Value: 1.0, Score: 80}, {Value: 2.0, Score: 95}, {Value: 3.0, Score: 100},
		},
		MaxDrawdown: Table{
			{Value: -0.60, Score: 0}, {Value: -0.40, Score: 20}, {Value: -0.25, Score: 50},
			{Value: -0.15, Score: 75}, {Value: -0.05, Score: 95}, {Value: 0, Score: 100},
		},
		// Mid-range RSI is healthy; overbought and oversold extremes are not.
		RSI: Table{
			{Value: 20, Score: 40}, {Value: 30, Score: 70}, {Value: 45, Score: 90},
			{Value: 55, Score: 90}, {Value: 70, Score: 60}, {Value: 80, Score: 30},
		},
	}
}

// Validate checks every table.
func (t Tables) Validate() error {
	named := map[string]Table{
		"pe_ratio": t.PERatio, "pb_ratio": t.PBRatio, "ps_ratio": t.PSRatio,
		"dividend_yield": t.DividendYield, "roe": t.ROE, "roa": t.ROA,
		"profit_margin": t.ProfitMargin, "revenue_growth": t.RevenueGrowth,
		"earnings_growth": t.EarningsGrowth, "debt_to_equity": t.DebtToEquity,
		"current_ratio": t.CurrentRatio, "quick_ratio": t.QuickRatio,
		"volatility": t.Volatility, "beta": t.Beta, "sharpe": t.Sharpe,
		"max_drawdown": t.MaxDrawdown, "rsi": t.RSI,
	}
	for name, table := range named {
		if err := table.Validate(); err != nil {
			return fmt.Errorf("table %s: %w", name, err)
		}
	}
	return nil
}

// LoadTables reads a full table calibration from a YAML file. The file
// replaces the defaults wholesale; a partial file is a validation error, which
// keeps deployed calibrations explicit.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tables: %w", err)
	}

	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return Tables{}, fmt.Errorf("parse tables: %w", err)
	}
	if err := tables.Validate(); err != nil {
		return Tables{}, fmt.Errorf("invalid tables in %s: %w", path, err)
	}

	return tables, nil
}
