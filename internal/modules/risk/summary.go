package risk

import "fmt"

// Summary classifies the profile's headline metrics into plain-language bands
// for presentation layers. Metrics the profile could not compute are reported
// as unavailable rather than assumed neutral.
func Summary(p *Profile) []string {
	var lines []string

	switch {
	case p.Beta == nil:
		lines = append(lines, "Beta: market data unavailable")
	case *p.Beta > 1.2:
		lines = append(lines, fmt.Sprintf("Beta %.2fx: high sensitivity to market movements", *p.Beta))
	case *p.Beta > 0.8:
		lines = append(lines, fmt.Sprintf("Beta %.2fx: moderate sensitivity to market movements", *p.Beta))
	default:
		lines = append(lines, fmt.Sprintf("Beta %.2fx: low sensitivity to market movements (defensive)", *p.Beta))
	}

	if p.Volatility != nil {
		vol := *p.Volatility
		switch {
		case vol > 0.30:
			lines = append(lines, fmt.Sprintf("Volatility %.1f%%: high (risky)", vol*100))
		case vol > 0.20:
			lines = append(lines, fmt.Sprintf("Volatility %.1f%%: moderate", vol*100))
		default:
			lines = append(lines, fmt.Sprintf("Volatility %.1f%%: low (stable)", vol*100))
		}
	}

	switch {
	case p.SharpeRatio == nil:
		lines = append(lines, "Sharpe ratio: undefined for this series")
	case *p.SharpeRatio > 1.0:
		lines = append(lines, fmt.Sprintf("Sharpe %.2f: good risk-adjusted returns", *p.SharpeRatio))
	case *p.SharpeRatio > 0.0:
		lines = append(lines, fmt.Sprintf("Sharpe %.2f: moderate risk-adjusted returns", *p.SharpeRatio))
	default:
		lines = append(lines, fmt.Sprintf("Sharpe %.2f: returns not compensating for risk", *p.SharpeRatio))
	}

	if p.MaxDrawdown != nil {
		dd := *p.MaxDrawdown
		switch {
		case dd < -0.30:
			lines = append(lines, fmt.Sprintf("Max drawdown %.1f%%: severe downside risk observed", dd*100))
		case dd < -0.15:
			lines = append(lines, fmt.Sprintf("Max drawdown %.1f%%: moderate drawdowns observed", dd*100))
		default:
			lines = append(lines, fmt.Sprintf("Max drawdown %.1f%%: drawdowns relatively contained", dd*100))
		}
	}

	return lines
}
