package formulas

// MaxDrawdown calculates the maximum peak-to-trough decline of the cumulative
// equity curve implied by the returns:
//
//	MaxDrawdown = min over t of (equity_t - peak_t) / peak_t
//
// The result is always <= 0 and is exactly 0 when the curve never declines.
// Single deterministic pass.
func MaxDrawdown(returns []float64) (float64, error) {
	if len(returns) < 1 {
		return 0, ErrInsufficientData
	}

	equity := 1.0
	peak := 1.0
	maxDrawdown := 0.0

	for _, r := range returns {
		equity *= 1 + r
		if equity > peak {
			peak = equity
		}
		if dd := (equity - peak) / peak; dd < maxDrawdown {
			maxDrawdown = dd
		}
	}

	return maxDrawdown, nil
}

// DrawdownDuration reports how many periods the maximum drawdown lasted: from
// the peak preceding the deepest trough until the curve recovered to that peak,
// or until the end of the series if it never did. Zero when no drawdown occurred.
func DrawdownDuration(returns []float64) (int, error) {
	if len(returns) < 1 {
		return 0, ErrInsufficientData
	}

	curve := EquityCurve(returns)

	peak := curve[0]
	peakIdx := 0
	maxDD := 0.0
	ddPeakIdx := 0
	troughIdx := 0

	for i, v := range curve {
		if v > peak {
			peak = v
			peakIdx = i
		}
		if dd := (v - peak) / peak; dd < maxDD {
			maxDD = dd
			ddPeakIdx = peakIdx
			troughIdx = i
		}
	}
	if maxDD == 0 {
		return 0, nil
	}

	peakValue := curve[ddPeakIdx]
	for i := troughIdx; i < len(curve); i++ {
		if curve[i] >= peakValue {
			return i - ddPeakIdx, nil
		}
	}
	return len(curve) - 1 - ddPeakIdx, nil
}
