package formulas

import "math"

// volEpsilon separates "zero volatility" from floating point noise.
const volEpsilon = 1e-12

// SharpeRatio calculates the Sharpe ratio:
//
//	Sharpe = (annualized mean return - risk-free rate) / annualized volatility
//
// riskFreeRate is annual, as a decimal. Fails with ErrUndefined when volatility
// is ~0: a riskless series has no risk-adjusted return, and returning 0 or a
// huge number would fabricate a confident signal.
func SharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear int) (float64, error) {
	if len(returns) < 2 {
		return 0, ErrInsufficientData
	}

	vol, err := AnnualizedVolatility(returns, periodsPerYear)
	if err != nil {
		return 0, err
	}
	if vol < volEpsilon {
		return 0, ErrUndefined
	}

	return (AnnualizedReturn(returns, periodsPerYear) - riskFreeRate) / vol, nil
}

// SortinoRatio calculates the Sortino ratio: the Sharpe numerator over downside
// deviation, computed only from returns below the periodic target.
//
// targetReturn is annual, as a decimal (commonly 0 or the risk-free rate).
// Fails with ErrUndefined when no returns fall below the target: downside risk
// cannot be estimated, which is "unknown", not "infinitely good".
func SortinoRatio(returns []float64, riskFreeRate, targetReturn float64, periodsPerYear int) (float64, error) {
	if len(returns) < 2 {
		return 0, ErrInsufficientData
	}

	periodicTarget := targetReturn / float64(periodsPerYear)

	var downsideSquaredSum float64
	var downsideCount int
	for _, r := range returns {
		if r < periodicTarget {
			d := r - periodicTarget
			downsideSquaredSum += d * d
			downsideCount++
		}
	}
	if downsideCount == 0 {
		return 0, ErrUndefined
	}

	downsideDeviation := math.Sqrt(downsideSquaredSum / float64(downsideCount))
	if downsideDeviation < volEpsilon {
		return 0, ErrUndefined
	}

	annualizedDownside := downsideDeviation * math.Sqrt(float64(periodsPerYear))
	return (AnnualizedReturn(returns, periodsPerYear) - riskFreeRate) / annualizedDownside, nil
}

// CalmarRatio calculates annualized return over the magnitude of maximum
// drawdown. Fails with ErrUndefined when no drawdown was observed.
func CalmarRatio(returns []float64, periodsPerYear int) (float64, error) {
	maxDD, err := MaxDrawdown(returns)
	if err != nil {
		return 0, err
	}
	if maxDD == 0 {
		return 0, ErrUndefined
	}

	return AnnualizedReturn(returns, periodsPerYear) / math.Abs(maxDD), nil
}

// Beta calculates covariance-normalized sensitivity to a benchmark:
//
//	Beta = Cov(stock returns, benchmark returns) / Var(benchmark returns)
//
// Both slices must already be aligned on the same dates. Fails with
// ErrMisalignedSeries below 2 overlapping observations and ErrDegenerateSeries
// when the benchmark has ~0 variance.
func Beta(returns, benchmarkReturns []float64) (float64, error) {
	if len(returns) != len(benchmarkReturns) || len(returns) < 2 {
		return 0, ErrMisalignedSeries
	}

	benchVariance := Variance(benchmarkReturns)
	if benchVariance < volEpsilon {
		return 0, ErrDegenerateSeries
	}

	cov, err := Covariance(returns, benchmarkReturns)
	if err != nil {
		return 0, err
	}

	return cov / benchVariance, nil
}
