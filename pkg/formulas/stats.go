package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the default annualization factor for daily series.
const TradingDaysPerYear = 252

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the sample variance of a slice of float64 values
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// Skewness calculates the sample skewness of a slice of float64 values
func Skewness(data []float64) float64 {
	if len(data) < 3 {
		return 0
	}
	return stat.Skew(data, nil)
}

// ExcessKurtosis calculates the sample excess kurtosis of a slice of float64 values
func ExcessKurtosis(data []float64) float64 {
	if len(data) < 4 {
		return 0
	}
	return stat.ExKurtosis(data, nil)
}

// Correlation calculates the Pearson correlation coefficient between two
// equal-length series. Fails when either series has zero variance.
func Correlation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrMisalignedSeries
	}
	if len(x) < 2 {
		return 0, ErrInsufficientData
	}
	if StdDev(x) == 0 || StdDev(y) == 0 {
		return 0, ErrDegenerateSeries
	}
	return stat.Correlation(x, y, nil), nil
}

// Covariance calculates the sample covariance between two equal-length series.
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrMisalignedSeries
	}
	if len(x) < 2 {
		return 0, ErrInsufficientData
	}
	return stat.Covariance(x, y, nil), nil
}

// AnnualizedVolatility calculates annualized volatility from periodic returns.
// Formula: sample std dev of returns * sqrt(periods per year).
// Fails with ErrDegenerateSeries when variance cannot be estimated (< 2 returns).
func AnnualizedVolatility(returns []float64, periodsPerYear int) (float64, error) {
	if len(returns) < 2 {
		return 0, ErrDegenerateSeries
	}
	return StdDev(returns) * math.Sqrt(float64(periodsPerYear)), nil
}

// AnnualizedReturn scales the mean periodic return to an annual figure.
func AnnualizedReturn(returns []float64, periodsPerYear int) float64 {
	return Mean(returns) * float64(periodsPerYear)
}
