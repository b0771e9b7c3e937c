// Package risk computes the statistical risk profile of an instrument from its
// historical return series: volatility, three VaR estimators, expected
// shortfall, Sharpe/Sortino/Calmar, Beta, and drawdown statistics.
package risk

import (
	"errors"
	"fmt"
	"math"

	"github.com/markcheno/go-talib"
	"github.com/rs/zerolog"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/domain"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/pkg/formulas"
)

// rsiPeriod is the lookback for the RSI momentum indicator.
const rsiPeriod = 14

// momentumPeriod is the trailing window (about six months of trading days)
// for the price momentum indicator.
const momentumPeriod = 126

// Service is the risk metrics engine. Stateless between invocations; safe for
// concurrent use across instruments.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new risk metrics service.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("component", "risk").Logger(),
	}
}

// ComputeProfile computes the full risk profile for one instrument.
//
// returns is required; benchmark and prices are optional inputs for Beta and
// the momentum indicators. Metrics the sample cannot support are left nil on
// the profile. Each failure is a typed outcome from pkg/formulas, and a
// failure of a single metric never aborts the rest of the profile.
func (s *Service) ComputeProfile(
	returns domain.ReturnSeries,
	benchmark *domain.ReturnSeries,
	prices domain.PriceSeries,
	cfg Config,
) (*Profile, error) {
	if err := returns.Validate(); err != nil {
		return nil, err
	}
	if benchmark != nil {
		if err := benchmark.Validate(); err != nil {
			return nil, fmt.Errorf("benchmark: %w", err)
		}
	}
	for _, c := range cfg.ConfidenceLevels {
		if c <= 0 || c >= 1 {
			return nil, fmt.Errorf("confidence %v: %w", c, formulas.ErrInvalidConfidence)
		}
	}
	if returns.Len() < 2 {
		return nil, formulas.ErrInsufficientData
	}

	p := &Profile{}
	values := returns.Values

	if vol, err := formulas.AnnualizedVolatility(values, cfg.TradingDays); err == nil {
		p.Volatility = &vol
	}

	annReturn := formulas.AnnualizedReturn(values, cfg.TradingDays)
	p.AnnualizedReturn = &annReturn

	if sharpe, err := formulas.SharpeRatio(values, cfg.RiskFreeRate, cfg.TradingDays); err == nil {
		p.SharpeRatio = &sharpe
	} else if !errors.Is(err, formulas.ErrUndefined) {
		s.log.Warn().Err(err).Msg("Sharpe ratio unavailable")
	}

	if sortino, err := formulas.SortinoRatio(values, cfg.RiskFreeRate, cfg.SortinoTarget, cfg.TradingDays); err == nil {
		p.SortinoRatio = &sortino
	}

	if dd, err := formulas.MaxDrawdown(values); err == nil {
		p.MaxDrawdown = &dd
	}
	if duration, err := formulas.DrawdownDuration(values); err == nil {
		p.DrawdownDuration = &duration
	}

	if calmar, err := formulas.CalmarRatio(values, cfg.TradingDays); err == nil {
		p.CalmarRatio = &calmar
	}

	if benchmark != nil {
		s.computeBeta(p, returns, *benchmark)
	}

	p.VaR = s.computeVaR(values, cfg.ConfidenceLevels)

	if len(prices) > 0 {
		s.computePriceIndicators(p, prices)
	}

	return p, nil
}

// computeBeta aligns the instrument and benchmark on common dates first;
// covariance over mismatched calendars would be meaningless.
func (s *Service) computeBeta(p *Profile, returns, benchmark domain.ReturnSeries) {
	av, bv, err := domain.AlignPair(returns, benchmark)
	if err != nil {
		s.log.Warn().Err(err).Msg("Beta unavailable: series do not overlap")
		return
	}

	beta, err := formulas.Beta(av, bv)
	if err != nil {
		s.log.Warn().Err(err).Msg("Beta unavailable")
		return
	}
	p.Beta = &beta
}

func (s *Service) computeVaR(values []float64, confidenceLevels []float64) []VaREstimate {
	estimates := make([]VaREstimate, 0, len(confidenceLevels))
	for _, c := range confidenceLevels {
		est := VaREstimate{Confidence: c}

		if v, err := formulas.HistoricalVaR(values, c); err == nil {
			est.Historical = &v
		}
		if v, err := formulas.ParametricVaR(values, c); err == nil {
			est.Parametric = &v
		}
		if v, err := formulas.CornishFisherVaR(values, c); err == nil {
			est.CornishFisher = &v
		}
		if v, err := formulas.CVaR(values, c); err == nil {
			est.CVaR = &v
		}

		estimates = append(estimates, est)
	}
	return estimates
}

// computePriceIndicators derives the trend inputs of the Risk & Momentum lens
// from the raw price series.
func (s *Service) computePriceIndicators(p *Profile, prices domain.PriceSeries) {
	closes := prices.Closes()

	if total, err := formulas.TotalReturn(closes); err == nil {
		p.TotalReturn = &total
	}

	if len(closes) > rsiPeriod+1 {
		rsi := talib.Rsi(closes, rsiPeriod)
		if last := rsi[len(rsi)-1]; !math.IsNaN(last) {
			p.RSI = &last
		}
	}

	if len(closes) > momentumPeriod {
		start := closes[len(closes)-momentumPeriod-1]
		if start > 0 {
			momentum := (closes[len(closes)-1] - start) / start
			p.Momentum = &momentum
		}
	}
}
