// Package domain holds the value objects shared by the risk, scoring and
// comparison modules: dated price series and the return series derived from them.
package domain

import (
	"fmt"
	"time"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/pkg/formulas"
)

// PricePoint is one observation of an adjusted close.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries is an ordered sequence of adjusted closes with strictly
// increasing dates. Immutable once loaded; the engine never mutates it.
type PriceSeries []PricePoint

// Validate checks ordering and positivity. Duplicate or out-of-order dates are
// rejected so downstream date alignment stays well-defined.
func (ps PriceSeries) Validate() error {
	for i, p := range ps {
		if p.Close <= 0 {
			return fmt.Errorf("price at %s is not positive: %w", p.Date.Format("2006-01-02"), formulas.ErrDegenerateSeries)
		}
		if i > 0 && !ps[i-1].Date.Before(p.Date) {
			return fmt.Errorf("dates not strictly increasing at %s", p.Date.Format("2006-01-02"))
		}
	}
	return nil
}

// Closes returns the close values in order.
func (ps PriceSeries) Closes() []float64 {
	closes := make([]float64, len(ps))
	for i, p := range ps {
		closes[i] = p.Close
	}
	return closes
}

// ReturnSeries is an ordered sequence of periodic returns, each stamped with
// the date of the later price in its pair. Derived once, never mutated.
type ReturnSeries struct {
	Dates  []time.Time `json:"dates"`
	Values []float64   `json:"values"`
}

// Len returns the number of return observations.
func (rs ReturnSeries) Len() int { return len(rs.Values) }

// Validate checks that every value has a date and the dates are strictly
// increasing. Series built by NewReturnSeries always pass; wire-supplied
// series must be checked before alignment, where a duplicate date or a
// dangling date would otherwise corrupt the intersection.
func (rs ReturnSeries) Validate() error {
	if len(rs.Dates) != len(rs.Values) {
		return fmt.Errorf("%d dates for %d values: %w", len(rs.Dates), len(rs.Values), formulas.ErrMisalignedSeries)
	}
	for i := 1; i < len(rs.Dates); i++ {
		if !rs.Dates[i-1].Before(rs.Dates[i]) {
			return fmt.Errorf("dates not strictly increasing at %s: %w", rs.Dates[i].Format("2006-01-02"), formulas.ErrMisalignedSeries)
		}
	}
	return nil
}

// NewReturnSeries converts a price series into simple periodic returns.
// Fails with ErrInsufficientData below 2 prices.
func NewReturnSeries(ps PriceSeries) (ReturnSeries, error) {
	if err := ps.Validate(); err != nil {
		return ReturnSeries{}, err
	}

	values, err := formulas.Returns(ps.Closes())
	if err != nil {
		return ReturnSeries{}, err
	}

	dates := make([]time.Time, len(values))
	for i := range values {
		dates[i] = ps[i+1].Date
	}

	return ReturnSeries{Dates: dates, Values: values}, nil
}

// AlignPair intersects two return series on their common dates and returns the
// paired values in chronological order. Fails with ErrMisalignedSeries when
// fewer than 2 dates overlap.
func AlignPair(a, b ReturnSeries) ([]float64, []float64, error) {
	bByDate := make(map[time.Time]float64, b.Len())
	for i, d := range b.Dates {
		bByDate[d] = b.Values[i]
	}

	var av, bv []float64
	for i, d := range a.Dates {
		if v, ok := bByDate[d]; ok {
			av = append(av, a.Values[i])
			bv = append(bv, v)
		}
	}
	if len(av) < 2 {
		return nil, nil, formulas.ErrMisalignedSeries
	}
	return av, bv, nil
}

// AlignAll intersects any number of return series on the dates they all share.
// The result is one row per series, columns in chronological order. Fails with
// ErrMisalignedSeries when fewer than 2 dates are common to every series.
func AlignAll(series []ReturnSeries) ([]time.Time, [][]float64, error) {
	if len(series) == 0 {
		return nil, nil, formulas.ErrInsufficientData
	}

	counts := make(map[time.Time]int)
	for _, rs := range series {
		for _, d := range rs.Dates {
			counts[d]++
		}
	}

	// Common dates, in the first series' (chronological) order.
	var dates []time.Time
	for _, d := range series[0].Dates {
		if counts[d] == len(series) {
			dates = append(dates, d)
		}
	}
	if len(dates) < 2 {
		return nil, nil, formulas.ErrMisalignedSeries
	}

	index := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		index[d] = i
	}

	aligned := make([][]float64, len(series))
	for si, rs := range series {
		row := make([]float64, len(dates))
		for i, d := range rs.Dates {
			if col, ok := index[d]; ok {
				row[col] = rs.Values[i]
			}
		}
		aligned[si] = row
	}

	return dates, aligned, nil
}
