package model

import "time"

// SeriesPoint is a single dated observation in a daily series.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is an ordered daily series (ascending by date). Value, capital and
// all derived series share this shape.
type Series []SeriesPoint

// First returns the first point of the series. The zero SeriesPoint is
// returned for an empty series.
func (s Series) First() SeriesPoint {
	if len(s) == 0 {
		return SeriesPoint{}
	}
	return s[0]
}

// Last returns the last point of the series. The zero SeriesPoint is
// returned for an empty series.
func (s Series) Last() SeriesPoint {
	if len(s) == 0 {
		return SeriesPoint{}
	}
	return s[len(s)-1]
}

// Values returns the raw values of the series in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// PortfolioHistory bundles the reconstructed value/capital series with the
// chart-ready series derived from them.
type PortfolioHistory struct {
	Value    Series `json:"value"`
	Capital  Series `json:"capital"`
	Growth   Series `json:"growth"`
	Profit   Series `json:"profit"`
	Drawdown Series `json:"drawdown"`
	Margin   Series `json:"margin"`
}
