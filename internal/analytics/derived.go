package analytics

import (
	"math"

	"github.com/sonex-on/beta1-portfolio/internal/model"
)

// Derived series are pure, stateless transforms of the value/capital series.
// Each requires more than one point and returns an empty series otherwise.

// GrowthSeries is the cumulative growth percentage relative to the first
// value point: (value/first - 1) * 100. Always 0 at the first date.
func GrowthSeries(value model.Series) model.Series {
	if len(value) < 2 {
		return model.Series{}
	}
	first := value.First().Value
	growth := make(model.Series, len(value))
	for i, p := range value {
		pct := 0.0
		if first != 0 {
			pct = (p.Value/first - 1) * 100
		}
		growth[i] = model.SeriesPoint{Date: p.Date, Value: pct}
	}
	return growth
}

// ProfitSeries is the currency profit at each date: value - capital. The two
// series share a calendar by construction.
func ProfitSeries(value, capital model.Series) model.Series {
	if len(value) < 2 || len(capital) < 2 {
		return model.Series{}
	}
	n := len(value)
	if len(capital) < n {
		n = len(capital)
	}
	profit := make(model.Series, n)
	for i := 0; i < n; i++ {
		profit[i] = model.SeriesPoint{Date: value[i].Date, Value: value[i].Value - capital[i].Value}
	}
	return profit
}

// DrawdownSeries is the percentage decline from the running maximum value:
// (value - runningMax) / runningMax * 100. Always <= 0, and exactly 0 at
// each new running maximum.
func DrawdownSeries(value model.Series) model.Series {
	if len(value) < 2 {
		return model.Series{}
	}
	drawdown := make(model.Series, len(value))
	runningMax := value.First().Value
	for i, p := range value {
		if p.Value > runningMax {
			runningMax = p.Value
		}
		pct := 0.0
		if runningMax != 0 {
			pct = (p.Value - runningMax) / runningMax * 100
		}
		drawdown[i] = model.SeriesPoint{Date: p.Date, Value: pct}
	}
	return drawdown
}

// MarginSeries is the profit margin percentage at each date:
// (value - capital) / value * 100, with divide-by-zero and NaN treated as 0.
func MarginSeries(value, capital model.Series) model.Series {
	if len(value) < 2 || len(capital) < 2 {
		return model.Series{}
	}
	n := len(value)
	if len(capital) < n {
		n = len(capital)
	}
	margin := make(model.Series, n)
	for i := 0; i < n; i++ {
		pct := 0.0
		if value[i].Value != 0 {
			pct = (value[i].Value - capital[i].Value) / value[i].Value * 100
			if math.IsNaN(pct) || math.IsInf(pct, 0) {
				pct = 0
			}
		}
		margin[i] = model.SeriesPoint{Date: value[i].Date, Value: pct}
	}
	return margin
}
