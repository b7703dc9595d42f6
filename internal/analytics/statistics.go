package analytics

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/sonex-on/beta1-portfolio/internal/model"
)

const (
	// DefaultRiskFreeRate is the annual risk-free rate used when none is
	// configured (US T-bills).
	DefaultRiskFreeRate = 0.05

	// tradingDaysPerYear annualizes daily volatility.
	tradingDaysPerYear = 252

	// daysPerYear is the calendar-day baseline for compounding.
	daysPerYear = 365.25

	// minSpanDays gates annualization: shorter samples report raw,
	// non-annualized figures instead of extrapolating.
	minSpanDays = 60

	// outlierReturn excludes single-day moves at or beyond this magnitude
	// from statistics input as data-quality outliers. The value series
	// itself keeps them.
	outlierReturn = 0.5
)

// ComputeStatistics produces the fixed statistics snapshot for a portfolio
// value series. The capital series is optional: when present, total return
// is measured against final invested capital instead of the first value
// point. riskFreeRate is annual, as a decimal.
//
// The snapshot is always fully populated. Fewer than two positive value
// points yield the all-zero snapshot, never an error, and a span under 60
// days reports non-annualized figures with Sharpe/Sortino forced to 0.
// Calling this twice on identical input yields identical output.
func ComputeStatistics(value, capital model.Series, riskFreeRate float64) model.StatisticsSnapshot {
	cleaned := cleanSeries(value)
	if len(cleaned) < 2 {
		return model.StatisticsSnapshot{}
	}

	returns := dailyReturns(cleaned)
	if len(returns) < 1 {
		return model.StatisticsSnapshot{}
	}
	filtered := filterOutliers(returns)

	first := cleaned.First()
	last := cleaned.Last()
	spanDays := int(last.Date.Sub(first.Date).Hours() / 24)
	longEnough := spanDays >= minSpanDays

	var snap model.StatisticsSnapshot

	// Total return: against final invested capital when available.
	if capLast := capital.Last().Value; capLast > 0 {
		snap.ReturnPct = (last.Value/capLast - 1) * 100
	} else {
		snap.ReturnPct = (last.Value/first.Value - 1) * 100
	}

	// CAGR, only for samples long enough to annualize honestly.
	if longEnough {
		cagr := (math.Pow(last.Value/first.Value, daysPerYear/float64(spanDays)) - 1) * 100
		snap.AnnualisedReturnPct = clamp(cagr, -99.99, 9999.99)
	} else {
		snap.AnnualisedReturnPct = snap.ReturnPct
	}

	if dd := DrawdownSeries(cleaned); len(dd) > 0 {
		minDD := 0.0
		for _, p := range dd {
			if p.Value < minDD {
				minDD = p.Value
			}
		}
		snap.MaxDrawdownPct = minDD
	}

	if len(filtered) >= 2 {
		dailyStdev := stat.StdDev(filtered, nil)
		snap.DailyStdevPct = dailyStdev * 100
		if longEnough {
			snap.AnnualisedVolPct = dailyStdev * math.Sqrt(tradingDaysPerYear) * 100
		} else {
			snap.AnnualisedVolPct = snap.DailyStdevPct
		}
	}

	if longEnough && snap.AnnualisedVolPct > 0 {
		excess := snap.AnnualisedReturnPct/100 - riskFreeRate
		snap.Sharpe = clamp(excess/(snap.AnnualisedVolPct/100), -10, 10)

		downside := negativeReturns(filtered)
		if len(downside) >= 2 {
			downsideDev := stat.StdDev(downside, nil) * math.Sqrt(tradingDaysPerYear)
			if !math.IsNaN(downsideDev) && downsideDev > 0 {
				snap.Sortino = clamp(excess/downsideDev, -10, 10)
			}
		}
	}

	if len(filtered) > 2 {
		if skew := stat.Skew(filtered, nil); !math.IsNaN(skew) {
			snap.Skewness = skew
		}
	}
	if len(filtered) > 3 {
		if kurt := stat.ExKurtosis(filtered, nil); !math.IsNaN(kurt) {
			snap.Kurtosis = kurt
		}
	}

	athValue, athDate := allTimeHigh(cleaned)
	if athValue > 0 {
		snap.ATHQuotePct = last.Value / athValue * 100
		snap.DaysSinceATH = int(last.Date.Sub(athDate).Hours() / 24)
		snap.ReturnSinceATHPct = (last.Value/athValue - 1) * 100
	}

	return snap
}

// cleanSeries drops non-positive and NaN points. The original series is not
// modified; outlier day-over-day moves are intentionally left in.
func cleanSeries(value model.Series) model.Series {
	cleaned := make(model.Series, 0, len(value))
	for _, p := range value {
		if p.Value > 0 && !math.IsNaN(p.Value) {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned
}

// dailyReturns is the day-over-day percentage change of the series.
func dailyReturns(value model.Series) []float64 {
	if len(value) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(value)-1)
	for i := 1; i < len(value); i++ {
		returns = append(returns, value[i].Value/value[i-1].Value-1)
	}
	return returns
}

// filterOutliers removes daily returns outside (-50%, +50%) from the
// statistics input.
func filterOutliers(returns []float64) []float64 {
	filtered := make([]float64, 0, len(returns))
	for _, r := range returns {
		if math.Abs(r) < outlierReturn {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func negativeReturns(returns []float64) []float64 {
	downside := make([]float64, 0, len(returns))
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	return downside
}

// allTimeHigh returns the maximum value and the date of its first occurrence.
func allTimeHigh(value model.Series) (float64, time.Time) {
	var athValue float64
	var athDate time.Time
	for _, p := range value {
		if p.Value > athValue {
			athValue = p.Value
			athDate = p.Date
		}
	}
	return athValue, athDate
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
