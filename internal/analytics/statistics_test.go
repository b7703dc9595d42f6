package analytics_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/sonex-on/beta1-portfolio/internal/analytics"
	"github.com/sonex-on/beta1-portfolio/internal/model"
	"github.com/sonex-on/beta1-portfolio/internal/testutil"
)

// growthSeries builds n+1 points compounding at dailyPct per day from 100.
func growthSeries(start time.Time, days int, dailyPct float64) model.Series {
	s := make(model.Series, days+1)
	v := 100.0
	for i := 0; i <= days; i++ {
		s[i] = model.SeriesPoint{Date: start.AddDate(0, 0, i), Value: v}
		v *= 1 + dailyPct/100
	}
	return s
}

// TestComputeStatistics tests the statistics snapshot.
//
// WHY: Every number on the statistics panel comes from this one function.
// The annualization gate, outlier exclusion and degenerate-input behavior
// are the contracts callers rely on.
func TestComputeStatistics(t *testing.T) {
	start := testutil.Date(2024, time.January, 1)

	t.Run("all-zero snapshot for a single point", func(t *testing.T) {
		snap := analytics.ComputeStatistics(series(start, 100), model.Series{}, analytics.DefaultRiskFreeRate)

		if !reflect.DeepEqual(snap, model.StatisticsSnapshot{}) {
			t.Errorf("Expected all-zero snapshot, got %+v", snap)
		}
	})

	t.Run("all-zero snapshot when cleaning removes everything", func(t *testing.T) {
		snap := analytics.ComputeStatistics(series(start, 0, -5, math.NaN()), model.Series{}, analytics.DefaultRiskFreeRate)

		if !reflect.DeepEqual(snap, model.StatisticsSnapshot{}) {
			t.Errorf("Expected all-zero snapshot, got %+v", snap)
		}
	})

	t.Run("max drawdown on a short series", func(t *testing.T) {
		snap := analytics.ComputeStatistics(series(start, 100, 120, 90, 130), model.Series{}, analytics.DefaultRiskFreeRate)

		if !almostEqual(snap.MaxDrawdownPct, -25) {
			t.Errorf("MaxDrawdownPct = %v, want -25", snap.MaxDrawdownPct)
		}
		if !almostEqual(snap.ReturnPct, 30) {
			t.Errorf("ReturnPct = %v, want 30", snap.ReturnPct)
		}
	})

	t.Run("short spans report raw figures and zero Sharpe", func(t *testing.T) {
		snap := analytics.ComputeStatistics(growthSeries(start, 30, 1), model.Series{}, analytics.DefaultRiskFreeRate)

		if !almostEqual(snap.AnnualisedReturnPct, snap.ReturnPct) {
			t.Errorf("Expected annualised return %v to equal raw return %v under 60 days",
				snap.AnnualisedReturnPct, snap.ReturnPct)
		}
		if snap.Sharpe != 0 {
			t.Errorf("Sharpe = %v, want 0 under 60 days", snap.Sharpe)
		}
		if snap.Sortino != 0 {
			t.Errorf("Sortino = %v, want 0 under 60 days", snap.Sortino)
		}
		if !almostEqual(snap.AnnualisedVolPct, snap.DailyStdevPct) {
			t.Errorf("Expected vol %v to equal daily stdev %v under 60 days",
				snap.AnnualisedVolPct, snap.DailyStdevPct)
		}
	})

	t.Run("long spans annualize and clamp", func(t *testing.T) {
		// 120 days at 0.5%/day compounds to ~82% raw; the CAGR extrapolation
		// is several times larger but stays within the clamp.
		snap := analytics.ComputeStatistics(growthSeries(start, 120, 0.5), model.Series{}, analytics.DefaultRiskFreeRate)

		if snap.AnnualisedReturnPct <= snap.ReturnPct {
			t.Errorf("Expected annualised %v > raw %v over 60 days", snap.AnnualisedReturnPct, snap.ReturnPct)
		}
		if snap.AnnualisedReturnPct > 9999.99 {
			t.Errorf("AnnualisedReturnPct = %v, exceeds clamp 9999.99", snap.AnnualisedReturnPct)
		}
		if snap.Sharpe < -10 || snap.Sharpe > 10 {
			t.Errorf("Sharpe = %v out of clamp range", snap.Sharpe)
		}
	})

	t.Run("measures return against final invested capital when present", func(t *testing.T) {
		value := series(start, 100, 110, 150)
		capital := series(start, 100, 100, 120)

		snap := analytics.ComputeStatistics(value, capital, analytics.DefaultRiskFreeRate)

		if !almostEqual(snap.ReturnPct, 25) {
			t.Errorf("ReturnPct = %v, want 25 (150 vs capital 120)", snap.ReturnPct)
		}
	})

	t.Run("excludes outlier daily moves from volatility only", func(t *testing.T) {
		// One 243% single-day move amid sub-1% days. It must not leak into
		// the stdev, but the value series itself keeps the point.
		value := series(start, 100, 101, 102, 350, 353)

		snap := analytics.ComputeStatistics(value, model.Series{}, analytics.DefaultRiskFreeRate)

		if snap.DailyStdevPct <= 0 || snap.DailyStdevPct > 1 {
			t.Errorf("DailyStdevPct = %v, expected small stdev with outlier excluded", snap.DailyStdevPct)
		}
		// The outlier still drives total return.
		if snap.ReturnPct < 200 {
			t.Errorf("ReturnPct = %v, expected outlier to remain in the series", snap.ReturnPct)
		}
	})

	t.Run("all-time-high metrics", func(t *testing.T) {
		value := series(start, 100, 120, 150, 120, 120)

		snap := analytics.ComputeStatistics(value, model.Series{}, analytics.DefaultRiskFreeRate)

		if !almostEqual(snap.ATHQuotePct, 80) {
			t.Errorf("ATHQuotePct = %v, want 80", snap.ATHQuotePct)
		}
		if snap.DaysSinceATH != 2 {
			t.Errorf("DaysSinceATH = %v, want 2", snap.DaysSinceATH)
		}
		if !almostEqual(snap.ReturnSinceATHPct, -20) {
			t.Errorf("ReturnSinceATHPct = %v, want -20", snap.ReturnSinceATHPct)
		}
	})

	t.Run("is a pure function of its input", func(t *testing.T) {
		value := growthSeries(start, 90, 0.3)
		capital := series(start, 100, 100)

		first := analytics.ComputeStatistics(value, capital, analytics.DefaultRiskFreeRate)
		second := analytics.ComputeStatistics(value, capital, analytics.DefaultRiskFreeRate)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("Repeated calls differ: %+v vs %+v", first, second)
		}
	})

	t.Run("skewness and kurtosis need enough returns", func(t *testing.T) {
		// Three points give two returns: below both thresholds.
		snap := analytics.ComputeStatistics(series(start, 100, 110, 105), model.Series{}, analytics.DefaultRiskFreeRate)

		if snap.Skewness != 0 {
			t.Errorf("Skewness = %v, want 0 with too few returns", snap.Skewness)
		}
		if snap.Kurtosis != 0 {
			t.Errorf("Kurtosis = %v, want 0 with too few returns", snap.Kurtosis)
		}
	})
}
