package model

// StatisticsSnapshot is a fixed set of risk/return metrics computed from a
// portfolio value series. Every field is always populated; insufficient input
// yields zero values rather than missing keys, so consumers never branch on
// presence.
type StatisticsSnapshot struct {
	ReturnPct           float64 `json:"returnPct"`
	AnnualisedReturnPct float64 `json:"annualisedReturnPct"`
	MaxDrawdownPct      float64 `json:"maxDrawdownPct"`
	DailyStdevPct       float64 `json:"dailyStdevPct"`
	AnnualisedVolPct    float64 `json:"annualisedVolPct"`
	Sharpe              float64 `json:"sharpe"`
	Sortino             float64 `json:"sortino"`
	Skewness            float64 `json:"skewness"`
	Kurtosis            float64 `json:"kurtosis"`
	ATHQuotePct         float64 `json:"athQuotePct"`
	DaysSinceATH        int     `json:"daysSinceAth"`
	ReturnSinceATHPct   float64 `json:"returnSinceAthPct"`
}
