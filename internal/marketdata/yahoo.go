package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// YahooClient fetches quotes and daily price history from the Yahoo Finance
// chart API. It implements Provider.
type YahooClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewYahooClient creates a new Yahoo Finance client with default HTTP settings.
func NewYahooClient() *YahooClient {
	return &YahooClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://query1.finance.yahoo.com",
	}
}

// NewYahooClientWithBaseURL creates a client pointed at a custom endpoint.
// Used by tests to target an httptest server.
func NewYahooClientWithBaseURL(baseURL string) *YahooClient {
	c := NewYahooClient()
	c.baseURL = baseURL
	return c
}

// CurrentQuote fetches the last five trading days for a symbol and derives the
// live quote from them: the most recent close is the price, and the change
// against the prior close is the day change. Yahoo's range-based query
// (range=5d) selects the most recent trading days automatically.
func (c *YahooClient) CurrentQuote(ctx context.Context, symbol string) (Quote, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", c.baseURL, symbol)
	chart, err := c.queryChart(ctx, url)
	if err != nil {
		return Quote{}, err
	}
	if len(chart.Closes) == 0 {
		return Quote{}, fmt.Errorf("no price data returned for symbol %s", symbol)
	}

	last := chart.Closes[len(chart.Closes)-1]

	dayChange := 0.0
	if len(chart.Closes) >= 2 {
		prev := chart.Closes[len(chart.Closes)-2]
		if prev.Price != 0 {
			dayChange = (last.Price - prev.Price) / prev.Price * 100
		}
	}

	name := chart.LongName
	if name == "" {
		name = symbol
	}

	return Quote{
		Symbol:       symbol,
		Name:         name,
		Price:        last.Price,
		DayChangePct: dayChange,
	}, nil
}

// DailyCloses fetches daily closing prices for a symbol from the given date to
// now, using Yahoo's period-based query format with Unix timestamps. The
// result is ordered ascending by date.
func (c *YahooClient) DailyCloses(ctx context.Context, symbol string, since time.Time) ([]Close, error) {
	url := fmt.Sprintf(
		"%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.baseURL,
		symbol,
		since.Unix(),
		time.Now().Unix(),
	)
	chart, err := c.queryChart(ctx, url)
	if err != nil {
		return nil, err
	}
	return chart.Closes, nil
}

// queryChart executes a chart request and parses the response into a
// priceChart. It handles the common logic for making requests, reading
// responses, parsing JSON, and checking for API errors.
//
// Required headers:
//   - User-Agent: Mimics a browser to avoid API blocking
//   - Accept: Requests JSON response format
func (c *YahooClient) queryChart(ctx context.Context, url string) (priceChart, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return priceChart{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return priceChart{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return priceChart{}, err
	}

	var response yahooResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return priceChart{}, err
	}

	if response.Chart.Error != nil {
		return priceChart{}, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	return parseChart(response)
}

// parseChart converts a raw chart API response into a priceChart, validating
// that timestamps and close prices are present and aligned. Days with a zero
// close (market holidays padded by the API) are skipped.
func parseChart(response yahooResponse) (priceChart, error) {
	if len(response.Chart.Result) == 0 {
		return priceChart{}, fmt.Errorf("no results returned")
	}
	result := response.Chart.Result[0]

	if len(result.Timestamp) == 0 {
		return priceChart{}, fmt.Errorf("no price data returned")
	}
	if len(result.Indicators.Quote) == 0 || len(result.Indicators.Quote[0].Close) == 0 {
		return priceChart{}, fmt.Errorf("no close prices returned")
	}
	if len(result.Indicators.Quote[0].Close) != len(result.Timestamp) {
		return priceChart{}, fmt.Errorf("mismatched data lengths")
	}

	closes := make([]Close, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		price := result.Indicators.Quote[0].Close[i]
		if price == 0 {
			continue
		}
		closes = append(closes, Close{
			Date:  atMidnightUTC(time.Unix(ts, 0)),
			Price: price,
		})
	}

	name := result.Meta.LongName
	if name == "" {
		name = result.Meta.Shortname
	}

	return priceChart{
		Symbol:   result.Meta.Symbol,
		Currency: result.Meta.Currency,
		LongName: name,
		Closes:   closes,
	}, nil
}
