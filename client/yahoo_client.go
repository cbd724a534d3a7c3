package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stockdash/customerrors"
	"stockdash/middleware"
	"stockdash/model"
	"stockdash/util"

	"github.com/go-resty/resty/v2"
)

const DefaultYahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

type YahooClient struct {
	client *resty.Client
}

// NewYahooClient builds a chart API client. No timeout or retry is set:
// a slow request waits on the transport defaults.
func NewYahooClient(baseURL string) *YahooClient {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})
	client.OnAfterResponse(middleware.DecompressResponse)

	return &YahooClient{
		client: client,
	}
}

// GetChart returns the first chart result for symbol.
func (y *YahooClient) GetChart(ctx context.Context, symbol string, timeRange model.YahooTimeRange) (*model.Result, error) {
	resp, err := y.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"range":    string(timeRange),
			"interval": model.Interval1d,
		}).
		Get("/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("yahoo request for %s failed: %w", symbol, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("yahoo chart %s: %w (status %d)", symbol, customerrors.ErrProviderStatus, resp.StatusCode())
	}

	var chartResponse model.YahooChartResponse
	if err := json.Unmarshal(resp.Body(), &chartResponse); err != nil {
		return nil, fmt.Errorf("yahoo chart %s decode error: %w", symbol, err)
	}
	if chartResponse.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart %s: %s", symbol, chartResponse.Chart.Error.Description)
	}
	if len(chartResponse.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, customerrors.ErrQuoteUnavailable)
	}
	return &chartResponse.Chart.Result[0], nil
}

// GetQuote returns the quote fields of the current session.
func (y *YahooClient) GetQuote(ctx context.Context, symbol string) (*model.YahooMeta, error) {
	result, err := y.GetChart(ctx, symbol, model.Range1d)
	if err != nil {
		return nil, err
	}
	return &result.Meta, nil
}

// GetHistoricalData returns daily bars, oldest first. Bars with a null close
// are skipped.
func (y *YahooClient) GetHistoricalData(ctx context.Context, symbol string, timeRange model.YahooTimeRange) ([]model.Candle, error) {
	result, err := y.GetChart(ctx, symbol, timeRange)
	if err != nil {
		return nil, err
	}
	return CandlesFromResult(symbol, result), nil
}

// CandlesFromResult flattens the parallel OHLCV arrays of a chart result.
func CandlesFromResult(symbol string, result *model.Result) []model.Candle {
	list := make([]model.Candle, 0, len(result.Timestamp))
	if len(result.Indicators.Quote) == 0 {
		return list
	}

	loc := util.ExchangeLocation(result.Meta.ExchangeTimezoneName)
	quote := result.Indicators.Quote[0]
	for i, ts := range result.Timestamp {
		closePrice := valueAt(quote.Close, i)
		if closePrice == nil {
			continue
		}
		candle := model.Candle{
			Symbol: symbol,
			Date:   time.Unix(ts, 0).In(loc),
			Close:  *closePrice,
		}
		if v := valueAt(quote.Open, i); v != nil {
			candle.Open = *v
		}
		if v := valueAt(quote.High, i); v != nil {
			candle.High = *v
		}
		if v := valueAt(quote.Low, i); v != nil {
			candle.Low = *v
		}
		if v := valueAt(quote.Volume, i); v != nil {
			candle.Volume = *v
		}
		list = append(list, candle)
	}
	return list
}

func valueAt[T any](values []*T, i int) *T {
	if i >= len(values) {
		return nil
	}
	return values[i]
}
