package model

type YahooTimeRange string

const (
	Range1d  YahooTimeRange = "1d"
	Range5d  YahooTimeRange = "5d"
	Range1mo YahooTimeRange = "1mo"
	Range3mo YahooTimeRange = "3mo"
	Range6mo YahooTimeRange = "6mo"
	Range1y  YahooTimeRange = "1y"
	Range2y  YahooTimeRange = "2y"
	Range5y  YahooTimeRange = "5y"
	Range10y YahooTimeRange = "10y"
	RangeYtd YahooTimeRange = "ytd"
	RangeMax YahooTimeRange = "max"
)

// Interval1d is the only bar size the dashboard asks for.
const Interval1d = "1d"

// YahooTimeRanges lists every range accepted by the chart endpoint.
var YahooTimeRanges = []string{
	string(Range1d), string(Range5d), string(Range1mo), string(Range3mo), string(Range6mo),
	string(Range1y), string(Range2y), string(Range5y), string(Range10y), string(RangeYtd), string(RangeMax),
}

// YahooChartResponse is the top-level container
type YahooChartResponse struct {
	Chart ChartData `json:"chart"`
}

type ChartData struct {
	Result []Result    `json:"result"`
	Error  *YahooError `json:"error"`
}

type YahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Result struct {
	Meta       YahooMeta  `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

// YahooMeta carries the quote fields of a chart result. Any of the prices may
// be absent, so they are pointers.
type YahooMeta struct {
	Symbol               string   `json:"symbol"`
	Currency             string   `json:"currency"`
	ExchangeTimezoneName string   `json:"exchangeTimezoneName"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	RegularMarketChange  *float64 `json:"regularMarketChange"`
	PreviousClose        *float64 `json:"previousClose"`
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
}

type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the OHLCV arrays. Yahoo sends null for bars without trades.
type Quote struct {
	Low    []*float64 `json:"low"`
	High   []*float64 `json:"high"`
	Open   []*float64 `json:"open"`
	Volume []*int64   `json:"volume"`
	Close  []*float64 `json:"close"`
}
