package model

import "time"

// TickerQuote is one entry of the scrolling ticker tape.
type TickerQuote struct {
	Symbol       string   `json:"symbol"`
	CurrentPrice *float64 `json:"currentPrice"`
	Change       float64  `json:"change"`
}

// GainerEntry is one row of the top gainers table.
type GainerEntry struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"changePercent"`
	CompanyName   string  `json:"companyName"`
}

// WatchlistEntry is derived from a one day history: open vs latest close.
type WatchlistEntry struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
}

type NewsItem struct {
	Title          string `json:"title"`
	RelatedTickers string `json:"relatedTickers"`
	Link           string `json:"link"`
}

// Candle is a single daily OHLCV bar.
type Candle struct {
	Symbol string    `json:"symbol"`
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

type ChartPoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// ChartSeries is the closing price history of one symbol, oldest first.
type ChartSeries struct {
	Symbol string       `json:"symbol"`
	Points []ChartPoint `json:"points"`
}

func (s ChartSeries) Empty() bool {
	return len(s.Points) == 0
}

// Placeholders used when a provider omits a field.
const (
	Unavailable    = "N/A"
	UnknownCompany = "Unknown"
	NoTitle        = "No Title"
	NoLink         = "#"
)
