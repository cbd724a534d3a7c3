package view

import (
	"stockdash/model"
)

type TickerItem struct {
	Symbol      string `json:"symbol"`
	Price       string `json:"price"`
	Change      string `json:"change"`
	ChangeClass string `json:"changeClass"`
}

type TickerTape struct {
	Items []TickerItem `json:"items"`
	Style TapeStyle    `json:"style"`
}

func BuildTickerTape(quotes []model.TickerQuote) TickerTape {
	items := make([]TickerItem, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, TickerItem{
			Symbol:      q.Symbol,
			Price:       FormatOptionalCurrency(q.CurrentPrice),
			Change:      FormatSignedChange(q.Change),
			ChangeClass: Classify(q.Change),
		})
	}
	return TickerTape{Items: items, Style: TickerTapeStyle(len(quotes))}
}

type NewsLink struct {
	Label string `json:"label"`
	Link  string `json:"link"`
}

type NewsTape struct {
	Items []NewsLink `json:"items"`
	Style TapeStyle  `json:"style"`
}

func BuildNewsTape(news []model.NewsItem) NewsTape {
	items := make([]NewsLink, 0, len(news))
	for _, n := range news {
		items = append(items, NewsLink{
			Label: n.Title + " [" + n.RelatedTickers + "]",
			Link:  n.Link,
		})
	}
	return NewsTape{Items: items, Style: NewsTapeStyle(len(news))}
}

// WatchlistEntryFromHistory derives a watchlist entry from a one day
// history using the last bar's open and close. It reports false when the
// history is empty; such symbols are left out of the table.
func WatchlistEntryFromHistory(symbol string, candles []model.Candle) (model.WatchlistEntry, bool) {
	if len(candles) == 0 {
		return model.WatchlistEntry{}, false
	}
	last := candles[len(candles)-1]
	return model.WatchlistEntry{
		Symbol:        symbol,
		Price:         last.Close,
		ChangePercent: PercentChange(last.Open, last.Close),
		Volume:        last.Volume,
	}, true
}

type WatchlistRow struct {
	Symbol      string `json:"symbol"`
	Price       string `json:"price"`
	Change      string `json:"change"`
	ChangeClass string `json:"changeClass"`
	Volume      string `json:"volume"`
}

func BuildWatchlistRows(entries []model.WatchlistEntry) []WatchlistRow {
	rows := make([]WatchlistRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, WatchlistRow{
			Symbol:      e.Symbol,
			Price:       FormatCurrency(e.Price),
			Change:      FormatPercent(e.ChangePercent),
			ChangeClass: Classify(e.ChangePercent),
			Volume:      FormatVolume(e.Volume),
		})
	}
	return rows
}

type GainerRow struct {
	Symbol      string `json:"symbol"`
	Company     string `json:"company"`
	Price       string `json:"price"`
	Change      string `json:"change"`
	ChangeClass string `json:"changeClass"`
}

func BuildGainerRows(gainers []model.GainerEntry) []GainerRow {
	rows := make([]GainerRow, 0, len(gainers))
	for _, g := range gainers {
		rows = append(rows, GainerRow{
			Symbol:      g.Symbol,
			Company:     g.CompanyName,
			Price:       FormatCurrency(g.Price),
			Change:      FormatPercent(g.ChangePercent),
			ChangeClass: Classify(g.ChangePercent),
		})
	}
	return rows
}
