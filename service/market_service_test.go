package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"stockdash/config"
	"stockdash/model"
)

func ptr(v float64) *float64 { return &v }

type fakeQuotes struct {
	metas   map[string]*model.YahooMeta
	history map[string][]model.Candle
	ranges  []model.YahooTimeRange
}

func (f *fakeQuotes) GetQuote(ctx context.Context, symbol string) (*model.YahooMeta, error) {
	meta, ok := f.metas[symbol]
	if !ok {
		return nil, errors.New("unknown symbol")
	}
	return meta, nil
}

func (f *fakeQuotes) GetHistoricalData(ctx context.Context, symbol string, r model.YahooTimeRange) ([]model.Candle, error) {
	f.ranges = append(f.ranges, r)
	candles, ok := f.history[symbol]
	if !ok {
		return nil, errors.New("unknown symbol")
	}
	return candles, nil
}

type fakeFeed struct {
	gainers  []model.FmpGainer
	articles []model.FmpArticle
	err      error
}

func (f *fakeFeed) GetGainers(ctx context.Context) ([]model.FmpGainer, error) {
	return f.gainers, f.err
}

func (f *fakeFeed) GetArticles(ctx context.Context, page, size int) ([]model.FmpArticle, error) {
	return f.articles, f.err
}

func TestDeriveChange(t *testing.T) {
	tests := []struct {
		name                      string
		direct, current, previous *float64
		want                      float64
	}{
		{"direct wins", ptr(1.5), ptr(10), ptr(9), 1.5},
		{"computed", nil, ptr(187.25), ptr(185.5), 1.75},
		{"missing previous", nil, ptr(10), nil, 0},
		{"missing current", nil, nil, ptr(9), 0},
		{"nothing", nil, nil, nil, 0},
	}
	for _, tt := range tests {
		if got := DeriveChange(tt.direct, tt.current, tt.previous); got != tt.want {
			t.Errorf("%s: DeriveChange() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFetchQuotesOmitsFailures(t *testing.T) {
	quotes := &fakeQuotes{metas: map[string]*model.YahooMeta{
		"AAPL": {RegularMarketPrice: ptr(110), PreviousClose: ptr(100)},
		"MSFT": {RegularMarketPrice: ptr(50), ChartPreviousClose: ptr(52)},
		"NOPX": {},
	}}
	svc := NewMarketService(quotes, &fakeFeed{})

	got := svc.FetchQuotes(context.Background(), []string{"AAPL", "BAD", "MSFT", "NOPX"})
	if len(got) != 3 {
		t.Fatalf("got %d quotes, want 3 (failed symbol omitted)", len(got))
	}
	if got[0].Symbol != "AAPL" || got[0].Change != 10 {
		t.Errorf("got[0] = %+v, want AAPL change 10", got[0])
	}
	if got[1].Symbol != "MSFT" || got[1].Change != -2 {
		t.Errorf("got[1] = %+v, want MSFT change -2", got[1])
	}
	if got[2].CurrentPrice != nil || got[2].Change != 0 {
		t.Errorf("got[2] = %+v, want unavailable price and change 0", got[2])
	}
}

func TestFetchTopGainers(t *testing.T) {
	feed := &fakeFeed{gainers: []model.FmpGainer{
		{Symbol: "UP", Price: 3.5, ChangePercent: 42, CompanyName: "Up Inc"},
		{Price: 1},
	}}
	got := NewMarketService(&fakeQuotes{}, feed).FetchTopGainers(context.Background())

	want := []model.GainerEntry{
		{Symbol: "UP", Price: 3.5, ChangePercent: 42, CompanyName: "Up Inc"},
		{Symbol: "N/A", Price: 1, CompanyName: "Unknown"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FetchTopGainers() = %+v, want %+v", got, want)
	}
}

func TestFetchTopGainersFailureIsEmpty(t *testing.T) {
	feed := &fakeFeed{err: errors.New("401 unauthorized")}
	got := NewMarketService(&fakeQuotes{}, feed).FetchTopGainers(context.Background())
	if got == nil || len(got) != 0 {
		t.Errorf("FetchTopGainers() = %v, want empty non-nil slice", got)
	}
}

func TestFetchNews(t *testing.T) {
	feed := &fakeFeed{articles: []model.FmpArticle{
		{Title: "Fed holds", RelatedTickers: "NYSE:JPM", Link: "https://a"},
		{},
	}}
	got := NewMarketService(&fakeQuotes{}, feed).FetchNews(context.Background())
	want := []model.NewsItem{
		{Title: "Fed holds", RelatedTickers: "NYSE:JPM", Link: "https://a"},
		{Title: "No Title", Link: "#"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FetchNews() = %+v, want %+v", got, want)
	}

	feed.err = errors.New("timeout")
	if got := NewMarketService(&fakeQuotes{}, feed).FetchNews(context.Background()); len(got) != 0 {
		t.Errorf("FetchNews() on failure = %v, want empty", got)
	}
}

func TestFetchHistory(t *testing.T) {
	day := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	quotes := &fakeQuotes{history: map[string][]model.Candle{
		"AAPL": {{Date: day, Close: 100}, {Date: day.AddDate(0, 0, 1), Close: 101}},
		"NEW":  {},
	}}
	svc := NewMarketService(quotes, &fakeFeed{})

	series := svc.FetchHistory(context.Background(), "AAPL", model.Range1mo)
	if len(series.Points) != 2 || series.Points[1].Close != 101 {
		t.Errorf("series = %+v", series)
	}
	if quotes.ranges[0] != model.Range1mo {
		t.Errorf("range = %q, want %q", quotes.ranges[0], model.Range1mo)
	}

	if s := svc.FetchHistory(context.Background(), "NEW", model.Range1mo); !s.Empty() {
		t.Errorf("empty history: series = %+v, want empty", s)
	}
	if s := svc.FetchHistory(context.Background(), "BAD", model.Range1mo); !s.Empty() || s.Symbol != "BAD" {
		t.Errorf("failed history: series = %+v, want empty series for BAD", s)
	}
}

func TestFetchWatchlistDropsEmptyHistory(t *testing.T) {
	quotes := &fakeQuotes{history: map[string][]model.Candle{
		"AAPL": {{Open: 100, Close: 110, Volume: 2000}},
		"HALT": {},
	}}
	got := NewMarketService(quotes, &fakeFeed{}).FetchWatchlist(context.Background(), []string{"AAPL", "HALT", "BAD"})
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].ChangePercent != 10 || got[0].Price != 110 || got[0].Volume != 2000 {
		t.Errorf("entry = %+v", got[0])
	}
	for _, r := range quotes.ranges {
		if r != model.Range1d {
			t.Errorf("watchlist range = %q, want %q", r, model.Range1d)
		}
	}
}

func TestSymbolServiceReload(t *testing.T) {
	dir := t.TempDir()
	tickers := filepath.Join(dir, "ticker.txt")
	if err := os.WriteFile(tickers, []byte("AAPL\n\nMSFT\n  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.NewConfigManager(&model.EnvConfig{
		TickerFile:    tickers,
		WatchlistFile: filepath.Join(dir, "missing.txt"),
	})

	svc := NewSymbolService(cfg)
	if got := svc.Tickers(); !reflect.DeepEqual(got, []string{"AAPL", "MSFT"}) {
		t.Errorf("Tickers() = %v, want [AAPL MSFT]", got)
	}
	if got := svc.Watchlist(); len(got) != 0 {
		t.Errorf("Watchlist() = %v, want empty", got)
	}

	got := svc.Tickers()
	got[0] = "MUTATED"
	if svc.Tickers()[0] != "AAPL" {
		t.Error("Tickers() returned the stored slice, want a copy")
	}

	if err := os.WriteFile(tickers, []byte("TSLA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	svc.Reload()
	if got := svc.Tickers(); !reflect.DeepEqual(got, []string{"TSLA"}) {
		t.Errorf("after Reload Tickers() = %v, want [TSLA]", got)
	}
}
