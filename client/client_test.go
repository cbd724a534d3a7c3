package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockdash/customerrors"
	"stockdash/model"
)

const chartJSON = `{"chart":{"result":[{
  "meta":{"symbol":"AAPL","currency":"USD","regularMarketPrice":110.5,"chartPreviousClose":100.25},
  "timestamp":[1759411800,1759498200,1759757400],
  "indicators":{"quote":[{
    "open":[100,null,105],
    "high":[112,null,108],
    "low":[99,null,104],
    "close":[110,null,106.5],
    "volume":[1000,null,3000]
  }]}
}],"error":null}}`

func newYahooServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var last http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = *r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &last
}

func TestYahooGetQuote(t *testing.T) {
	srv, last := newYahooServer(t, http.StatusOK, chartJSON)

	meta, err := NewYahooClient(srv.URL).GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GetQuote() error: %v", err)
	}
	if meta.RegularMarketPrice == nil || *meta.RegularMarketPrice != 110.5 {
		t.Errorf("RegularMarketPrice = %v, want 110.5", meta.RegularMarketPrice)
	}
	if meta.PreviousClose != nil {
		t.Errorf("PreviousClose = %v, want nil", *meta.PreviousClose)
	}
	if last.URL.Path != "/AAPL" {
		t.Errorf("path = %q, want /AAPL", last.URL.Path)
	}
	if got := last.URL.Query().Get("range"); got != "1d" {
		t.Errorf("range = %q, want 1d", got)
	}
}

func TestYahooGetHistoricalDataSkipsNullBars(t *testing.T) {
	srv, last := newYahooServer(t, http.StatusOK, chartJSON)

	candles, err := NewYahooClient(srv.URL).GetHistoricalData(context.Background(), "AAPL", model.Range1mo)
	if err != nil {
		t.Fatalf("GetHistoricalData() error: %v", err)
	}
	if len(candles) != 2 {
		t.Fatalf("got %d candles, want 2", len(candles))
	}
	if candles[1].Close != 106.5 || candles[1].Open != 105 || candles[1].Volume != 3000 {
		t.Errorf("candles[1] = %+v", candles[1])
	}
	if !candles[0].Date.Before(candles[1].Date) {
		t.Error("candles not ordered oldest first")
	}
	if got := last.URL.Query().Get("range"); got != "1mo" {
		t.Errorf("range = %q, want 1mo", got)
	}
}

func TestYahooErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`},
		{"provider error", http.StatusOK, `{"chart":{"result":null,"error":{"code":"Bad","description":"bad symbol"}}}`},
		{"no result", http.StatusOK, `{"chart":{"result":[],"error":null}}`},
		{"garbage", http.StatusOK, `not json`},
	}
	for _, tt := range tests {
		srv, _ := newYahooServer(t, tt.status, tt.body)
		if _, err := NewYahooClient(srv.URL).GetQuote(context.Background(), "ZZZZ"); err == nil {
			t.Errorf("%s: GetQuote() error = nil, want error", tt.name)
		}
	}
}

func TestCandlesFromResultEmpty(t *testing.T) {
	got := CandlesFromResult("X", &model.Result{})
	if got == nil || len(got) != 0 {
		t.Errorf("CandlesFromResult() = %v, want empty slice", got)
	}
}

func newFmpServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"Error Message":"Invalid API KEY"}`))
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFmpGetGainersNormalisesChange(t *testing.T) {
	srv := newFmpServer(t, map[string]string{
		gainersPath: `[
			{"symbol":"AAA","name":"Alpha","price":12.5,"changesPercentage":15.25},
			{"symbol":"BBB","name":"Beta","price":"3.10","changesPercentage":"+4.52%"}
		]`,
	})

	gainers, err := NewFmpClient(srv.URL, "key").GetGainers(context.Background())
	if err != nil {
		t.Fatalf("GetGainers() error: %v", err)
	}
	if len(gainers) != 2 {
		t.Fatalf("got %d gainers, want 2", len(gainers))
	}
	if gainers[0].ChangePercent != 15.25 || gainers[0].CompanyName != "Alpha" {
		t.Errorf("gainers[0] = %+v", gainers[0])
	}
	if gainers[1].ChangePercent != 4.52 || gainers[1].Price != 3.1 {
		t.Errorf("gainers[1] = %+v", gainers[1])
	}
}

func TestFmpGetGainersRejectsNonFinite(t *testing.T) {
	srv := newFmpServer(t, map[string]string{
		gainersPath: `[{"symbol":"AAA","price":"NaN","changesPercentage":"Infinity"},{"symbol":"BBB","price":1,"changesPercentage":"NaN"}]`,
	})

	gainers, err := NewFmpClient(srv.URL, "key").GetGainers(context.Background())
	if err != nil {
		t.Fatalf("GetGainers() error: %v", err)
	}
	if len(gainers) != 2 {
		t.Fatalf("got %d gainers, want 2", len(gainers))
	}
	for _, g := range gainers {
		if g.ChangePercent != 0 {
			t.Errorf("%s ChangePercent = %v, want 0", g.Symbol, g.ChangePercent)
		}
	}
	if gainers[0].Price != 0 {
		t.Errorf("AAA Price = %v, want 0", gainers[0].Price)
	}
}

func TestFmpGetGainersFailures(t *testing.T) {
	srv := newFmpServer(t, map[string]string{gainersPath: `{"unexpected":"object"}`})

	if _, err := NewFmpClient(srv.URL, "").GetGainers(context.Background()); !errors.Is(err, customerrors.ErrMissingAPIKey) {
		t.Errorf("no key: err = %v, want ErrMissingAPIKey", err)
	}
	if _, err := NewFmpClient(srv.URL, "wrong").GetGainers(context.Background()); !errors.Is(err, customerrors.ErrProviderStatus) {
		t.Errorf("bad key: err = %v, want ErrProviderStatus", err)
	}
	if _, err := NewFmpClient(srv.URL, "key").GetGainers(context.Background()); err == nil {
		t.Error("object body: err = nil, want error")
	}
}

func TestFmpGetArticles(t *testing.T) {
	srv := newFmpServer(t, map[string]string{
		articlesPath: `{"content":[
			{"title":"Chips rally","tickers":"NASDAQ:NVDA","link":"https://fmp/a","date":"2026-10-19 10:00:00"},
			{"title":"Oil slips","tickers":"NYSE:XOM","link":"https://fmp/b"}
		],"pageable":{"pageNumber":0}}`,
	})

	articles, err := NewFmpClient(srv.URL, "key").GetArticles(context.Background(), 0, 5)
	if err != nil {
		t.Fatalf("GetArticles() error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].Title != "Chips rally" || articles[0].RelatedTickers != "NASDAQ:NVDA" || articles[0].Link != "https://fmp/a" {
		t.Errorf("articles[0] = %+v", articles[0])
	}
}

func TestFmpGetArticlesMissingContent(t *testing.T) {
	srv := newFmpServer(t, map[string]string{articlesPath: `{"items":[]}`})
	if _, err := NewFmpClient(srv.URL, "key").GetArticles(context.Background(), 0, 5); err == nil {
		t.Error("GetArticles() error = nil, want error for missing content")
	}
}
