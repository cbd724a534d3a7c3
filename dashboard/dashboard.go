package dashboard

import (
	"context"
	"sync/atomic"
	"time"

	"stockdash/model"
	"stockdash/service"
	"stockdash/view"

	"github.com/rs/zerolog/log"
)

const (
	// ChartRange is the lookback used when a symbol button is clicked.
	ChartRange = model.Range1mo
	// TickerRefresh is the timer trigger period.
	TickerRefresh = 60 * time.Second
)

// PageData feeds the page template.
type PageData struct {
	RefreshMillis int64
	LoadRegions   []string
}

// Dashboard wires the market and symbol services into the dispatch table.
type Dashboard struct {
	*Dispatcher

	market  service.MarketService
	symbols service.SymbolService

	// tickerCount is the item count of the most recent ticker load.
	tickerCount atomic.Int64
}

func NewDashboard(market service.MarketService, symbols service.SymbolService) *Dashboard {
	d := &Dashboard{
		Dispatcher: NewDispatcher(),
		market:     market,
		symbols:    symbols,
	}

	d.Register(TriggerLoad, RegionTicker, d.loadTicker)
	d.Register(TriggerLoad, RegionNews, d.loadNews)
	d.Register(TriggerLoad, RegionWatchlist, d.loadWatchlist)
	d.Register(TriggerLoad, RegionGainers, d.loadGainers)
	d.Register(TriggerTimer, RegionTickerStyle, d.tickTickerStyle)
	d.Register(TriggerClick, RegionChart, d.clickChart)
	return d
}

func (d *Dashboard) Page() PageData {
	return PageData{
		RefreshMillis: TickerRefresh.Milliseconds(),
		LoadRegions:   d.Regions(TriggerLoad),
	}
}

func (d *Dashboard) TickerCount() int {
	return int(d.tickerCount.Load())
}

func (d *Dashboard) loadTicker(ctx context.Context, ev Event) Fragment {
	quotes := d.market.FetchQuotes(ctx, d.symbols.Tickers())
	d.tickerCount.Store(int64(len(quotes)))
	return Fragment{Region: ev.Region, Template: "ticker.html", Data: view.BuildTickerTape(quotes)}
}

func (d *Dashboard) tickTickerStyle(_ context.Context, ev Event) Fragment {
	return Fragment{Region: ev.Region, Data: view.TickerTapeStyle(d.TickerCount())}
}

func (d *Dashboard) loadNews(ctx context.Context, ev Event) Fragment {
	return Fragment{Region: ev.Region, Template: "news.html", Data: view.BuildNewsTape(d.market.FetchNews(ctx))}
}

func (d *Dashboard) loadWatchlist(ctx context.Context, ev Event) Fragment {
	entries := d.market.FetchWatchlist(ctx, d.symbols.Watchlist())
	return Fragment{Region: ev.Region, Template: "watchlist.html", Data: view.BuildWatchlistRows(entries)}
}

func (d *Dashboard) loadGainers(ctx context.Context, ev Event) Fragment {
	return Fragment{Region: ev.Region, Template: "gainers.html", Data: view.BuildGainerRows(d.market.FetchTopGainers(ctx))}
}

func (d *Dashboard) clickChart(ctx context.Context, ev Event) Fragment {
	series := model.ChartSeries{Points: []model.ChartPoint{}}
	if ev.Symbol != "" {
		series = d.market.FetchHistory(ctx, ev.Symbol, ChartRange)
	} else {
		log.Debug().Msg("Chart requested without a clicked symbol")
	}
	return Fragment{Region: ev.Region, Template: "chart.html", Data: view.BuildChartPanel(series)}
}
