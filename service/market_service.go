package service

import (
	"context"

	"stockdash/model"
	"stockdash/view"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// NewsPageSize is how many articles the news tape asks for.
const NewsPageSize = 5

// QuoteProvider supplies per-symbol quotes and daily history.
type QuoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (*model.YahooMeta, error)
	GetHistoricalData(ctx context.Context, symbol string, timeRange model.YahooTimeRange) ([]model.Candle, error)
}

// MarketFeedProvider supplies the market-wide gainers ranking and articles.
type MarketFeedProvider interface {
	GetGainers(ctx context.Context) ([]model.FmpGainer, error)
	GetArticles(ctx context.Context, page, size int) ([]model.FmpArticle, error)
}

// MarketService never returns errors: failures are logged and degrade to
// less data.
type MarketService interface {
	FetchQuotes(ctx context.Context, symbols []string) []model.TickerQuote
	FetchTopGainers(ctx context.Context) []model.GainerEntry
	FetchNews(ctx context.Context) []model.NewsItem
	FetchHistory(ctx context.Context, symbol string, timeRange model.YahooTimeRange) model.ChartSeries
	FetchWatchlist(ctx context.Context, symbols []string) []model.WatchlistEntry
}

type MarketServiceImpl struct {
	quotes QuoteProvider
	feed   MarketFeedProvider
}

func NewMarketService(quotes QuoteProvider, feed MarketFeedProvider) MarketService {
	return &MarketServiceImpl{quotes: quotes, feed: feed}
}

// DeriveChange prefers the provider's direct change, then
// current - previousClose, then 0.
func DeriveChange(direct, current, previousClose *float64) float64 {
	if direct != nil {
		return *direct
	}
	if current != nil && previousClose != nil {
		return *current - *previousClose
	}
	return 0
}

func (s *MarketServiceImpl) FetchQuotes(ctx context.Context, symbols []string) []model.TickerQuote {
	result := make([]model.TickerQuote, 0, len(symbols))
	for _, symbol := range symbols {
		meta, err := s.quotes.GetQuote(ctx, symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("Error fetching quote")
			continue
		}

		previous := meta.PreviousClose
		if previous == nil {
			previous = meta.ChartPreviousClose
		}
		result = append(result, model.TickerQuote{
			Symbol:       symbol,
			CurrentPrice: meta.RegularMarketPrice,
			Change:       DeriveChange(meta.RegularMarketChange, meta.RegularMarketPrice, previous),
		})
	}
	return result
}

func (s *MarketServiceImpl) FetchTopGainers(ctx context.Context) []model.GainerEntry {
	gainers, err := s.feed.GetGainers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching top gainers")
		return []model.GainerEntry{}
	}

	result := make([]model.GainerEntry, 0, len(gainers))
	for _, g := range gainers {
		var entry model.GainerEntry
		if err := copier.Copy(&entry, &g); err != nil {
			log.Warn().Err(err).Str("symbol", g.Symbol).Msg("Skipping malformed gainer")
			continue
		}
		if entry.Symbol == "" {
			entry.Symbol = model.Unavailable
		}
		if entry.CompanyName == "" {
			entry.CompanyName = model.UnknownCompany
		}
		result = append(result, entry)
	}
	return result
}

func (s *MarketServiceImpl) FetchNews(ctx context.Context) []model.NewsItem {
	articles, err := s.feed.GetArticles(ctx, 0, NewsPageSize)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching news")
		return []model.NewsItem{}
	}

	result := make([]model.NewsItem, 0, len(articles))
	for _, a := range articles {
		var item model.NewsItem
		if err := copier.Copy(&item, &a); err != nil {
			log.Warn().Err(err).Msg("Skipping malformed article")
			continue
		}
		if item.Title == "" {
			item.Title = model.NoTitle
		}
		if item.Link == "" {
			item.Link = model.NoLink
		}
		result = append(result, item)
	}
	log.Debug().Int("count", len(result)).Msg("News items fetched")
	return result
}

func (s *MarketServiceImpl) FetchHistory(ctx context.Context, symbol string, timeRange model.YahooTimeRange) model.ChartSeries {
	series := model.ChartSeries{Symbol: symbol, Points: []model.ChartPoint{}}

	candles, err := s.quotes.GetHistoricalData(ctx, symbol, timeRange)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Str("range", string(timeRange)).Msg("Error fetching history")
		return series
	}

	for _, c := range candles {
		series.Points = append(series.Points, model.ChartPoint{Date: c.Date, Close: c.Close})
	}
	return series
}

func (s *MarketServiceImpl) FetchWatchlist(ctx context.Context, symbols []string) []model.WatchlistEntry {
	result := make([]model.WatchlistEntry, 0, len(symbols))
	for _, symbol := range symbols {
		candles, err := s.quotes.GetHistoricalData(ctx, symbol, model.Range1d)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("Error fetching watchlist history")
			continue
		}
		if entry, ok := view.WatchlistEntryFromHistory(symbol, candles); ok {
			result = append(result, entry)
		}
	}
	return result
}
