package service

import (
	"stockdash/config"
	"stockdash/util"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	tickerKey    = "tickers"
	watchlistKey = "watchlist"
)

// SymbolService holds the ticker and watchlist symbol lists loaded from
// disk. Reload re-reads both files using the current config.
type SymbolService interface {
	Tickers() []string
	Watchlist() []string
	Reload()
}

type SymbolServiceImpl struct {
	cfg   *config.ConfigManager
	store *cache.Cache
}

func NewSymbolService(cfg *config.ConfigManager) SymbolService {
	s := &SymbolServiceImpl{
		cfg:   cfg,
		store: cache.New(cache.NoExpiration, 0),
	}
	s.Reload()
	return s
}

func (s *SymbolServiceImpl) Tickers() []string {
	return s.get(tickerKey)
}

func (s *SymbolServiceImpl) Watchlist() []string {
	return s.get(watchlistKey)
}

func (s *SymbolServiceImpl) Reload() {
	cfg := s.cfg.GetConfig()
	tickers := util.LoadSymbolFile(cfg.TickerFile)
	watchlist := util.LoadSymbolFile(cfg.WatchlistFile)

	s.store.Set(tickerKey, tickers, cache.NoExpiration)
	s.store.Set(watchlistKey, watchlist, cache.NoExpiration)

	log.Info().
		Int("tickers", len(tickers)).
		Int("watchlist", len(watchlist)).
		Msg("Symbol lists loaded")
}

// get returns a copy so callers cannot mutate the stored list.
func (s *SymbolServiceImpl) get(key string) []string {
	val, found := s.store.Get(key)
	if !found {
		return []string{}
	}
	list := val.([]string)
	out := make([]string, len(list))
	copy(out, list)
	return out
}
