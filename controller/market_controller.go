package controller

import (
	"context"
	"net/http"

	"stockdash/dashboard"
	"stockdash/model"
	"stockdash/service"
	"stockdash/validator"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

type MarketController struct {
	market  service.MarketService
	symbols service.SymbolService
	dash    *dashboard.Dashboard
}

func NewMarketController(m service.MarketService, s service.SymbolService, d *dashboard.Dashboard) *MarketController {
	return &MarketController{market: m, symbols: s, dash: d}
}

func (ctrl *MarketController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quotes",
		Method:      http.MethodGet,
		Path:        "/api/quotes",
		Summary:     "Ticker Quotes",
		Description: "Current price and change for every symbol in the ticker list",
		Tags:        []string{"Market"},
	}, ctrl.getQuotes)

	huma.Register(api, huma.Operation{
		OperationID: "get-gainers",
		Method:      http.MethodGet,
		Path:        "/api/gainers",
		Summary:     "Top Gainers",
		Tags:        []string{"Market"},
	}, ctrl.getGainers)

	huma.Register(api, huma.Operation{
		OperationID: "get-news",
		Method:      http.MethodGet,
		Path:        "/api/news",
		Summary:     "Latest Articles",
		Tags:        []string{"Market"},
	}, ctrl.getNews)

	huma.Register(api, huma.Operation{
		OperationID: "get-watchlist",
		Method:      http.MethodGet,
		Path:        "/api/watchlist",
		Summary:     "Watchlist",
		Description: "Latest close, intraday change and volume for every watchlist symbol",
		Tags:        []string{"Market"},
	}, ctrl.getWatchlist)

	huma.Register(api, huma.Operation{
		OperationID: "get-history",
		Method:      http.MethodGet,
		Path:        "/api/history/{symbol}",
		Summary:     "Price History",
		Description: "Daily closing prices for a symbol over the requested range",
		Tags:        []string{"Market"},
	}, ctrl.getHistory)

	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/dashboard",
		Summary:     "Dashboard Snapshot",
		Description: "Runs every page load region and returns their view data keyed by region",
		Tags:        []string{"Dashboard"},
	}, ctrl.getDashboard)

	huma.Register(api, huma.Operation{
		OperationID: "reload-symbols",
		Method:      http.MethodPost,
		Path:        "/api/symbols/reload",
		Summary:     "Reload Symbol Lists",
		Description: "Re-reads the ticker and watchlist files from disk",
		Tags:        []string{"Dashboard"},
	}, ctrl.reloadSymbols)
}

func (ctrl *MarketController) getQuotes(ctx context.Context, _ *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.market.FetchQuotes(ctx, ctrl.symbols.Tickers()), "Fetch Success"), nil
}

func (ctrl *MarketController) getGainers(ctx context.Context, _ *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.market.FetchTopGainers(ctx), "Fetch Success"), nil
}

func (ctrl *MarketController) getNews(ctx context.Context, _ *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.market.FetchNews(ctx), "Fetch Success"), nil
}

func (ctrl *MarketController) getWatchlist(ctx context.Context, _ *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.market.FetchWatchlist(ctx, ctrl.symbols.Watchlist()), "Fetch Success"), nil
}

func (ctrl *MarketController) getHistory(ctx context.Context, input *model.HistoryInput) (*model.DefaultResponse, error) {
	if issues := validator.ValidateHistoryInput(input); issues != nil {
		log.Debug().Strs("issues", issues).Msg("Rejected history request")
		details := make([]error, 0, len(issues))
		for _, msg := range issues {
			details = append(details, &huma.ErrorDetail{Message: msg})
		}
		return nil, huma.Error422UnprocessableEntity("Invalid history request", details...)
	}

	series := ctrl.market.FetchHistory(ctx, input.Symbol, model.YahooTimeRange(input.Range))
	if series.Empty() {
		return NewErrorResponse("No history available", "no price history for "+input.Symbol+" over "+input.Range), nil
	}
	return NewResponse(series, "Fetch Success"), nil
}

func (ctrl *MarketController) getDashboard(ctx context.Context, _ *struct{}) (*model.DefaultResponse, error) {
	frags := ctrl.dash.DispatchAll(ctx, dashboard.TriggerLoad)
	data := make(map[string]any, len(frags))
	for region, frag := range frags {
		data[region] = frag.Data
	}
	return NewResponse(data, "Fetch Success"), nil
}

func (ctrl *MarketController) reloadSymbols(_ context.Context, _ *struct{}) (*model.ReloadSymbolsResponse, error) {
	ctrl.symbols.Reload()
	return &model.ReloadSymbolsResponse{Body: model.Response{
		Success: true,
		Message: "Symbol lists reloaded",
		Data: map[string]int{
			"tickers":   len(ctrl.symbols.Tickers()),
			"watchlist": len(ctrl.symbols.Watchlist()),
		},
	}}, nil
}
