package routes

import (
	"stockdash/client"
	"stockdash/config"
	"stockdash/controller"
	"stockdash/dashboard"
	"stockdash/middleware"
	"stockdash/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the provider clients and services from cfg and
// returns the ready engine.
func SetupRouter(cfg *config.ConfigManager) *gin.Engine {
	envCfg := cfg.GetConfig()

	// --- 1. Clients ---
	yahooClient := client.NewYahooClient(envCfg.YahooBaseURL)
	fmpClient := client.NewFmpClient(envCfg.FmpBaseURL, envCfg.FmpApiKey)

	// --- 2. Services ---
	marketSvc := service.NewMarketService(yahooClient, fmpClient)
	symbolSvc := service.NewSymbolService(cfg)

	return NewRouter(cfg, marketSvc, symbolSvc)
}

func NewRouter(cfg *config.ConfigManager, marketSvc service.MarketService, symbolSvc service.SymbolService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware, middleware.ZerologMiddleware(), middleware.CORS(cfg))
	r.SetHTMLTemplate(dashboard.Templates())

	dash := dashboard.NewDashboard(marketSvc, symbolSvc)

	api := humagin.New(r, huma.DefaultConfig("Stock Dashboard API", "1.0.0"))

	// --- 3. Routes & Controllers ---
	controller.NewDashboardController(dash).RegisterRoutes(r)
	controller.NewMarketController(marketSvc, symbolSvc, dash).RegisterRoutes(api)

	apiGroup := r.Group("/api")
	{
		controller.NewHealthController(symbolSvc).RegisterRoutes(apiGroup)
	}

	return r
}
