package main

import (
	"runtime"

	"stockdash/config"
	"stockdash/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if sysConfigs.Config.LogLevel == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if sysConfigs.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if sysConfigs.Config.FmpApiKey == "" {
		log.Warn().Msg("FMP_API_KEY is not set, gainers and news will be empty")
	}

	router := routes.SetupRouter(config.NewConfigManager(sysConfigs.Config))

	port := sysConfigs.Config.Port
	log.Info().Str("port", port).Msg("Server starting")
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
