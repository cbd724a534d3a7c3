package config

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"stockdash/model"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort          = "8050"
	DefaultTickerFile    = "ticker.txt"
	DefaultWatchlistFile = "watchlist.txt"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads .env, then the optional YAML file named by
// DASHBOARD_CONFIG, then applies environment overrides.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	envCfg := model.EnvConfig{
		Port:          DefaultPort,
		Environment:   "development",
		LogLevel:      "info",
		TickerFile:    DefaultTickerFile,
		WatchlistFile: DefaultWatchlistFile,
	}

	if path := os.Getenv("DASHBOARD_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &envCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	applyEnvOverrides(&envCfg)

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}

func applyEnvOverrides(cfg *model.EnvConfig) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TICKER_FILE"); v != "" {
		cfg.TickerFile = v
	}
	if v := os.Getenv("WATCHLIST_FILE"); v != "" {
		cfg.WatchlistFile = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.YahooBaseURL = v
	}
	if v := os.Getenv("FMP_BASE_URL"); v != "" {
		cfg.FmpBaseURL = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	cfg.FmpApiKey = os.Getenv("FMP_API_KEY")
}

func (s *SystemConfigs) IsProduction() bool {
	return s.Config.Environment == "production"
}

type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.EnvConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.EnvConfig {
	return cm.value.Load().(*model.EnvConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.EnvConfig) {
	cm.value.Store(newCfg)
}
