package model

// --- SYSTEM CONFIG ---
// EnvConfig holds process settings. Secrets are only read from the
// environment, never from the YAML file.
type EnvConfig struct {
	Port           string   `json:"port" yaml:"port"`
	Environment    string   `json:"environment" yaml:"environment"`
	LogLevel       string   `json:"logLevel" yaml:"log_level"`
	TickerFile     string   `json:"tickerFile" yaml:"ticker_file"`
	WatchlistFile  string   `json:"watchlistFile" yaml:"watchlist_file"`
	YahooBaseURL   string   `json:"yahooBaseUrl" yaml:"yahoo_base_url"`
	FmpBaseURL     string   `json:"fmpBaseUrl" yaml:"fmp_base_url"`
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowed_origins"`
	FmpApiKey      string   `json:"-" yaml:"-"`
}
