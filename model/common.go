package model

// Common Response structure for all API calls
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Fetch Success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DefaultResponse is a generic wrapper for Huma responses
type DefaultResponse struct {
	Body Response
}

// --- Huma Structs ---

type HistoryInput struct {
	Symbol string `path:"symbol" doc:"Ticker symbol" example:"AAPL"`
	Range  string `query:"range" default:"1mo" doc:"Lookback period" example:"1mo"`
}

type ReloadSymbolsResponse struct {
	Body Response
}

// ChartClickRequest carries the per-button click counters before and after
// the click that triggered the request.
type ChartClickRequest struct {
	Previous map[string]int `json:"previous"`
	Current  map[string]int `json:"current"`
}
