package customerrors

import "errors"

var (
	ErrMissingAPIKey    = errors.New("provider api key is not configured")
	ErrProviderStatus   = errors.New("provider returned an unsuccessful status")
	ErrQuoteUnavailable = errors.New("quote unavailable")
	ErrUnknownRegion    = errors.New("unknown region")
)
