package commons

import "time"

const (
	FetcherMaxAttempts    = 3
	FetcherBaseDelay      = 500 * time.Millisecond
	FetcherMaxDelay       = 30 * time.Second
	FetcherAttemptTimeout = 10 * time.Second

	// Circulating supply moves slowly, the spot price does not.
	SupplyCacheTTL = 24 * time.Hour
	PriceCacheTTL  = 5 * time.Minute

	DefaultSupplyURL  = "https://api.andromedaprotocol.io/v1/chain/circulating_supply.json"
	DefaultPriceURL   = "https://mexc.com/open/api/v2/market/ticker"
	DefaultPairSymbol = "ANDR_USDT"

	// The only failure text end users ever see.
	FetchFailureMessage = "Failed to fetch data, please try again later."

	AllowedRPS         = 10
	ServerIdleTimeout  = time.Minute
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
)
