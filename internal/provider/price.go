package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/andromedanaut/marketcap-bot/internal/cache"
	"github.com/andromedanaut/marketcap-bot/internal/commons"
	"github.com/andromedanaut/marketcap-bot/internal/logger"
	"github.com/andromedanaut/marketcap-bot/internal/model"
	"golang.org/x/sync/singleflight"
)

const priceCacheKey = "last_price"

// PriceProvider serves the spot price for a trading pair. The price is
// volatile, so its cache is short-lived: a few minutes of staleness is
// tolerated to smooth over brief outages and rate limits.
type PriceProvider struct {
	fetcher Fetcher
	cache   cache.Cache
	url     string
	symbol  string
	group   singleflight.Group
}

func NewPriceProvider(fetcher Fetcher, cache cache.Cache, url, symbol string) *PriceProvider {
	return &PriceProvider{
		fetcher: fetcher,
		cache:   cache,
		url:     url,
		symbol:  symbol,
	}
}

// LastPrice returns the most recent trade price, or model.ErrUnavailable
// when the fetch fails and no unexpired cached value exists.
func (p *PriceProvider) LastPrice(ctx context.Context) (float64, error) {
	v, err, _ := p.group.Do(priceCacheKey, func() (interface{}, error) {
		return p.refresh(ctx)
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

func (p *PriceProvider) refresh(ctx context.Context) (float64, error) {
	body, err := p.fetcher.Fetch(ctx, p.url, url.Values{"symbol": {p.symbol}})
	if err != nil {
		logger.Errorf("failed to fetch %s price: %v", p.symbol, err)
		return p.fallback(ctx)
	}

	price, err := parseTicker(body)
	if err != nil {
		logger.Errorf("failed to parse %s price from response: %v", p.symbol, err)
		return p.fallback(ctx)
	}

	if err := p.cache.Set(ctx, priceCacheKey, price, commons.PriceCacheTTL); err != nil {
		logger.Errorf("failed to cache %s price: %v", p.symbol, err)
	}
	return price, nil
}

func (p *PriceProvider) fallback(ctx context.Context) (float64, error) {
	price, err := p.cache.Get(ctx, priceCacheKey)
	if err != nil {
		return 0, fmt.Errorf("%s price: %w", p.symbol, model.ErrUnavailable)
	}
	return price, nil
}

type tickerResponse struct {
	Data []struct {
		Symbol string          `json:"symbol"`
		Last   json.RawMessage `json:"last"`
	} `json:"data"`
}

// parseTicker extracts the first record's last trade price. The exchange
// serves "last" as a string, but a bare number is accepted too.
func parseTicker(body []byte) (float64, error) {
	var ticker tickerResponse
	if err := json.Unmarshal(body, &ticker); err != nil {
		return 0, fmt.Errorf("failed to decode ticker response: %w", err)
	}
	if len(ticker.Data) == 0 {
		return 0, fmt.Errorf("ticker response has no records")
	}
	if len(ticker.Data[0].Last) == 0 {
		return 0, fmt.Errorf("ticker record has no last price")
	}
	return parseNumber(ticker.Data[0].Last)
}
