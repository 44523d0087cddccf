package provider

import (
	"context"
	"fmt"

	"github.com/andromedanaut/marketcap-bot/internal/cache"
	"github.com/andromedanaut/marketcap-bot/internal/commons"
	"github.com/andromedanaut/marketcap-bot/internal/logger"
	"github.com/andromedanaut/marketcap-bot/internal/model"
	"golang.org/x/sync/singleflight"
)

const supplyCacheKey = "circulating_supply"

// SupplyProvider serves the circulating token supply: fetched on demand,
// cached for a day, and served from cache when the endpoint is down.
type SupplyProvider struct {
	fetcher Fetcher
	cache   cache.Cache
	url     string
	group   singleflight.Group
}

func NewSupplyProvider(fetcher Fetcher, cache cache.Cache, url string) *SupplyProvider {
	return &SupplyProvider{
		fetcher: fetcher,
		cache:   cache,
		url:     url,
	}
}

// CirculatingSupply returns the current supply, or model.ErrUnavailable
// when the fetch fails and no unexpired cached value exists. Concurrent
// callers share a single upstream request.
func (p *SupplyProvider) CirculatingSupply(ctx context.Context) (float64, error) {
	v, err, _ := p.group.Do(supplyCacheKey, func() (interface{}, error) {
		return p.refresh(ctx)
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

func (p *SupplyProvider) refresh(ctx context.Context) (float64, error) {
	body, err := p.fetcher.Fetch(ctx, p.url, nil)
	if err != nil {
		logger.Errorf("failed to fetch circulating supply: %v", err)
		return p.fallback(ctx)
	}

	supply, err := parseNumber(body)
	if err != nil {
		logger.Errorf("failed to convert circulating supply to float: %v", err)
		return p.fallback(ctx)
	}

	if err := p.cache.Set(ctx, supplyCacheKey, supply, commons.SupplyCacheTTL); err != nil {
		logger.Errorf("failed to cache circulating supply: %v", err)
	}
	return supply, nil
}

func (p *SupplyProvider) fallback(ctx context.Context) (float64, error) {
	supply, err := p.cache.Get(ctx, supplyCacheKey)
	if err != nil {
		return 0, fmt.Errorf("circulating supply: %w", model.ErrUnavailable)
	}
	return supply, nil
}
