package service

import (
	"context"
	"time"

	"github.com/andromedanaut/marketcap-bot/internal/model"
	"golang.org/x/sync/errgroup"
)

type SupplySource interface {
	CirculatingSupply(ctx context.Context) (float64, error)
}

type PriceSource interface {
	LastPrice(ctx context.Context) (float64, error)
}

// MarketCapService composes the two providers into a market capitalization.
// It does not retry: retries live inside the fetcher, fallbacks inside the
// providers. A failure here is final for the invocation.
type MarketCapService struct {
	supply SupplySource
	price  PriceSource
}

func NewMarketCapService(supply SupplySource, price PriceSource) *MarketCapService {
	return &MarketCapService{
		supply: supply,
		price:  price,
	}
}

// MarketCap fetches supply and price concurrently and multiplies them.
// The two calls are independent; both run to completion so a successful
// fetch still warms its cache even when the other fails. If either value
// is unavailable no partial result is returned.
func (s *MarketCapService) MarketCap(ctx context.Context) (model.MarketCap, error) {
	var supply, price float64
	var g errgroup.Group

	g.Go(func() error {
		v, err := s.supply.CirculatingSupply(ctx)
		supply = v
		return err
	})
	g.Go(func() error {
		v, err := s.price.LastPrice(ctx)
		price = v
		return err
	})

	if err := g.Wait(); err != nil {
		return model.MarketCap{}, err
	}

	return model.MarketCap{
		Supply:     supply,
		Price:      price,
		Value:      supply * price,
		ComputedAt: time.Now().UTC(),
	}, nil
}
