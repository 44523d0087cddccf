package service

import (
	"context"

	"github.com/andromedanaut/marketcap-bot/internal/model"
)

type MarketCapServiceInterface interface {
	MarketCap(ctx context.Context) (model.MarketCap, error)
}
