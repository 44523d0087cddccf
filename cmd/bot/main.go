package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/andromedanaut/marketcap-bot/internal/bot"
	"github.com/andromedanaut/marketcap-bot/internal/cache"
	"github.com/andromedanaut/marketcap-bot/internal/commons"
	"github.com/andromedanaut/marketcap-bot/internal/fetcher"
	"github.com/andromedanaut/marketcap-bot/internal/logger"
	"github.com/andromedanaut/marketcap-bot/internal/provider"
	"github.com/andromedanaut/marketcap-bot/internal/server"
	"github.com/andromedanaut/marketcap-bot/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load(".env")
	config, err := commons.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client := fetcher.NewClient()
	supplyProvider := provider.NewSupplyProvider(client, cache.NewMemoryCache(), config.SupplyURL)
	priceProvider := provider.NewPriceProvider(client, cache.NewMemoryCache(), config.PriceURL, config.PairSymbol)
	marketCapService := service.NewMarketCapService(supplyProvider, priceProvider)

	b, err := bot.New(config.TelegramToken, marketCapService)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	srv := server.NewServer(config, marketCapService)
	go func() {
		if err := srv.Start(ctx); err != nil {
			logger.Errorf("server stopped: %v", err)
		}
	}()

	b.Start(ctx)
}
