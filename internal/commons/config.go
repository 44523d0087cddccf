package commons

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	TelegramToken string
	SupplyURL     string
	PriceURL      string
	PairSymbol    string
	ServerPort    uint16
}

const (
	decimalBase = 10
	bitSize     = 16
)

func LoadConfig() (Config, error) {
	var config Config
	var errors []string

	config.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if config.TelegramToken == "" {
		errors = append(errors, "TELEGRAM_TOKEN is not set")
	}

	config.SupplyURL = os.Getenv("SUPPLY_URL")
	if config.SupplyURL == "" {
		config.SupplyURL = DefaultSupplyURL
	}

	config.PriceURL = os.Getenv("PRICE_URL")
	if config.PriceURL == "" {
		config.PriceURL = DefaultPriceURL
	}

	config.PairSymbol = os.Getenv("PAIR_SYMBOL")
	if config.PairSymbol == "" {
		config.PairSymbol = DefaultPairSymbol
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		errors = append(errors, "SERVER_PORT is not set")
	} else {
		parsedServerPort, err := strconv.ParseUint(serverPort, decimalBase, bitSize)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid SERVER_PORT: %s", err))
		} else {
			config.ServerPort = uint16(parsedServerPort)
		}
	}

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Println("Configuration Error:", err)
		}
		return Config{}, fmt.Errorf("configuration errors occurred")
	}

	return config, nil
}
