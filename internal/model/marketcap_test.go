package model_test

import (
	"testing"

	"github.com/andromedanaut/marketcap-bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMarketCap_Formatted(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Zero", 0, "$0"},
		{"Under a thousand", 999, "$999"},
		{"Exactly a thousand", 1000, "$1,000"},
		{"Rounds down", 1234567.4, "$1,234,567"},
		{"Rounds up", 1234567.5, "$1,234,568"},
		{"Reference value", 120000000 * 0.0823, "$9,876,000"},
		{"Billions", 1987654321.09, "$1,987,654,321"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := model.MarketCap{Value: tt.value}
			assert.Equal(t, tt.expected, mc.Formatted())
		})
	}
}
