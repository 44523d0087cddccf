package model

import (
	"math"
	"strconv"
	"time"
)

type MarketCap struct {
	Supply     float64   `json:"circulating_supply"`
	Price      float64   `json:"price"`
	Value      float64   `json:"market_cap"`
	ComputedAt time.Time `json:"computed_at"`
}

// Formatted renders the market cap rounded to the nearest dollar with
// thousands separators, e.g. "$9,876,000".
func (m MarketCap) Formatted() string {
	return "$" + groupThousands(int64(math.Round(m.Value)))
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
