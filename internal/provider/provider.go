package provider

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Fetcher is the transport providers pull raw values through.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, params url.Values) ([]byte, error)
}

// parseNumber accepts a JSON number or a quoted numeric string. Both
// upstream endpoints have served each form at different times.
func parseNumber(raw []byte) (float64, error) {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	return strconv.ParseFloat(s, 64)
}
