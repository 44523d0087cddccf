package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andromedanaut/marketcap-bot/internal/cache"
	"github.com/andromedanaut/marketcap-bot/internal/fetcher"
	"github.com/andromedanaut/marketcap-bot/internal/model"
	"github.com/andromedanaut/marketcap-bot/internal/provider"
	"github.com/andromedanaut/marketcap-bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyUpstream struct {
	*httptest.Server
	failing atomic.Bool
}

func newFlakyUpstream(body string) *flakyUpstream {
	u := &flakyUpstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u.failing.Load() {
			http.Error(w, "upstream down", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	return u
}

func newPipeline(t *testing.T, supplyURL, priceURL string) *service.MarketCapService {
	t.Helper()
	client := fetcher.NewClient(
		fetcher.WithBaseDelay(time.Millisecond),
		fetcher.WithMaxDelay(5*time.Millisecond),
	)
	supplyProvider := provider.NewSupplyProvider(client, cache.NewMemoryCache(), supplyURL)
	priceProvider := provider.NewPriceProvider(client, cache.NewMemoryCache(), priceURL, "ANDR_USDT")
	return service.NewMarketCapService(supplyProvider, priceProvider)
}

func TestPipeline_FetchComputeAndFallback(t *testing.T) {
	supplyUpstream := newFlakyUpstream(`120000000`)
	defer supplyUpstream.Close()
	priceUpstream := newFlakyUpstream(`{"data":[{"symbol":"ANDR_USDT","last":"0.0823"}]}`)
	defer priceUpstream.Close()

	svc := newPipeline(t, supplyUpstream.URL, priceUpstream.URL)

	mc, err := svc.MarketCap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "$9,876,000", mc.Formatted())

	// Both endpoints go dark; the cached values keep serving.
	supplyUpstream.failing.Store(true)
	priceUpstream.failing.Store(true)

	mc, err = svc.MarketCap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "$9,876,000", mc.Formatted())
}

func TestPipeline_ColdStartFailure(t *testing.T) {
	supplyUpstream := newFlakyUpstream(`120000000`)
	defer supplyUpstream.Close()
	priceUpstream := newFlakyUpstream(`{"data":[{"symbol":"ANDR_USDT","last":"0.0823"}]}`)
	defer priceUpstream.Close()

	supplyUpstream.failing.Store(true)

	svc := newPipeline(t, supplyUpstream.URL, priceUpstream.URL)

	_, err := svc.MarketCap(context.Background())
	assert.ErrorIs(t, err, model.ErrUnavailable)
}
