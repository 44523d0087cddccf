package handler

import (
	"net/http"

	"github.com/andromedanaut/marketcap-bot/internal/commons"
	"github.com/andromedanaut/marketcap-bot/internal/service"
)

type MarketCapHandler struct {
	marketCapService service.MarketCapServiceInterface
}

func NewMarketCapHandler(marketCapService service.MarketCapServiceInterface) *MarketCapHandler {
	return &MarketCapHandler{
		marketCapService: marketCapService,
	}
}

func (h *MarketCapHandler) GetMarketCap(w http.ResponseWriter, r *http.Request) {
	mc, err := h.marketCapService.MarketCap(r.Context())
	if err != nil {
		commons.RespondWithError(w, http.StatusServiceUnavailable, commons.FetchFailureMessage)
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"market_cap":         mc.Formatted(),
		"circulating_supply": mc.Supply,
		"price":              mc.Price,
		"computed_at":        mc.ComputedAt,
	})
}
