package server

import (
	"github.com/andromedanaut/marketcap-bot/internal/handler"
	api_middleware "github.com/andromedanaut/marketcap-bot/internal/middleware"
	"github.com/andromedanaut/marketcap-bot/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) registerRoutes(marketCapService service.MarketCapServiceInterface) {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(api_middleware.RequestIDMiddleware)

	router.Get("/healthz", handler.HandlerReadiness)

	marketCapHandler := handler.NewMarketCapHandler(marketCapService)
	router.With(api_middleware.RateLimitMiddleware).Get("/marketcap", marketCapHandler.GetMarketCap)

	s.router = router
}
