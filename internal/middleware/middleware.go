package api_middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/andromedanaut/marketcap-bot/internal/commons"
	"github.com/andromedanaut/marketcap-bot/internal/logger"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type contextKey string

const RequestIDContextKey contextKey = "request_id"

var limiter = rate.NewLimiter(rate.Every(time.Second), commons.AllowedRPS)

func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.Errorf("rate limit exceeded for IP: %s", r.RemoteAddr)
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware tags every request with a uuid, echoed in the
// X-Request-ID response header.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), RequestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
