package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
)

const (
	defaultRPS   = 100
	defaultBurst = 10
)

// errorBody повторяет формат ошибок gateway ({"code", "message"})
type errorBody struct {
	Code    codes.Code `json:"code"`
	Message string     `json:"message"`
}

// RateLimit ограничивает количество запросов.
// rps - запросов в секунду, burst - размер кратковременного всплеска.
// Превышение лимита отвечает как gRPC ResourceExhausted.
func RateLimit(next http.Handler, rps int, burst int) http.Handler {
	if rps <= 0 {
		rps = defaultRPS
	}
	if burst <= 0 {
		burst = defaultBurst
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			log.Printf("[HTTP] Rate limit exceeded for %s from %s", r.URL.Path, r.RemoteAddr)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(runtime.HTTPStatusFromCode(codes.ResourceExhausted))
			_ = json.NewEncoder(w).Encode(errorBody{Code: codes.ResourceExhausted, Message: "too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
