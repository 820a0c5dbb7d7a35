package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"tasknotes-service/internal/api/http/middleware"
	"tasknotes-service/internal/config"
	todov1 "tasknotes-service/pkg/api/todo/v1"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/cors"
	"github.com/tmc/grpc-websocket-proxy/wsproxy"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Setup подключается к gRPC серверу и запускает HTTP Gateway.
// Сервер останавливается при отмене ctx.
func Setup(ctx context.Context, grpcAddr string, httpAddr string, cfg *config.Config) error {
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial gRPC server %s: %w", grpcAddr, err)
	}
	defer conn.Close()

	handler, err := NewHandler(conn, cfg.Gateway)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadTimeout:       seconds(cfg.Server.HTTPReadTimeout),
		ReadHeaderTimeout: seconds(cfg.Server.HTTPReadHeaderTimeout),
		WriteTimeout:      seconds(cfg.Server.HTTPWriteTimeout),
		IdleTimeout:       seconds(cfg.Server.HTTPIdleTimeout),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), seconds(cfg.Server.GracefulShutdownTimeout))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP Gateway shutdown error: %v", err)
		}
	}()

	log.Printf("HTTP Gateway server listening on %s", httpAddr)
	log.Printf("CORS enabled for origins: %s", cfg.Gateway.CORSAllowedOrigins)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("HTTP Gateway stopped")
	return nil
}

// NewHandler собирает HTTP обработчик gateway поверх gRPC соединения.
// Middleware применяются снаружи внутрь: WebSocket Proxy → CORS → Logging → Rate Limiting → маршруты.
func NewHandler(conn grpc.ClientConnInterface, cfg *config.ConfigGateway) (http.Handler, error) {
	gwMux := runtime.NewServeMux()
	if err := registerRoutes(gwMux, todov1.NewTodoServiceClient(conn)); err != nil {
		return nil, fmt.Errorf("failed to register gateway: %w", err)
	}

	var handler http.Handler = gwMux
	handler = middleware.RateLimit(handler, cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler = middleware.Logging(handler)
	handler = setupCORS(cfg).Handler(handler)
	// WebSocket proxy должен быть самым внешним, чтобы корректно обрабатывать upgrade
	handler = wsproxy.WebsocketProxy(handler)

	return handler, nil
}

// setupCORS настраивает CORS middleware используя конфигурацию
func setupCORS(cfg *config.ConfigGateway) *cors.Cors {
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = 86400 // 24 часа
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Requested-With"},
		MaxAge:         maxAge,
	})
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
