package interceptors

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggerUnaryInterceptor логирует метод, код ответа и время выполнения запроса
func LoggerUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	if err != nil {
		if st, ok := status.FromError(err); ok {
			log.Printf("[gRPC] %s failed with status %s: %s (duration: %v)",
				info.FullMethod, st.Code(), st.Message(), duration)
		} else {
			log.Printf("[gRPC] %s failed with error: %v (duration: %v)",
				info.FullMethod, err, duration)
		}
	} else {
		log.Printf("[gRPC] %s OK (duration: %v)", info.FullMethod, duration)
	}

	return resp, err
}
