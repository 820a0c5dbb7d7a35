package grpc

import (
	"log"
	"time"

	"tasknotes-service/internal/api/grpc/interceptors"
	todov1 "tasknotes-service/pkg/api/todo/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// maxConcurrentStreams ограничивает число одновременных стримов на соединение
const maxConcurrentStreams = 25

// NewServer создает и настраивает gRPC сервер с интерцепторами.
// verbose включает логирование каждого сообщения в стримах.
func NewServer(handler todov1.TodoServiceServer, verbose bool) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.MaxConcurrentStreams(maxConcurrentStreams),
		// Закрываем зависшие соединения и периодически ротируем живые
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     30 * time.Minute,
			MaxConnectionAge:      1 * time.Hour,
			MaxConnectionAgeGrace: 5 * time.Second,
			Time:                  10 * time.Minute,
			Timeout:               20 * time.Second,
		}),
		// Порядок важен: Logger видит и запросы, отклоненные валидацией
		grpc.ChainUnaryInterceptor(
			interceptors.LoggerUnaryInterceptor,
			interceptors.ValidateUnaryInterceptor,
		),
		grpc.ChainStreamInterceptor(
			interceptors.NewStreamInterceptor(verbose),
		),
	)

	todov1.RegisterTodoServiceServer(grpcServer, handler)
	log.Println("Registered TodoService")

	return grpcServer
}
