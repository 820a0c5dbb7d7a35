package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"strconv"

	"tasknotes-service/internal/api/gateway"
	grpcapi "tasknotes-service/internal/api/grpc"
	"tasknotes-service/internal/config"
	"tasknotes-service/internal/model"
	"tasknotes-service/internal/repository"
	"tasknotes-service/internal/service/events"
	notesService "tasknotes-service/internal/service/notes"
	tasksService "tasknotes-service/internal/service/tasks"
	"tasknotes-service/internal/storage"

	"google.golang.org/grpc"
)

const (
	defaultPortGRPC = 50051
	defaultPortHTTP = 8080
)

// Server представляет сервер приложения с gRPC и HTTP Gateway
type Server struct {
	// HTTP компоненты
	HTTPAddr      string
	GatewayCtx    context.Context
	GatewayCancel context.CancelFunc

	// gRPC компоненты
	GRPCServer *grpc.Server
	GRPCAddr   string
	Listener   net.Listener
	Handler    *grpcapi.Handler

	Storage storage.Storage
	Config  *config.Config
}

// NewServer создает сервер и открывает gRPC listener
func NewServer(cfg *config.Config) (*Server, error) {
	grpcPort := cfg.Server.PortGRPC
	httpPort := cfg.Server.PortHTTP

	if grpcPort == 0 {
		grpcPort = defaultPortGRPC
		log.Printf("Warning: port_grpc is 0, using default %d", grpcPort)
	}
	if httpPort == 0 {
		httpPort = defaultPortHTTP
		log.Printf("Warning: port_http is 0, using default %d", httpPort)
	}

	grpcAddr := "0.0.0.0:" + strconv.Itoa(grpcPort)
	httpAddr := "0.0.0.0:" + strconv.Itoa(httpPort)

	listener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", grpcAddr, err)
	}

	gatewayCtx, gatewayCancel := context.WithCancel(context.Background())

	return &Server{
		HTTPAddr:      httpAddr,
		GatewayCtx:    gatewayCtx,
		GatewayCancel: gatewayCancel,
		GRPCAddr:      grpcAddr,
		Listener:      listener,
		Config:        cfg,
	}, nil
}

// Initialize собирает компоненты: Storage → Collection → Service → Handler.
// Коллекции загружаются из хранилища до начала обслуживания запросов.
func (s *Server) Initialize(ctx context.Context) error {
	store, err := OpenStorage(ctx, s.Config.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	s.Storage = store

	broker := events.NewBroker()

	taskSvc := tasksService.NewTaskService(repository.NewJSONCollection[model.Task](store, repository.TasksKey), broker)
	taskSvc.Load(ctx)
	log.Printf("Initialized task service (%d tasks)", len(taskSvc.List(ctx)))

	noteSvc := notesService.NewNoteService(repository.NewJSONCollection[model.Note](store, repository.NotesKey), broker)
	noteSvc.Load(ctx)
	log.Printf("Initialized note service (%d notes)", len(noteSvc.List(ctx)))

	s.Handler = grpcapi.NewHandler(taskSvc, noteSvc, broker)
	s.GRPCServer = grpcapi.NewServer(s.Handler, s.Config.IsDebug())

	return nil
}

// Start запускает gRPC и HTTP Gateway серверы в горутинах
// Возвращает канал ошибок для отслеживания ошибок серверов
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 2)

	go func() {
		log.Printf("gRPC server listening on %s", s.GRPCAddr)
		if err := s.GRPCServer.Serve(s.Listener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// Gateway подключается к gRPC серверу через loopback
	_, port, _ := net.SplitHostPort(s.GRPCAddr)
	grpcAddr := net.JoinHostPort("localhost", port)

	go func() {
		if err := gateway.Setup(s.GatewayCtx, grpcAddr, s.HTTPAddr, s.Config); err != nil {
			errChan <- fmt.Errorf("HTTP Gateway error: %w", err)
		}
	}()

	return errChan
}

// Shutdown выполняет graceful shutdown: стримы событий, Gateway, gRPC, хранилище
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Starting graceful shutdown...")

	// Подписки на события держат стримы открытыми, GracefulStop без этого не завершится
	if s.Handler != nil {
		s.Handler.Close()
	}
	s.GatewayCancel()

	var shutdownErr error
	if s.GRPCServer != nil {
		stopped := make(chan struct{})
		go func() {
			s.GRPCServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
			log.Println("gRPC server stopped gracefully")
		case <-ctx.Done():
			log.Println("Graceful shutdown timeout, forcing stop...")
			s.GRPCServer.Stop()
			shutdownErr = ctx.Err()
		}
	}

	if s.Storage != nil {
		if err := s.Storage.Close(); err != nil {
			log.Printf("[storage] close error: %v", err)
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	return shutdownErr
}
