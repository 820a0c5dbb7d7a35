package main

import (
	"context"
	"log"
	"os"
	"time"

	"tasknotes-service/internal/config"
	"tasknotes-service/internal/server"

	gfshutdown "github.com/gelmium/graceful-shutdown"
)

const configFile = "config.yml"

func main() {
	appConfig, err := config.InitConfig[config.Config](configFile)
	if err != nil {
		log.Fatalf("Error initializing config: %v", err)
	}
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if appConfig.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}

	srv, err := server.NewServer(appConfig)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx := context.Background()
	if err := srv.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	errChan := srv.Start()
	go func() {
		if err := <-errChan; err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Printf("Task & Notes service started (gRPC %s, HTTP %s, storage %s)",
		srv.GRPCAddr, srv.HTTPAddr, appConfig.Storage.Driver)

	shutdownTimeout := time.Duration(appConfig.Server.GracefulShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	// Ждем SIGINT/SIGTERM и останавливаем сервер
	wait := gfshutdown.GracefulShutdown(ctx, shutdownTimeout, map[string]gfshutdown.Operation{
		"server": func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	exitCode := <-wait
	if exitCode != 0 {
		log.Printf("Shutdown completed with exit code: %d", exitCode)
		os.Exit(exitCode)
	}
	log.Println("Task & Notes service stopped")
}
