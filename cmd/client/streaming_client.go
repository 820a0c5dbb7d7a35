package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	todov1 "tasknotes-service/pkg/api/todo/v1"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// watchEvents подписывается на события изменения задач и заметок до Ctrl+C.
// WATCH_ENTITY=task|note ограничивает поток одной сущностью.
func watchEvents(ctx context.Context, client todov1.TodoServiceClient) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream, err := client.Subscribe(ctx, &todov1.SubscribeRequest{Entity: os.Getenv("WATCH_ENTITY")})
	if err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}
	log.Println("Subscribed to change events, press Ctrl+C to stop")

	count := 0
	for {
		event, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			log.Println("Stream closed by server")
			break
		}
		if err != nil {
			if status.Code(err) == codes.Canceled {
				break
			}
			log.Fatalf("Error receiving event: %v", err)
		}

		count++
		if event.Id != "" {
			log.Printf("#%d %s %s %s at %s", count, event.Entity, event.Kind, event.Id, event.At.Format("15:04:05"))
		} else {
			log.Printf("#%d %s %s at %s", count, event.Entity, event.Kind, event.At.Format("15:04:05"))
		}
	}

	log.Printf("Received %d event(s)", count)
}
