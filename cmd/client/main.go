package main

import (
	"context"
	"log"
	"os"
	"time"

	todov1 "tasknotes-service/pkg/api/todo/v1"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const defaultAddress = "localhost:50051"

func main() {
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}

	log.Printf("Connecting to gRPC server at %s...", address)

	conn, err := grpc.NewClient(
		address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer conn.Close()

	client := todov1.NewTodoServiceClient(conn)

	// Сценарий выбирается переменной окружения TEST_TYPE или первым аргументом
	testType := os.Getenv("TEST_TYPE")
	if testType == "" && len(os.Args) > 1 {
		testType = os.Args[1]
	}

	if testType == "watch" || testType == "stream" {
		watchEvents(context.Background(), client)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch testType {
	case "tasks":
		runTasks(ctx, client)
	case "notes":
		runNotes(ctx, client)
	case "error":
		runErrorHandling(ctx, client)
	default:
		log.Println("Available test types: tasks, notes, error, watch")
		log.Println("Usage: TEST_TYPE=tasks go run ./cmd/client OR go run ./cmd/client tasks")
		runTasks(ctx, client)
	}
}

// runTasks проходит по жизненному циклу задачи: создание, выполнение, очистка
func runTasks(ctx context.Context, client todov1.TodoServiceClient) {
	log.Println("=== Tasks ===")

	added, err := client.AddTask(ctx, &todov1.AddTaskRequest{Title: "Buy milk", Priority: "high"})
	if err != nil {
		log.Fatalf("AddTask failed: %v", err)
	}
	log.Printf("Added task %s: %q (%s, %s)", added.Task.Id, added.Task.Title, added.Task.Priority, added.Task.Status)

	toggled, err := client.ToggleTaskStatus(ctx, &todov1.ToggleTaskStatusRequest{Id: added.Task.Id})
	if err != nil {
		log.Fatalf("ToggleTaskStatus failed: %v", err)
	}
	log.Printf("Toggled task: status=%s completedAt=%v", toggled.Task.Status, toggled.Task.CompletedAt)

	list, err := client.ListTasks(ctx, &todov1.ListTasksRequest{Sort: "priority"})
	if err != nil {
		log.Fatalf("ListTasks failed: %v", err)
	}
	log.Printf("Tasks: total=%d pending=%d completed=%d", list.Stats.Total, list.Stats.Pending, list.Stats.Completed)
	for _, t := range list.Tasks {
		log.Printf("  [%s] %s (%s)", t.Status, t.Title, t.Priority)
	}

	cleared, err := client.ClearCompletedTasks(ctx, &todov1.ClearCompletedTasksRequest{})
	if err != nil {
		log.Fatalf("ClearCompletedTasks failed: %v", err)
	}
	log.Printf("Cleared %d completed task(s)", cleared.Removed)
}

// runNotes создает заметку и редактирует ее через сессию редактирования
func runNotes(ctx context.Context, client todov1.TodoServiceClient) {
	log.Println("=== Notes ===")

	added, err := client.AddNote(ctx, &todov1.AddNoteRequest{Text: "Call the plumber", Category: "important"})
	if err != nil {
		log.Fatalf("AddNote failed: %v", err)
	}
	log.Printf("Added note %s: %q [%s]", added.Note.Id, added.Note.Title, added.Note.Category)

	if _, err := client.StartNoteEdit(ctx, &todov1.StartNoteEditRequest{Id: added.Note.Id}); err != nil {
		log.Fatalf("StartNoteEdit failed: %v", err)
	}
	saved, err := client.SaveNoteEdit(ctx, &todov1.SaveNoteEditRequest{
		Id:    added.Note.Id,
		Title: "Plumber",
		Text:  "Call the plumber before Friday",
	})
	if err != nil {
		log.Fatalf("SaveNoteEdit failed: %v", err)
	}
	log.Printf("Saved note: %q, updated at %s", saved.Note.Title, saved.Note.UpdatedAt.Format(time.RFC3339))

	list, err := client.ListNotes(ctx, &todov1.ListNotesRequest{Search: "plumber"})
	if err != nil {
		log.Fatalf("ListNotes failed: %v", err)
	}
	log.Printf("Found %d note(s) matching %q", len(list.Notes), "plumber")
}

// runErrorHandling показывает детализированные ошибки валидации
func runErrorHandling(ctx context.Context, client todov1.TodoServiceClient) {
	log.Println("=== Rich Error Handling ===")

	_, err := client.AddTask(ctx, &todov1.AddTaskRequest{Title: "   "})
	if err == nil {
		log.Println("Expected validation error, got none")
		return
	}

	st := status.Convert(err)
	log.Printf("Status Code: %s", st.Code())
	log.Printf("Status Message: %s", st.Message())

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.BadRequest:
			for _, v := range d.GetFieldViolations() {
				log.Printf("  field %q: %s", v.GetField(), v.GetDescription())
			}
		case *errdetails.ErrorInfo:
			log.Printf("  reason %s (%s): %v", d.GetReason(), d.GetDomain(), d.GetMetadata())
		default:
			log.Printf("  unknown detail type %T", d)
		}
	}

	resp, err := client.DeleteTask(ctx, &todov1.DeleteTaskRequest{Id: "does-not-exist"})
	if err != nil {
		log.Printf("DeleteTask failed: %v", err)
		return
	}
	log.Printf("Deleting unknown task: applied=%v", resp.Applied)
}
