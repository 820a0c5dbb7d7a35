package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"tasknotes-service/internal/model"
	"tasknotes-service/internal/repository"
	"tasknotes-service/internal/service/events"
	"tasknotes-service/internal/service/notes"
	"tasknotes-service/internal/service/tasks"
	"tasknotes-service/internal/storage/memory"
	todov1 "tasknotes-service/pkg/api/todo/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// startTestServer поднимает сервер на bufconn поверх in-memory хранилища
func startTestServer(t *testing.T) (todov1.TodoServiceClient, *events.Broker) {
	t.Helper()

	store := memory.NewStorage()
	broker := events.NewBroker()
	taskService := tasks.NewTaskService(repository.NewJSONCollection[model.Task](store, repository.TasksKey), broker)
	noteService := notes.NewNoteService(repository.NewJSONCollection[model.Note](store, repository.NotesKey), broker)
	handler := NewHandler(taskService, noteService, broker)

	lis := bufconn.Listen(bufSize)
	server := NewServer(handler, false)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(func() {
		handler.Close()
		server.Stop()
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return todov1.NewTodoServiceClient(conn), broker
}

func TestServer_TaskLifecycle(t *testing.T) {
	client, _ := startTestServer(t)
	ctx := context.Background()

	added, err := client.AddTask(ctx, &todov1.AddTaskRequest{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, "medium", added.Task.Priority)
	assert.Equal(t, "Pending", added.Task.Status)

	toggled, err := client.ToggleTaskStatus(ctx, &todov1.ToggleTaskStatusRequest{Id: added.Task.Id})
	require.NoError(t, err)
	assert.True(t, toggled.Applied)
	assert.Equal(t, "Completed", toggled.Task.Status)
	assert.NotNil(t, toggled.Task.CompletedAt)

	list, err := client.ListTasks(ctx, &todov1.ListTasksRequest{Filter: "completed"})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.EqualValues(t, 1, list.Stats.Completed)

	cleared, err := client.ClearCompletedTasks(ctx, &todov1.ClearCompletedTasksRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, cleared.Removed)

	list, err = client.ListTasks(ctx, &todov1.ListTasksRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Tasks)
	assert.EqualValues(t, 0, list.Stats.Total)
}

func TestServer_ValidationOverTheWire(t *testing.T) {
	client, _ := startTestServer(t)
	ctx := context.Background()

	_, err := client.AddTask(ctx, &todov1.AddTaskRequest{Title: "   "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.DeleteTask(ctx, &todov1.DeleteTaskRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := client.DeleteTask(ctx, &todov1.DeleteTaskRequest{Id: "missing"})
	require.NoError(t, err)
	assert.False(t, resp.Applied)
}

func TestServer_NoteEditSession(t *testing.T) {
	client, _ := startTestServer(t)
	ctx := context.Background()

	added, err := client.AddNote(ctx, &todov1.AddNoteRequest{Text: "first draft"})
	require.NoError(t, err)
	assert.Equal(t, model.UntitledNote, added.Note.Title)
	assert.Equal(t, "personal", added.Note.Category)

	_, err = client.StartNoteEdit(ctx, &todov1.StartNoteEditRequest{Id: added.Note.Id})
	require.NoError(t, err)

	list, err := client.ListNotes(ctx, &todov1.ListNotesRequest{})
	require.NoError(t, err)
	assert.Equal(t, added.Note.Id, list.EditingId)

	saved, err := client.SaveNoteEdit(ctx, &todov1.SaveNoteEditRequest{Id: added.Note.Id, Title: "Draft", Text: "second draft"})
	require.NoError(t, err)
	assert.True(t, saved.Applied)
	assert.Equal(t, "second draft", saved.Note.Text)

	list, err = client.ListNotes(ctx, &todov1.ListNotesRequest{Search: "draft", Category: "all"})
	require.NoError(t, err)
	require.Len(t, list.Notes, 1)
	assert.Empty(t, list.EditingId)
}

func TestServer_SubscribeReceivesEvents(t *testing.T) {
	client, broker := startTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.Subscribe(ctx, &todov1.SubscribeRequest{Entity: "task"})
	require.NoError(t, err)

	// ждем, пока подписка зарегистрируется на сервере
	require.Eventually(t, func() bool { return broker.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	_, err = client.AddNote(ctx, &todov1.AddNoteRequest{Text: "ignored"})
	require.NoError(t, err)
	added, err := client.AddTask(ctx, &todov1.AddTaskRequest{Title: "watched"})
	require.NoError(t, err)

	event, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "task", event.Entity)
	assert.Equal(t, "created", event.Kind)
	assert.Equal(t, added.Task.Id, event.Id)
}

func TestServer_SubscribeRejectsUnknownEntity(t *testing.T) {
	client, _ := startTestServer(t)

	stream, err := client.Subscribe(context.Background(), &todov1.SubscribeRequest{Entity: "project"})
	require.NoError(t, err)

	_, err = stream.Recv()
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
