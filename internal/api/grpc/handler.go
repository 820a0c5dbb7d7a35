package grpc

import (
	"context"
	"errors"
	"log"

	"tasknotes-service/internal/converter"
	"tasknotes-service/internal/model"
	"tasknotes-service/internal/projection"
	svc "tasknotes-service/internal/service"
	"tasknotes-service/internal/service/events"
	todov1 "tasknotes-service/pkg/api/todo/v1"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain домен ошибок в ErrorInfo
const errorDomain = "tasknotes-service"

// Handler реализует gRPC сервер для TodoService
type Handler struct {
	todov1.UnimplementedTodoServiceServer

	taskService svc.TaskService
	noteService svc.NoteService
	events      events.Subscriber

	done chan struct{}
}

var _ todov1.TodoServiceServer = (*Handler)(nil)

// NewHandler создает новый экземпляр gRPC хэндлера
func NewHandler(taskService svc.TaskService, noteService svc.NoteService, subscriber events.Subscriber) *Handler {
	return &Handler{
		taskService: taskService,
		noteService: noteService,
		events:      subscriber,
		done:        make(chan struct{}),
	}
}

// Close завершает все активные подписки на события
func (h *Handler) Close() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

// AddTask создает новую задачу
func (h *Handler) AddTask(ctx context.Context, req *todov1.AddTaskRequest) (*todov1.AddTaskResponse, error) {
	task, err := h.taskService.Add(ctx, req.Title, req.Description, req.Priority)
	if err != nil {
		return nil, handleError(err)
	}
	return &todov1.AddTaskResponse{Task: converter.TaskToAPI(task)}, nil
}

// UpdateTask меняет заголовок, описание и приоритет задачи
func (h *Handler) UpdateTask(ctx context.Context, req *todov1.UpdateTaskRequest) (*todov1.UpdateTaskResponse, error) {
	task, applied, err := h.taskService.Update(ctx, model.ID(req.Id), req.Title, req.Description, req.Priority)
	if err != nil {
		return nil, handleError(err)
	}
	resp := &todov1.UpdateTaskResponse{Applied: applied}
	if applied {
		resp.Task = converter.TaskToAPI(task)
	}
	return resp, nil
}

// ToggleTaskStatus переключает статус задачи
func (h *Handler) ToggleTaskStatus(ctx context.Context, req *todov1.ToggleTaskStatusRequest) (*todov1.ToggleTaskStatusResponse, error) {
	task, applied, err := h.taskService.ToggleStatus(ctx, model.ID(req.Id))
	if err != nil {
		return nil, handleError(err)
	}
	resp := &todov1.ToggleTaskStatusResponse{Applied: applied}
	if applied {
		resp.Task = converter.TaskToAPI(task)
	}
	return resp, nil
}

// DeleteTask удаляет задачу
func (h *Handler) DeleteTask(ctx context.Context, req *todov1.DeleteTaskRequest) (*todov1.DeleteTaskResponse, error) {
	applied, err := h.taskService.Delete(ctx, model.ID(req.Id))
	if err != nil {
		return nil, handleError(err)
	}
	return &todov1.DeleteTaskResponse{Applied: applied}, nil
}

// ClearCompletedTasks удаляет все выполненные задачи
func (h *Handler) ClearCompletedTasks(ctx context.Context, _ *todov1.ClearCompletedTasksRequest) (*todov1.ClearCompletedTasksResponse, error) {
	removed, err := h.taskService.ClearCompleted(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return &todov1.ClearCompletedTasksResponse{Removed: int32(removed)}, nil
}

// ListTasks возвращает отфильтрованные и отсортированные задачи и счетчики по всей коллекции
func (h *Handler) ListTasks(ctx context.Context, req *todov1.ListTasksRequest) (*todov1.ListTasksResponse, error) {
	filter, err := projection.ParseTaskFilter(req.Filter)
	if err != nil {
		return nil, handleError(err)
	}
	order, err := projection.ParseTaskSort(req.Sort)
	if err != nil {
		return nil, handleError(err)
	}

	all := h.taskService.List(ctx)
	view := projection.Tasks(all, projection.TaskQuery{Filter: filter, Sort: order})

	return &todov1.ListTasksResponse{
		Tasks: converter.TasksToAPI(view),
		Stats: converter.StatsToAPI(projection.Stats(all)),
	}, nil
}

// AddNote создает новую заметку
func (h *Handler) AddNote(ctx context.Context, req *todov1.AddNoteRequest) (*todov1.AddNoteResponse, error) {
	note, err := h.noteService.Add(ctx, req.Title, req.Text, req.Category)
	if err != nil {
		return nil, handleError(err)
	}
	return &todov1.AddNoteResponse{Note: converter.NoteToAPI(note)}, nil
}

// StartNoteEdit открывает сессию редактирования заметки
func (h *Handler) StartNoteEdit(ctx context.Context, req *todov1.StartNoteEditRequest) (*todov1.StartNoteEditResponse, error) {
	note, applied := h.noteService.StartEdit(ctx, model.ID(req.Id))
	resp := &todov1.StartNoteEditResponse{Applied: applied}
	if applied {
		resp.Note = converter.NoteToAPI(note)
	}
	return resp, nil
}

// SaveNoteEdit сохраняет изменения заметки
func (h *Handler) SaveNoteEdit(ctx context.Context, req *todov1.SaveNoteEditRequest) (*todov1.SaveNoteEditResponse, error) {
	note, applied, err := h.noteService.SaveEdit(ctx, model.ID(req.Id), req.Title, req.Text)
	if err != nil {
		return nil, handleError(err)
	}
	resp := &todov1.SaveNoteEditResponse{Applied: applied}
	if applied {
		resp.Note = converter.NoteToAPI(note)
	}
	return resp, nil
}

// CancelNoteEdit закрывает сессию редактирования
func (h *Handler) CancelNoteEdit(ctx context.Context, _ *todov1.CancelNoteEditRequest) (*todov1.CancelNoteEditResponse, error) {
	h.noteService.CancelEdit(ctx)
	return &todov1.CancelNoteEditResponse{}, nil
}

// DeleteNote удаляет заметку
func (h *Handler) DeleteNote(ctx context.Context, req *todov1.DeleteNoteRequest) (*todov1.DeleteNoteResponse, error) {
	applied, err := h.noteService.Delete(ctx, model.ID(req.Id))
	if err != nil {
		return nil, handleError(err)
	}
	return &todov1.DeleteNoteResponse{Applied: applied}, nil
}

// ListNotes возвращает заметки по категории и строке поиска
func (h *Handler) ListNotes(ctx context.Context, req *todov1.ListNotesRequest) (*todov1.ListNotesResponse, error) {
	category, err := projection.ParseNoteCategory(req.Category)
	if err != nil {
		return nil, handleError(err)
	}

	notes, editing := h.noteService.Snapshot(ctx)
	view := projection.Notes(notes, projection.NoteQuery{Category: category, Search: req.Search})

	return &todov1.ListNotesResponse{
		Notes:     converter.NotesToAPI(view),
		EditingId: editing.String(),
	}, nil
}

// Subscribe отправляет клиенту события изменения коллекций,
// пока клиент не отключится или сервер не остановится
func (h *Handler) Subscribe(req *todov1.SubscribeRequest, stream todov1.TodoService_SubscribeServer) error {
	if err := req.Validate(); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	ch := h.events.Subscribe()
	defer h.events.Unsubscribe(ch)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			log.Printf("Subscriber disconnected: %v", ctx.Err())
			return nil
		case <-h.done:
			return status.Error(codes.Unavailable, "server is shutting down")
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			if req.Entity != "" && string(event.Entity) != req.Entity {
				continue
			}
			if err := stream.Send(converter.EventToAPI(event)); err != nil {
				return err
			}
		}
	}
}

// handleError конвертирует внутренние ошибки в gRPC статусы с детализацией
func handleError(err error) error {
	if err == nil {
		return nil
	}

	// Ошибки валидации: InvalidArgument с описанием поля
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		st := status.New(codes.InvalidArgument, ve.Error())
		withDetails, detailsErr := st.WithDetails(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: ve.Field, Description: ve.Message},
			},
		})
		if detailsErr != nil {
			return st.Err()
		}
		return withDetails.Err()
	}

	// Все остальные ошибки (в первую очередь ошибки записи в хранилище) - Internal
	log.Printf("Internal error: %v", err)
	st := status.New(codes.Internal, "internal error")
	withDetails, detailsErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   "INTERNAL_ERROR",
		Domain:   errorDomain,
		Metadata: map[string]string{"error": err.Error()},
	})
	if detailsErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}
