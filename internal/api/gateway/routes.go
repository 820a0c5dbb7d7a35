package gateway

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	todov1 "tasknotes-service/pkg/api/todo/v1"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// route REST маршрут, проксируемый в унарный метод TodoService
type route struct {
	method  string
	pattern string
	handler runtime.HandlerFunc
}

// registerRoutes регистрирует REST маршруты задач, заметок и событий
func registerRoutes(mux *runtime.ServeMux, client todov1.TodoServiceClient) error {
	routes := []route{
		{http.MethodGet, "/v1/tasks", unary(mux, todov1.TodoService_ListTasks_FullMethodName, "/v1/tasks",
			func(r *http.Request, _ runtime.Marshaler, _ map[string]string, req *todov1.ListTasksRequest) error {
				q := r.URL.Query()
				req.Filter = q.Get("filter")
				req.Sort = q.Get("sort")
				return nil
			}, client.ListTasks)},
		{http.MethodPost, "/v1/tasks", unary(mux, todov1.TodoService_AddTask_FullMethodName, "/v1/tasks",
			bodyOnly[todov1.AddTaskRequest], client.AddTask)},
		{http.MethodPost, "/v1/tasks/clear-completed", unary(mux, todov1.TodoService_ClearCompletedTasks_FullMethodName, "/v1/tasks/clear-completed",
			noInput[todov1.ClearCompletedTasksRequest], client.ClearCompletedTasks)},
		{http.MethodPut, "/v1/tasks/{id}", unary(mux, todov1.TodoService_UpdateTask_FullMethodName, "/v1/tasks/{id}",
			func(r *http.Request, inbound runtime.Marshaler, params map[string]string, req *todov1.UpdateTaskRequest) error {
				if err := decodeBody(r, inbound, req); err != nil {
					return err
				}
				req.Id = params["id"]
				return nil
			}, client.UpdateTask)},
		{http.MethodPost, "/v1/tasks/{id}/toggle", unary(mux, todov1.TodoService_ToggleTaskStatus_FullMethodName, "/v1/tasks/{id}/toggle",
			func(_ *http.Request, _ runtime.Marshaler, params map[string]string, req *todov1.ToggleTaskStatusRequest) error {
				req.Id = params["id"]
				return nil
			}, client.ToggleTaskStatus)},
		{http.MethodDelete, "/v1/tasks/{id}", unary(mux, todov1.TodoService_DeleteTask_FullMethodName, "/v1/tasks/{id}",
			func(_ *http.Request, _ runtime.Marshaler, params map[string]string, req *todov1.DeleteTaskRequest) error {
				req.Id = params["id"]
				return nil
			}, client.DeleteTask)},

		{http.MethodGet, "/v1/notes", unary(mux, todov1.TodoService_ListNotes_FullMethodName, "/v1/notes",
			func(r *http.Request, _ runtime.Marshaler, _ map[string]string, req *todov1.ListNotesRequest) error {
				q := r.URL.Query()
				req.Category = q.Get("category")
				req.Search = q.Get("search")
				return nil
			}, client.ListNotes)},
		{http.MethodPost, "/v1/notes", unary(mux, todov1.TodoService_AddNote_FullMethodName, "/v1/notes",
			bodyOnly[todov1.AddNoteRequest], client.AddNote)},
		{http.MethodPost, "/v1/notes/cancel-edit", unary(mux, todov1.TodoService_CancelNoteEdit_FullMethodName, "/v1/notes/cancel-edit",
			noInput[todov1.CancelNoteEditRequest], client.CancelNoteEdit)},
		{http.MethodPost, "/v1/notes/{id}/edit", unary(mux, todov1.TodoService_StartNoteEdit_FullMethodName, "/v1/notes/{id}/edit",
			func(_ *http.Request, _ runtime.Marshaler, params map[string]string, req *todov1.StartNoteEditRequest) error {
				req.Id = params["id"]
				return nil
			}, client.StartNoteEdit)},
		{http.MethodPut, "/v1/notes/{id}", unary(mux, todov1.TodoService_SaveNoteEdit_FullMethodName, "/v1/notes/{id}",
			func(r *http.Request, inbound runtime.Marshaler, params map[string]string, req *todov1.SaveNoteEditRequest) error {
				if err := decodeBody(r, inbound, req); err != nil {
					return err
				}
				req.Id = params["id"]
				return nil
			}, client.SaveNoteEdit)},
		{http.MethodDelete, "/v1/notes/{id}", unary(mux, todov1.TodoService_DeleteNote_FullMethodName, "/v1/notes/{id}",
			func(_ *http.Request, _ runtime.Marshaler, params map[string]string, req *todov1.DeleteNoteRequest) error {
				req.Id = params["id"]
				return nil
			}, client.DeleteNote)},

		{http.MethodGet, "/v1/events", eventStream(mux, client)},
	}

	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return err
		}
	}
	return nil
}

// unary строит обработчик: HTTP запрос → gRPC запрос → вызов → JSON ответ.
// build заполняет gRPC запрос из тела, query и параметров пути.
func unary[Req, Resp any](
	mux *runtime.ServeMux,
	fullMethod string,
	pattern string,
	build func(r *http.Request, inbound runtime.Marshaler, params map[string]string, req *Req) error,
	call func(context.Context, *Req, ...grpc.CallOption) (*Resp, error),
) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		inbound, outbound := runtime.MarshalerForRequest(mux, r)

		ctx, err := runtime.AnnotateContext(r.Context(), mux, r, fullMethod, runtime.WithHTTPPathPattern(pattern))
		if err != nil {
			runtime.HTTPError(r.Context(), mux, outbound, w, r, err)
			return
		}

		req := new(Req)
		if err := build(r, inbound, params, req); err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Errorf(codes.InvalidArgument, "%v", err))
			return
		}

		resp, err := call(ctx, req)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}

		writeMessage(w, outbound, http.StatusOK, resp)
	}
}

func bodyOnly[Req any](r *http.Request, inbound runtime.Marshaler, _ map[string]string, req *Req) error {
	return decodeBody(r, inbound, req)
}

func noInput[Req any](*http.Request, runtime.Marshaler, map[string]string, *Req) error {
	return nil
}

// decodeBody читает JSON тело запроса; пустое тело оставляет запрос нулевым
func decodeBody(r *http.Request, inbound runtime.Marshaler, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := inbound.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeMessage(w http.ResponseWriter, outbound runtime.Marshaler, code int, v any) {
	buf, err := outbound.Marshal(v)
	if err != nil {
		log.Printf("[gateway] failed to marshal response: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", outbound.ContentType(v))
	w.WriteHeader(code)
	if _, err := w.Write(buf); err != nil {
		log.Printf("[gateway] failed to write response: %v", err)
	}
}
