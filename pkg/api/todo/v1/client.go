package todov1

import (
	"context"

	"google.golang.org/grpc"
)

// TodoServiceClient клиент todo.v1.TodoService.
// Все вызовы используют JSON кодек, явные опции вызова добавляются после него.
type TodoServiceClient interface {
	AddTask(ctx context.Context, in *AddTaskRequest, opts ...grpc.CallOption) (*AddTaskResponse, error)
	UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error)
	ToggleTaskStatus(ctx context.Context, in *ToggleTaskStatusRequest, opts ...grpc.CallOption) (*ToggleTaskStatusResponse, error)
	DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error)
	ClearCompletedTasks(ctx context.Context, in *ClearCompletedTasksRequest, opts ...grpc.CallOption) (*ClearCompletedTasksResponse, error)
	ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	AddNote(ctx context.Context, in *AddNoteRequest, opts ...grpc.CallOption) (*AddNoteResponse, error)
	StartNoteEdit(ctx context.Context, in *StartNoteEditRequest, opts ...grpc.CallOption) (*StartNoteEditResponse, error)
	SaveNoteEdit(ctx context.Context, in *SaveNoteEditRequest, opts ...grpc.CallOption) (*SaveNoteEditResponse, error)
	CancelNoteEdit(ctx context.Context, in *CancelNoteEditRequest, opts ...grpc.CallOption) (*CancelNoteEditResponse, error)
	DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error)
	ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error)
	Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (TodoService_SubscribeClient, error)
}

// TodoService_SubscribeClient клиентский стрим событий
type TodoService_SubscribeClient interface {
	Recv() (*Event, error)
	grpc.ClientStream
}

type todoServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTodoServiceClient создает клиента поверх соединения
func NewTodoServiceClient(cc grpc.ClientConnInterface) TodoServiceClient {
	return &todoServiceClient{cc: cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) AddTask(ctx context.Context, in *AddTaskRequest, opts ...grpc.CallOption) (*AddTaskResponse, error) {
	return invoke[AddTaskResponse](ctx, c.cc, TodoService_AddTask_FullMethodName, in, opts)
}

func (c *todoServiceClient) UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error) {
	return invoke[UpdateTaskResponse](ctx, c.cc, TodoService_UpdateTask_FullMethodName, in, opts)
}

func (c *todoServiceClient) ToggleTaskStatus(ctx context.Context, in *ToggleTaskStatusRequest, opts ...grpc.CallOption) (*ToggleTaskStatusResponse, error) {
	return invoke[ToggleTaskStatusResponse](ctx, c.cc, TodoService_ToggleTaskStatus_FullMethodName, in, opts)
}

func (c *todoServiceClient) DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error) {
	return invoke[DeleteTaskResponse](ctx, c.cc, TodoService_DeleteTask_FullMethodName, in, opts)
}

func (c *todoServiceClient) ClearCompletedTasks(ctx context.Context, in *ClearCompletedTasksRequest, opts ...grpc.CallOption) (*ClearCompletedTasksResponse, error) {
	return invoke[ClearCompletedTasksResponse](ctx, c.cc, TodoService_ClearCompletedTasks_FullMethodName, in, opts)
}

func (c *todoServiceClient) ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	return invoke[ListTasksResponse](ctx, c.cc, TodoService_ListTasks_FullMethodName, in, opts)
}

func (c *todoServiceClient) AddNote(ctx context.Context, in *AddNoteRequest, opts ...grpc.CallOption) (*AddNoteResponse, error) {
	return invoke[AddNoteResponse](ctx, c.cc, TodoService_AddNote_FullMethodName, in, opts)
}

func (c *todoServiceClient) StartNoteEdit(ctx context.Context, in *StartNoteEditRequest, opts ...grpc.CallOption) (*StartNoteEditResponse, error) {
	return invoke[StartNoteEditResponse](ctx, c.cc, TodoService_StartNoteEdit_FullMethodName, in, opts)
}

func (c *todoServiceClient) SaveNoteEdit(ctx context.Context, in *SaveNoteEditRequest, opts ...grpc.CallOption) (*SaveNoteEditResponse, error) {
	return invoke[SaveNoteEditResponse](ctx, c.cc, TodoService_SaveNoteEdit_FullMethodName, in, opts)
}

func (c *todoServiceClient) CancelNoteEdit(ctx context.Context, in *CancelNoteEditRequest, opts ...grpc.CallOption) (*CancelNoteEditResponse, error) {
	return invoke[CancelNoteEditResponse](ctx, c.cc, TodoService_CancelNoteEdit_FullMethodName, in, opts)
}

func (c *todoServiceClient) DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error) {
	return invoke[DeleteNoteResponse](ctx, c.cc, TodoService_DeleteNote_FullMethodName, in, opts)
}

func (c *todoServiceClient) ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error) {
	return invoke[ListNotesResponse](ctx, c.cc, TodoService_ListNotes_FullMethodName, in, opts)
}

func (c *todoServiceClient) Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (TodoService_SubscribeClient, error) {
	stream, err := c.cc.NewStream(ctx, &TodoService_ServiceDesc.Streams[0], TodoService_Subscribe_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &todoServiceSubscribeClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type todoServiceSubscribeClient struct {
	grpc.ClientStream
}

func (x *todoServiceSubscribeClient) Recv() (*Event, error) {
	m := new(Event)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
