package todov1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	TodoService_AddTask_FullMethodName             = "/todo.v1.TodoService/AddTask"
	TodoService_UpdateTask_FullMethodName          = "/todo.v1.TodoService/UpdateTask"
	TodoService_ToggleTaskStatus_FullMethodName    = "/todo.v1.TodoService/ToggleTaskStatus"
	TodoService_DeleteTask_FullMethodName          = "/todo.v1.TodoService/DeleteTask"
	TodoService_ClearCompletedTasks_FullMethodName = "/todo.v1.TodoService/ClearCompletedTasks"
	TodoService_ListTasks_FullMethodName           = "/todo.v1.TodoService/ListTasks"
	TodoService_AddNote_FullMethodName             = "/todo.v1.TodoService/AddNote"
	TodoService_StartNoteEdit_FullMethodName       = "/todo.v1.TodoService/StartNoteEdit"
	TodoService_SaveNoteEdit_FullMethodName        = "/todo.v1.TodoService/SaveNoteEdit"
	TodoService_CancelNoteEdit_FullMethodName      = "/todo.v1.TodoService/CancelNoteEdit"
	TodoService_DeleteNote_FullMethodName          = "/todo.v1.TodoService/DeleteNote"
	TodoService_ListNotes_FullMethodName           = "/todo.v1.TodoService/ListNotes"
	TodoService_Subscribe_FullMethodName           = "/todo.v1.TodoService/Subscribe"
)

// TodoServiceServer серверная часть todo.v1.TodoService
type TodoServiceServer interface {
	AddTask(context.Context, *AddTaskRequest) (*AddTaskResponse, error)
	UpdateTask(context.Context, *UpdateTaskRequest) (*UpdateTaskResponse, error)
	ToggleTaskStatus(context.Context, *ToggleTaskStatusRequest) (*ToggleTaskStatusResponse, error)
	DeleteTask(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error)
	ClearCompletedTasks(context.Context, *ClearCompletedTasksRequest) (*ClearCompletedTasksResponse, error)
	ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error)
	AddNote(context.Context, *AddNoteRequest) (*AddNoteResponse, error)
	StartNoteEdit(context.Context, *StartNoteEditRequest) (*StartNoteEditResponse, error)
	SaveNoteEdit(context.Context, *SaveNoteEditRequest) (*SaveNoteEditResponse, error)
	CancelNoteEdit(context.Context, *CancelNoteEditRequest) (*CancelNoteEditResponse, error)
	DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error)
	ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error)
	Subscribe(*SubscribeRequest, TodoService_SubscribeServer) error
}

// TodoService_SubscribeServer серверный стрим событий
type TodoService_SubscribeServer interface {
	Send(*Event) error
	grpc.ServerStream
}

// UnimplementedTodoServiceServer возвращает Unimplemented для всех методов
type UnimplementedTodoServiceServer struct{}

func (UnimplementedTodoServiceServer) AddTask(context.Context, *AddTaskRequest) (*AddTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddTask not implemented")
}
func (UnimplementedTodoServiceServer) UpdateTask(context.Context, *UpdateTaskRequest) (*UpdateTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateTask not implemented")
}
func (UnimplementedTodoServiceServer) ToggleTaskStatus(context.Context, *ToggleTaskStatusRequest) (*ToggleTaskStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleTaskStatus not implemented")
}
func (UnimplementedTodoServiceServer) DeleteTask(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteTask not implemented")
}
func (UnimplementedTodoServiceServer) ClearCompletedTasks(context.Context, *ClearCompletedTasksRequest) (*ClearCompletedTasksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearCompletedTasks not implemented")
}
func (UnimplementedTodoServiceServer) ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTasks not implemented")
}
func (UnimplementedTodoServiceServer) AddNote(context.Context, *AddNoteRequest) (*AddNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddNote not implemented")
}
func (UnimplementedTodoServiceServer) StartNoteEdit(context.Context, *StartNoteEditRequest) (*StartNoteEditResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartNoteEdit not implemented")
}
func (UnimplementedTodoServiceServer) SaveNoteEdit(context.Context, *SaveNoteEditRequest) (*SaveNoteEditResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveNoteEdit not implemented")
}
func (UnimplementedTodoServiceServer) CancelNoteEdit(context.Context, *CancelNoteEditRequest) (*CancelNoteEditResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelNoteEdit not implemented")
}
func (UnimplementedTodoServiceServer) DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteNote not implemented")
}
func (UnimplementedTodoServiceServer) ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNotes not implemented")
}
func (UnimplementedTodoServiceServer) Subscribe(*SubscribeRequest, TodoService_SubscribeServer) error {
	return status.Error(codes.Unimplemented, "method Subscribe not implemented")
}

// RegisterTodoServiceServer регистрирует реализацию сервиса на gRPC сервере
func RegisterTodoServiceServer(s grpc.ServiceRegistrar, srv TodoServiceServer) {
	s.RegisterService(&TodoService_ServiceDesc, srv)
}

// unaryHandler строит grpc.MethodHandler для унарного метода сервиса
func unaryHandler[Req, Resp any](call func(TodoServiceServer, context.Context, *Req) (*Resp, error), fullMethod string) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TodoServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TodoServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func subscribeHandler(srv any, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TodoServiceServer).Subscribe(m, &todoServiceSubscribeServer{stream})
}

type todoServiceSubscribeServer struct {
	grpc.ServerStream
}

func (x *todoServiceSubscribeServer) Send(m *Event) error {
	return x.ServerStream.SendMsg(m)
}

// TodoService_ServiceDesc описание сервиса для grpc.Server
var TodoService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "todo.v1.TodoService",
	HandlerType: (*TodoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddTask", Handler: unaryHandler(TodoServiceServer.AddTask, TodoService_AddTask_FullMethodName)},
		{MethodName: "UpdateTask", Handler: unaryHandler(TodoServiceServer.UpdateTask, TodoService_UpdateTask_FullMethodName)},
		{MethodName: "ToggleTaskStatus", Handler: unaryHandler(TodoServiceServer.ToggleTaskStatus, TodoService_ToggleTaskStatus_FullMethodName)},
		{MethodName: "DeleteTask", Handler: unaryHandler(TodoServiceServer.DeleteTask, TodoService_DeleteTask_FullMethodName)},
		{MethodName: "ClearCompletedTasks", Handler: unaryHandler(TodoServiceServer.ClearCompletedTasks, TodoService_ClearCompletedTasks_FullMethodName)},
		{MethodName: "ListTasks", Handler: unaryHandler(TodoServiceServer.ListTasks, TodoService_ListTasks_FullMethodName)},
		{MethodName: "AddNote", Handler: unaryHandler(TodoServiceServer.AddNote, TodoService_AddNote_FullMethodName)},
		{MethodName: "StartNoteEdit", Handler: unaryHandler(TodoServiceServer.StartNoteEdit, TodoService_StartNoteEdit_FullMethodName)},
		{MethodName: "SaveNoteEdit", Handler: unaryHandler(TodoServiceServer.SaveNoteEdit, TodoService_SaveNoteEdit_FullMethodName)},
		{MethodName: "CancelNoteEdit", Handler: unaryHandler(TodoServiceServer.CancelNoteEdit, TodoService_CancelNoteEdit_FullMethodName)},
		{MethodName: "DeleteNote", Handler: unaryHandler(TodoServiceServer.DeleteNote, TodoService_DeleteNote_FullMethodName)},
		{MethodName: "ListNotes", Handler: unaryHandler(TodoServiceServer.ListNotes, TodoService_ListNotes_FullMethodName)},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       subscribeHandler,
			ServerStreams: true,
		},
	},
	Metadata: "todo/v1",
}
