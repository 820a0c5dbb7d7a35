package interceptors

import (
	"context"
	"testing"

	todov1 "tasknotes-service/pkg/api/todo/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: todov1.TodoService_DeleteTask_FullMethodName}

func TestValidateUnaryInterceptor_RejectsMissingID(t *testing.T) {
	called := false
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return nil, nil
	}

	_, err := ValidateUnaryInterceptor(context.Background(), &todov1.DeleteTaskRequest{Id: "  "}, testInfo, handler)

	require.Error(t, err)
	assert.False(t, called, "handler must not be called for invalid request")

	st := status.Convert(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	require.Len(t, st.Details(), 1)
	badRequest, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	assert.Equal(t, "id", badRequest.GetFieldViolations()[0].GetField())
}

func TestValidateUnaryInterceptor_PassesValidRequests(t *testing.T) {
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	}

	resp, err := ValidateUnaryInterceptor(context.Background(), &todov1.DeleteTaskRequest{Id: "t1"}, testInfo, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	// запросы без Validate пропускаются как есть
	resp, err = ValidateUnaryInterceptor(context.Background(), &todov1.AddTaskRequest{}, testInfo, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestLoggerUnaryInterceptor_ReturnsHandlerResult(t *testing.T) {
	wantErr := status.Error(codes.Internal, "boom")
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	}

	_, err := LoggerUnaryInterceptor(context.Background(), nil, testInfo, handler)
	assert.Equal(t, wantErr, err)
}
