package interceptors

import (
	"context"
	"errors"

	todov1 "tasknotes-service/pkg/api/todo/v1"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// validator реализуется запросами, у которых есть обязательные поля
type validator interface {
	Validate() error
}

// ValidateUnaryInterceptor валидирует входящие запросы до вызова хэндлера.
// Если валидация не пройдена, возвращается ошибка с кодом InvalidArgument и BadRequest в деталях.
func ValidateUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if v, ok := req.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, invalidArgument(err)
		}
	}

	return handler(ctx, req)
}

func invalidArgument(err error) error {
	st := status.New(codes.InvalidArgument, "validation failed: "+err.Error())

	var fv *todov1.FieldViolation
	if !errors.As(err, &fv) {
		return st.Err()
	}
	withDetails, detailsErr := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: fv.Field, Description: fv.Description},
		},
	})
	if detailsErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}
