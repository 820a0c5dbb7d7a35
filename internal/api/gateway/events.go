package gateway

import (
	"errors"
	"io"
	"log"
	"net/http"

	todov1 "tasknotes-service/pkg/api/todo/v1"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// streamError ошибка, возникшая после начала стрима
type streamError struct {
	Code       int32  `json:"code"`
	HTTPStatus int    `json:"httpStatus"`
	Message    string `json:"message"`
}

// streamChunk одна строка NDJSON стрима событий
type streamChunk struct {
	Result *todov1.Event `json:"result,omitempty"`
	Error  *streamError  `json:"error,omitempty"`
}

// eventStream проксирует серверный стрим Subscribe как newline-delimited JSON.
// Через wsproxy тот же маршрут доступен по WebSocket.
func eventStream(mux *runtime.ServeMux, client todov1.TodoServiceClient) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		_, outbound := runtime.MarshalerForRequest(mux, r)

		ctx, err := runtime.AnnotateContext(r.Context(), mux, r, todov1.TodoService_Subscribe_FullMethodName, runtime.WithHTTPPathPattern("/v1/events"))
		if err != nil {
			runtime.HTTPError(r.Context(), mux, outbound, w, r, err)
			return
		}

		req := &todov1.SubscribeRequest{Entity: r.URL.Query().Get("entity")}
		if err := req.Validate(); err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Error(codes.InvalidArgument, err.Error()))
			return
		}

		stream, err := client.Subscribe(ctx, req)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/x-ndjson")
		w.Header().Set("Transfer-Encoding", "chunked")
		w.WriteHeader(http.StatusOK)
		flusher, _ := w.(http.Flusher)
		if flusher != nil {
			flusher.Flush()
		}

		for {
			event, err := stream.Recv()
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					return
				}
				st := status.Convert(err)
				writeChunk(w, outbound, streamChunk{Error: &streamError{
					Code:       int32(st.Code()),
					HTTPStatus: runtime.HTTPStatusFromCode(st.Code()),
					Message:    st.Message(),
				}})
				return
			}

			if !writeChunk(w, outbound, streamChunk{Result: event}) {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
	}
}

func writeChunk(w io.Writer, outbound runtime.Marshaler, chunk streamChunk) bool {
	buf, err := outbound.Marshal(chunk)
	if err != nil {
		log.Printf("[gateway] failed to marshal event: %v", err)
		return false
	}
	if _, err := w.Write(append(buf, '\n')); err != nil {
		log.Printf("[gateway] event stream closed: %v", err)
		return false
	}
	return true
}
