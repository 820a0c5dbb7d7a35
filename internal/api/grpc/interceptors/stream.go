package interceptors

import (
	"log"

	"google.golang.org/grpc"
)

// wrappedServerStream логирует каждое исходящее сообщение стрима
type wrappedServerStream struct {
	grpc.ServerStream
	method string
}

func (w *wrappedServerStream) SendMsg(m interface{}) error {
	err := w.ServerStream.SendMsg(m)
	if err != nil {
		log.Printf("[gRPC] %s SendMsg error: %v", w.method, err)
	} else {
		log.Printf("[gRPC] %s sent %T", w.method, m)
	}
	return err
}

// NewStreamInterceptor логирует открытие и закрытие стримов.
// С verbose дополнительно логируется каждое отправленное сообщение.
func NewStreamInterceptor(verbose bool) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		log.Printf("[gRPC] stream opened: %s", info.FullMethod)

		if verbose {
			ss = &wrappedServerStream{ServerStream: ss, method: info.FullMethod}
		}

		err := handler(srv, ss)
		if err != nil {
			log.Printf("[gRPC] stream %s closed with error: %v", info.FullMethod, err)
		} else {
			log.Printf("[gRPC] stream closed: %s", info.FullMethod)
		}
		return err
	}
}
