package interceptors

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggerUnaryInterceptor логирует метод, итоговый статус и время выполнения запроса
func LoggerUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	if err != nil {
		st, _ := status.FromError(err)
		log.Printf("[gRPC] %s failed with status %s: %s (duration: %v)",
			info.FullMethod, st.Code(), st.Message(), duration)
	} else {
		log.Printf("[gRPC] %s completed successfully (duration: %v)", info.FullMethod, duration)
	}

	return resp, err
}

// LoggerStreamInterceptor логирует открытие и завершение стрима (health Watch)
func LoggerStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	log.Printf("[gRPC] Stream opened: %s", info.FullMethod)

	err := handler(srv, ss)
	if err != nil {
		log.Printf("[gRPC] Stream %s closed with error: %v", info.FullMethod, err)
	} else {
		log.Printf("[gRPC] Stream %s closed", info.FullMethod)
	}

	return err
}
