package grpc

import (
	"context"
	"log"
	"time"

	"notes-crud/internal/api/grpc/interceptors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// NotesServiceName имя сервиса, под которым публикуется статус готовности заметок
const NotesServiceName = "notes.v1.NotesService"

// Server служебный gRPC сервер: health-check и reflection для оркестраторов и grpcurl
type Server struct {
	*grpc.Server

	health *health.Server
}

// NewServer создает и настраивает gRPC сервер с интерцепторами и конфигурацией.
// До вызова SetServing(true) сервис заметок считается неготовым.
func NewServer(useReflection bool) *Server {
	grpcServer := grpc.NewServer(
		grpc.MaxConcurrentStreams(25),
		// KeepAlive параметры для защиты от зависших соединений
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     30 * time.Minute,
			MaxConnectionAge:      1 * time.Hour,
			MaxConnectionAgeGrace: 5 * time.Second,
			Time:                  10 * time.Minute,
			Timeout:               20 * time.Second,
		}),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggerUnaryInterceptor,
		),
		grpc.ChainStreamInterceptor(
			interceptors.LoggerStreamInterceptor,
		),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(NotesServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	log.Println("[gRPC] Registered health service")

	// Настройка reflection (для grpcurl/grpcui)
	if useReflection {
		reflection.Register(grpcServer)
		log.Println("[gRPC] Enabled reflection")
	}

	return &Server{
		Server: grpcServer,
		health: healthServer,
	}
}

// SetServing переключает статус сервиса заметок
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(NotesServiceName, st)
	log.Printf("[gRPC] %s status: %s", NotesServiceName, st)
}

// Shutdown переводит все сервисы в NOT_SERVING и останавливает сервер.
// Если активные запросы не завершились до отмены ctx, сервер останавливается принудительно.
func (s *Server) Shutdown(ctx context.Context) error {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()

	// Ожидаем завершения или таймаут
	select {
	case <-stopped:
		log.Println("[gRPC] Server stopped gracefully")
		return nil
	case <-ctx.Done():
		log.Println("[gRPC] Graceful shutdown timeout, forcing stop...")
		s.Stop()
		return ctx.Err()
	}
}
