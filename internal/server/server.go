package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	grpcapi "notes-crud/internal/api/grpc"
	httpapi "notes-crud/internal/api/http"
	"notes-crud/internal/api/http/middleware"
	"notes-crud/internal/api/swagger"
	"notes-crud/internal/config"
	"notes-crud/internal/repository"
	"notes-crud/internal/repository/memory"
	"notes-crud/internal/repository/sqlite"
	notesService "notes-crud/internal/service/notes"
	notesv1 "notes-crud/pkg/api/notes/v1"
)

// Server представляет сервер приложения: REST API заметок и служебный gRPC сервер
type Server struct {
	// HTTP компоненты
	HTTPServer   *http.Server
	HTTPListener net.Listener

	// gRPC компоненты (health, reflection)
	GRPCServer   *grpcapi.Server
	GRPCListener net.Listener

	// Хранилище заметок, закрывается при Shutdown
	Repo repository.NoteRepository

	// Конфигурация
	Config *config.Config
}

// NewServer открывает слушающие сокеты по портам из конфига
func NewServer(cfg *config.Config) (*Server, error) {
	httpAddr := "0.0.0.0:" + strconv.Itoa(cfg.Server.PortHTTP)
	grpcAddr := "0.0.0.0:" + strconv.Itoa(cfg.Server.PortGRPC)

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", httpAddr, err)
	}

	grpcListener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		httpListener.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", grpcAddr, err)
	}

	log.Printf("Config loaded: backend=%s, HTTP port=%d, gRPC port=%d",
		cfg.Server.Backend, cfg.Server.PortHTTP, cfg.Server.PortGRPC)

	return New(cfg, httpListener, grpcListener), nil
}

// New создает сервер поверх уже открытых listeners
func New(cfg *config.Config, httpListener, grpcListener net.Listener) *Server {
	return &Server{
		HTTPListener: httpListener,
		GRPCListener: grpcListener,
		Config:       cfg,
	}
}

// Initialize инициализирует компоненты сервера (Repository → Service → Handler).
// При ошибке закрывает хранилище и listeners: сервер после этого не запускается.
func (s *Server) Initialize(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			s.abort()
		}
	}()

	repo, deleteResult, err := OpenRepository(ctx, s.Config)
	if err != nil {
		return err
	}
	s.Repo = repo

	handler, err := NewHTTPHandler(s.Config, repo, deleteResult)
	if err != nil {
		return err
	}

	s.HTTPServer = &http.Server{
		Handler:           handler,
		ReadTimeout:       seconds(s.Config.Server.HTTPReadTimeout),
		WriteTimeout:      seconds(s.Config.Server.HTTPWriteTimeout),
		IdleTimeout:       seconds(s.Config.Server.HTTPIdleTimeout),
		ReadHeaderTimeout: seconds(s.Config.Server.HTTPReadHeaderTimeout),
	}

	s.GRPCServer = grpcapi.NewServer(s.Config.Server.UseReflection)

	// Хранилище открыто, сервис готов принимать запросы
	if err := repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository ping: %w", err)
	}
	s.GRPCServer.SetServing(true)

	return nil
}

// abort освобождает ресурсы сервера, который так и не был запущен
func (s *Server) abort() {
	if s.Repo != nil {
		if err := s.Repo.Close(); err != nil {
			log.Printf("Failed to close repository: %v", err)
		}
		s.Repo = nil
	}
	for _, lis := range []net.Listener{s.HTTPListener, s.GRPCListener} {
		if lis != nil {
			lis.Close()
		}
	}
	s.HTTPServer = nil
	s.GRPCServer = nil
}

// OpenRepository выбирает хранилище по server.backend.
// Вместе с ним возвращается текст ответа на удаление для этого варианта API.
func OpenRepository(ctx context.Context, cfg *config.Config) (repository.NoteRepository, string, error) {
	switch cfg.Server.Backend {
	case config.BackendSQLite:
		repo, err := sqlite.NewRepository(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, "", fmt.Errorf("open sqlite repository: %w", err)
		}
		log.Printf("Initialized sqlite repository (%s)", cfg.Storage.DSN)
		return repo, notesv1.ResultDeleted, nil
	case config.BackendMemory:
		log.Println("Initialized in-memory repository")
		return memory.NewRepository(), notesv1.ResultDeletedIfExists, nil
	default:
		return nil, "", fmt.Errorf("unknown backend %q", cfg.Server.Backend)
	}
}

// NewHTTPHandler собирает mux с маршрутами и оборачивает его в middleware
func NewHTTPHandler(cfg *config.Config, repo repository.NoteRepository, deleteResult string) (http.Handler, error) {
	noteSvc := notesService.NewNoteService(repo)
	noteHandler := httpapi.NewHandler(noteSvc, httpapi.Options{
		Prefix:       cfg.HTTP.Prefix,
		DeleteResult: deleteResult,
	})

	mux := http.NewServeMux()
	noteHandler.Register(mux)
	mux.Handle("GET /healthz", httpapi.Health(repo))

	if cfg.Swagger.Enabled {
		if err := swagger.ServeSwagger(mux, cfg.HTTP.Prefix); err != nil {
			return nil, err
		}
	}

	// Порядок: RequestID → Recovery → CORS → Logging → RateLimit → mux
	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Recovery,
		middleware.CORS(cfg.HTTP.CORSAllowedOrigins, cfg.HTTP.CORSMaxAge),
		middleware.Logging,
		middleware.RateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst),
	), nil
}

// Start запускает HTTP и gRPC серверы в горутинах
// Возвращает канал ошибок для отслеживания ошибок серверов
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 2)

	go func() {
		log.Printf("gRPC server listening on %s", s.GRPCListener.Addr())
		if err := s.GRPCServer.Serve(s.GRPCListener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		log.Printf("HTTP server listening on %s", s.HTTPListener.Addr())
		if err := s.HTTPServer.Serve(s.HTTPListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	return errChan
}

// Shutdown выполняет graceful shutdown: HTTP, затем gRPC, затем закрывает хранилище
func (s *Server) Shutdown() error {
	log.Println("Starting graceful shutdown...")

	shutdownTimeout := seconds(s.Config.Server.GracefulShutdownTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error

	if s.HTTPServer != nil {
		if err := s.HTTPServer.Shutdown(ctx); err != nil {
			// Активные соединения не завершились вовремя: закрываем принудительно
			if errors.Is(err, context.DeadlineExceeded) {
				log.Println("HTTP graceful shutdown timeout, forcing close...")
				if cerr := s.HTTPServer.Close(); cerr != nil {
					log.Printf("HTTP server close: %v", cerr)
				}
			}
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		} else {
			log.Println("HTTP server stopped gracefully")
		}
	}

	if s.GRPCServer != nil {
		if err := s.GRPCServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
		}
	}

	if s.Repo != nil {
		if err := s.Repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close repository: %w", err))
		}
	}

	return errors.Join(errs...)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
