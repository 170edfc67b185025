package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"notes-crud/internal/config"
	"notes-crud/internal/server"
)

var (
	configFile   string
	backendFlag  string
	httpPortFlag int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the notes HTTP API and the gRPC health server",
	Long: `Serve loads the YAML config, opens the storage backend and serves the REST API.
Flags override the corresponding config values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.InitConfig[config.Config](configFile)
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		// Флаги перекрывают значения из файла
		if cmd.Flags().Changed("backend") {
			if cfg.Server == nil {
				cfg.Server = &config.ConfigServer{}
			}
			cfg.Server.Backend = backendFlag
		}
		if cmd.Flags().Changed("port") {
			if cfg.Server == nil {
				cfg.Server = &config.ConfigServer{}
			}
			cfg.Server.PortHTTP = httpPortFlag
		}

		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return err
		}
		configureLogging(cfg.Logger.Level)

		return run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "config.yml", "Path to YAML config")
	serveCmd.Flags().StringVar(&backendFlag, "backend", "", "Storage backend: memory or sqlite")
	serveCmd.Flags().IntVarP(&httpPortFlag, "port", "p", 0, "HTTP port")
}

// configureLogging включает подробный формат логов для уровня debug
func configureLogging(level string) {
	if level == "debug" {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}
}

func run(cfg *config.Config) error {
	srv, err := server.NewServer(cfg)
	if err != nil {
		return err
	}

	if err := srv.Initialize(context.Background()); err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	// Канал для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := srv.Start()

	// Ожидание сигнала или ошибки
	var serveErr error
	select {
	case serveErr = <-errChan:
		log.Printf("Server error: %v", serveErr)
	case sig := <-sigChan:
		log.Printf("Received signal: %v. Starting graceful shutdown...", sig)
	}

	if err := srv.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Notes Service stopped")

	return serveErr
}
