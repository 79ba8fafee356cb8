package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/pokedex-api/internal/config"
	grpcv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/handlers/grpc/v1alpha1"
	httpv1 "github.com/KirkDiggler/pokedex-api/internal/handlers/http/v1"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP and gRPC servers",
	Long:  `Start the Pokédex HTTP API (with websocket live search) and the gRPC service.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("http-port", 8080, "HTTP API port")
	serverCmd.Flags().Int("grpc-port", 50051, "gRPC server port")
	serverCmd.Flags().String("pokeapi-url", "", "PokeAPI base URL")
	serverCmd.Flags().String("cache-backend", "", "response cache backend (memory|redis)")
	serverCmd.Flags().String("redis", "", "redis endpoint for the redis cache backend")
	serverCmd.Flags().String("log-level", "", "log level (debug|info|warn|error)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.Logging.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.New()
	cache, closeCache, err := newCache(cfg, clk)
	if err != nil {
		return fmt.Errorf("failed to create response cache: %w", err)
	}
	defer closeCache()

	service, err := newService(cfg, cache, clk, logger)
	if err != nil {
		return fmt.Errorf("failed to create pokedex service: %w", err)
	}

	httpServer, err := httpv1.NewServer(&httpv1.Config{
		Service:  service,
		Logger:   logger.With("component", "http"),
		IDGen:    idgen.NewUUID(""),
		Debounce: cfg.Search.Debounce,
	})
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	grpcHandler, err := grpcv1alpha1.NewHandler(&grpcv1alpha1.HandlerConfig{Service: service})
	if err != nil {
		return fmt.Errorf("failed to create grpc handler: %w", err)
	}
	grpcServer, healthServer := grpcv1alpha1.NewServer(grpcHandler, logger.With("component", "grpc"))

	grpcLis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.GRPC.Port)
		if err := grpcServer.Serve(grpcLis); err != nil {
			errChan <- fmt.Errorf("grpc server: %w", err)
		}
	}()
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTP.Port, "cache", cfg.Cache.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Received shutdown signal, gracefully stopping")
	case err := <-errChan:
		logger.Error("server failed", "error", err)
		grpcServer.Stop()
		_ = srv.Close()
		return err
	}

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	if err := httpv1.Shutdown(srv, cfg.HTTP.ShutdownTimeout); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(cfg.HTTP.ShutdownTimeout):
		logger.Warn("Graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		logger.Info("Servers stopped gracefully")
	}

	return nil
}
