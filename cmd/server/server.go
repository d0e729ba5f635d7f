package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/uzochukwuV/massacombat/internal/api/v1alpha1"
	"github.com/uzochukwuV/massacombat/internal/config"
	handlers "github.com/uzochukwuV/massacombat/internal/handlers/api/v1alpha1"
	"github.com/uzochukwuV/massacombat/internal/metrics"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the battle gRPC server and the Prometheus metrics endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides BATTLE_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	cat, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	setupSlog(cfg.LogLevel, cfg.LogFormat)
	zlog, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		_ = zlog.Sync() // nolint:errcheck // stderr sync fails on some terminals
	}()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc, err := newServices(ctx, cfg, cat, appOptions{})
	if err != nil {
		return err
	}
	defer svc.Close()

	srv, healthServer, err := newGRPCServer(svc, zlog)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metricsMux(svc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		zlog.Info("gRPC server starting",
			zap.Int("port", cfg.GRPCPort),
			zap.String("storage", cfg.Storage))
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()
	go func() {
		zlog.Info("metrics server starting", zap.String("addr", cfg.MetricsAddr))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("metrics server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		zlog.Info("shutting down")
	case err := <-errChan:
		zlog.Error("server failed", zap.Error(err))
		stopServers(srv, healthServer, metricsServer, zlog)
		return err
	}

	stopServers(srv, healthServer, metricsServer, zlog)
	return nil
}

// newGRPCServer registers both battle services, health and reflection
func newGRPCServer(svc *services, zlog *zap.Logger) (*grpc.Server, *health.Server, error) {
	battleHandler, err := handlers.NewBattleHandler(&handlers.BattleHandlerConfig{
		BattleService: svc.battles,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create battle handler: %w", err)
	}
	characterHandler, err := handlers.NewCharacterHandler(&handlers.CharacterHandlerConfig{
		CharacterService: svc.characters,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create character handler: %w", err)
	}

	logger := interceptorLogger(zlog)
	recoveryOpt := grpc_recovery.WithRecoveryHandler(func(p any) error {
		slog.Error("panic in handler", "panic", p)
		return status.Errorf(codes.Internal, "internal error")
	})
	logOpt := grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger, logOpt),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger, logOpt),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	apiv1alpha1.RegisterBattleServiceServer(srv, battleHandler)
	apiv1alpha1.RegisterCharacterServiceServer(srv, characterHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.BattleServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.CharacterServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, healthServer, nil
}

func metricsMux(svc *services) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(svc.registry))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func stopServers(srv *grpc.Server, healthServer *health.Server, metricsServer *http.Server, zlog *zap.Logger) {
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("metrics server shutdown", zap.Error(err))
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		zlog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		zlog.Info("server stopped gracefully")
	}
}
