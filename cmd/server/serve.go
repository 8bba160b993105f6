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

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/alicebob/miniredis/v2"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/KirkDiggler/monster-battle/internal/config"
	grpcv1 "github.com/KirkDiggler/monster-battle/internal/handlers/grpc/v1"
	httpv1 "github.com/KirkDiggler/monster-battle/internal/handlers/http/v1"
	"github.com/KirkDiggler/monster-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/monster-battle/internal/pkg/clock"
	"github.com/KirkDiggler/monster-battle/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/monster-battle/internal/redis"
	"github.com/KirkDiggler/monster-battle/internal/repositories/battles"
	monstersaves "github.com/KirkDiggler/monster-battle/internal/repositories/monster_saves"
)

var (
	grpcAddr   string
	httpAddr   string
	catalogDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the battle gRPC service and the HTTP server carrying health checks and narration streams. Settings come from MONSTER_BATTLE_* environment variables; flags override them.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "gRPC listen address")
	serveCmd.Flags().StringVar(&httpAddr, "http-addr", "", "HTTP listen address")
	serveCmd.Flags().StringVar(&catalogDir, "catalog", "", "directory holding species.yaml and moves.yaml")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if grpcAddr != "" {
		cfg.GRPCAddr = grpcAddr
	}
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}
	if catalogDir != "" {
		cfg.CatalogDir = catalogDir
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := loadRegistry(cfg.CatalogDir)
	if err != nil {
		return err
	}

	endpoint := cfg.RedisEndpoint
	if endpoint == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return fmt.Errorf("failed to start embedded save store: %w", err)
		}
		defer mr.Close()
		endpoint = mr.Addr()
		slog.Warn("No redis endpoint configured, saves will not outlive the process", "embedded_addr", endpoint)
	}

	redisClient, err := redisclient.NewClient(endpoint, &redisclient.Options{UseTLS: cfg.RedisTLS})
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()
	if err := redisclient.Ping(ctx, redisClient); err != nil {
		return err
	}

	saveRepo, err := monstersaves.NewRedisRepository(&monstersaves.Config{
		Client:      redisClient,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("save"),
	})
	if err != nil {
		return err
	}

	bus := events.NewBus()
	battleService, err := battle.NewOrchestrator(&battle.Config{
		Registry:        registry,
		BattleRepo:      battles.NewInMemory(),
		SaveRepo:        saveRepo,
		IDGenerator:     idgen.NewUUID("battle"),
		Clock:           clock.New(),
		EventBus:        bus,
		WeatherDuration: cfg.WeatherDuration,
	})
	if err != nil {
		return err
	}

	grpcHandler, err := grpcv1.NewHandler(&grpcv1.HandlerConfig{BattleService: battleService})
	if err != nil {
		return fmt.Errorf("failed to create grpc handler: %w", err)
	}
	httpHandler, err := httpv1.NewHandler(&httpv1.HandlerConfig{BattleService: battleService, Events: bus})
	if err != nil {
		return fmt.Errorf("failed to create http handler: %w", err)
	}

	grpcLogger := interceptorLogger(logger)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)
	grpcv1.RegisterBattleServiceServer(srv, grpcHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(grpcv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpHandler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("gRPC server starting", "addr", cfg.GRPCAddr)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down servers")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		httpErr := httpServer.Shutdown(shutdownCtx)

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Servers stopped gracefully")
		}
		return httpErr
	})

	return g.Wait()
}

// interceptorLogger adapts slog to the grpc logging middleware
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
