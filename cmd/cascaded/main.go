// cascaded is the overpayment cascade comparison service. It serves the
// cascade.v1.CascadeService gRPC API plus HTTP health and metrics endpoints.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmjfallon/cascade-beta/internal/application/usecase"
	"github.com/dmjfallon/cascade-beta/internal/domain/port"
	"github.com/dmjfallon/cascade-beta/internal/domain/service"
	"github.com/dmjfallon/cascade-beta/internal/infrastructure/cache"
	"github.com/dmjfallon/cascade-beta/internal/infrastructure/config"
	"github.com/dmjfallon/cascade-beta/internal/infrastructure/messaging"
	"github.com/dmjfallon/cascade-beta/internal/infrastructure/persistence/memory"
	"github.com/dmjfallon/cascade-beta/internal/infrastructure/persistence/postgres"
	"github.com/dmjfallon/cascade-beta/internal/observability"
	grpcPresentation "github.com/dmjfallon/cascade-beta/internal/presentation/grpc"
	"github.com/dmjfallon/cascade-beta/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting cascade-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort shutdown

	// Scenario storage: PostgreSQL when configured, in-memory otherwise.
	var (
		scenarios   port.ScenarioRepository
		readyChecks []rest.ReadyCheck
	)
	if cfg.DB.Enabled() {
		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		defer dbCancel()

		pool, poolErr := postgres.NewPool(dbCtx, postgres.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
		})
		if poolErr != nil {
			logger.Error("failed to connect to database", "error", poolErr)
			os.Exit(1)
		}
		defer pool.Close()

		repo, repoErr := postgres.NewScenarioRepo(dbCtx, pool)
		if repoErr != nil {
			logger.Error("failed to prepare scenario storage", "error", repoErr)
			os.Exit(1)
		}
		scenarios = repo
		readyChecks = append(readyChecks, func(r *http.Request) error {
			return postgres.HealthCheck(r.Context(), pool)
		})
		logger.Info("connected to database", "host", cfg.DB.Host)
	} else {
		scenarios = memory.NewScenarioRepo()
		logger.Info("no database configured, using in-memory scenario storage")
	}

	// Result cache: Redis when configured.
	var resultCache port.ResultCache
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis.Addr)
		defer redisCache.Close() //nolint:errcheck
		resultCache = redisCache
		logger.Info("result caching enabled", "addr", cfg.Redis.Addr)
	} else {
		resultCache = cache.NewNoopCache()
	}

	// Event publishing: Kafka when configured.
	var publisher port.EventPublisher
	if cfg.Kafka.Enabled() {
		kafkaPublisher := messaging.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer kafkaPublisher.Close() //nolint:errcheck
		publisher = kafkaPublisher
		logger.Info("event publishing enabled", "topic", cfg.Kafka.Topic)
	} else {
		publisher = messaging.NewNoopPublisher()
	}

	// Wire the engine and use cases.
	engine := service.NewComparisonEngine()
	compareUC := usecase.NewRunComparisonUseCase(engine, resultCache, publisher, logger)
	compareStrategiesUC := usecase.NewCompareStrategiesUseCase(engine)
	saveScenarioUC := usecase.NewSaveScenarioUseCase(scenarios)
	getScenarioUC := usecase.NewGetScenarioUseCase(scenarios, compareUC)

	// gRPC server.
	handler := grpcPresentation.NewCascadeHandler(compareUC, compareStrategiesUC, saveScenarioUC, getScenarioUC, logger)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server: health probes and metrics.
	mux := http.NewServeMux()
	rest.NewHealthHandler(logger, readyChecks...).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("cascade-service stopped")
}
