package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tracking/cmd"
	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/legacysql"
	"tracking/internal/adapters/out/metrics"
	"tracking/internal/adapters/out/postgres/legrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/rediscache"
	"tracking/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	serviceName     = "tracking"
	shutdownTimeout = 10 * time.Second
)

func main() {
	configs, err := getConfigs()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		logger.Error("tracking service stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	legacyDB, err := openLegacyDatabase(ctx, configs)
	if err != nil {
		return err
	}
	defer legacyDB.Close()

	cache, closeCache, err := openCache(ctx, configs, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	m := metrics.New(prometheus.NewRegistry())
	app := cmd.NewCompositionRoot(configs, gormDB, legacyDB, cache, m, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := newWebServer(&app, m, configs.LogLevel)
	if err != nil {
		return err
	}
	return serve(ctx, e, configs.HTTPPort, logger)
}

func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("error loading .env file: %w", err)
	}
	return cmd.LoadConfig(os.Getenv)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})).
		With("service", serviceName)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(configs.PrimaryDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&legrepo.LegDTO{}, &legrepo.LegEventDTO{}, &orderrepo.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func openLegacyDatabase(ctx context.Context, configs cmd.Config) (*sql.DB, error) {
	db, err := legacysql.Open(ctx, configs.LegacyDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to legacy database: %w", err)
	}
	if err := legacysql.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate legacy database: %w", err)
	}
	return db, nil
}

// openCache returns a nil cache when REDIS_ADDR is empty. An unreachable redis
// only degrades reads, so it is logged and the cache stays wired.
func openCache(ctx context.Context, configs cmd.Config, logger *slog.Logger) (ports.TrackingCache, func(), error) {
	if configs.RedisAddr == "" {
		logger.InfoContext(ctx, "tracking cache disabled")
		return nil, func() {}, nil
	}

	client := rediscache.NewClient(configs.RedisAddr)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WarnContext(ctx, "redis is not reachable yet", "addr", configs.RedisAddr, "error", err)
	}
	closeClient := func() { _ = client.Close() }
	return rediscache.NewTrackingCache(client, serviceName, configs.TrackingCacheTTL), closeClient, nil
}

func newWebServer(app *cmd.CompositionRoot, m *metrics.Metrics, level string) (*echo.Echo, error) {
	server := httpin.NewServer(
		app.CreateDispatchLegCommandHandler(),
		app.CreateCompleteLegCommandHandler(),
		app.CreateMarkLegReadyCommandHandler(),
		app.CreateProvisionLegsCommandHandler(),
		app.CreateAdvanceLegacyDeliveryCommandHandler(),
		app.CreateGetTrackingQueryHandler(),
		app.CreateGetLegsForOrderQueryHandler(),
		app.CreateGetLegsForActorQueryHandler(),
	)

	e, err := httpin.NewRouter(server, httpin.RouterOptions{
		Observer:       m,
		MetricsHandler: m.Handler(),
	})
	if err != nil {
		return nil, err
	}
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(level))
	return e, nil
}

func serve(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
