// Package bootstrap wires configuration, logging, telemetry, storage and the
// HTTP server shared by every storefront process.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/migration"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"github.com/storefront/backend/internal/infrastructure/serviceaddr"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ShutdownTimeout bounds graceful shutdown of the HTTP server and exporters
const ShutdownTimeout = 30 * time.Second

// Runtime holds the process-wide dependencies built by Init
type Runtime struct {
	Config  *config.Config
	Logger  *zap.Logger
	Address *serviceaddr.Resolver

	tracer *telemetry.TracerProvider
	meter  *telemetry.MeterProvider
	logs   *telemetry.LoggerProvider
}

// Init loads configuration for appName and starts logging and telemetry.
// Callers must defer Shutdown.
func Init(ctx context.Context, appName, defaultPort string) (*Runtime, error) {
	cfg, err := config.Load(appName, defaultPort)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return newRuntime(ctx, cfg, log)
}

func newRuntime(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Runtime, error) {
	tel := cfg.Telemetry

	tracer, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           tel.Enabled,
		CollectorEndpoint: tel.CollectorEndpoint,
		SamplingRatio:     tel.SamplingRatio,
		ServiceName:       tel.ServiceName,
		Insecure:          tel.Insecure,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	meter, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           tel.MetricsEnabled,
		CollectorEndpoint: tel.CollectorEndpoint,
		ExportInterval:    tel.MetricsInterval,
		ServiceName:       tel.ServiceName,
		Insecure:          tel.Insecure,
	}, log)
	if err != nil {
		_ = tracer.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logs, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           tel.LogsEnabled,
		CollectorEndpoint: tel.CollectorEndpoint,
		ServiceName:       tel.ServiceName,
		Insecure:          tel.Insecure,
	}, log)
	if err != nil {
		_ = meter.Shutdown(ctx)
		_ = tracer.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize log export: %w", err)
	}

	log = logs.Bridge(log, zapcore.InfoLevel).With(zap.String("service", cfg.App.Name))

	return &Runtime{
		Config:  cfg,
		Logger:  log,
		Address: serviceaddr.New(cfg.App.Port),
		tracer:  tracer,
		meter:   meter,
		logs:    logs,
	}, nil
}

// Meter returns a meter of this process. It is a no-op meter when metrics are disabled.
func (r *Runtime) Meter(name string) metric.Meter {
	return r.meter.Meter(name)
}

// Shutdown flushes telemetry and the logger
func (r *Runtime) Shutdown(ctx context.Context) {
	if err := r.tracer.Shutdown(ctx); err != nil {
		r.Logger.Warn("Tracer shutdown failed", zap.Error(err))
	}
	if err := r.meter.Shutdown(ctx); err != nil {
		r.Logger.Warn("Meter shutdown failed", zap.Error(err))
	}
	if err := r.logs.Shutdown(ctx); err != nil {
		r.Logger.Warn("Log exporter shutdown failed", zap.Error(err))
	}
	_ = r.Logger.Sync()
}

// OpenDatabase connects the database of a core service and brings its schema
// up to date. service is one of the migration.Service* names.
func (r *Runtime) OpenDatabase(ctx context.Context, service string) (*persistence.Database, error) {
	dbCfg := &r.Config.Database

	db, err := persistence.NewDatabase(dbCfg, r.Logger, logger.MapGormLogLevel(r.Config.Log.Level))
	if err != nil {
		return nil, err
	}

	dbSystem := "postgresql"
	if dbCfg.Driver == config.DriverSQLite {
		dbSystem = "sqlite"
	}
	plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         r.Config.Telemetry.Enabled && r.Config.Telemetry.DBTraceEnabled,
		LogFullSQL:      r.Config.Telemetry.DBLogFullSQL,
		SlowQueryThresh: r.Config.Telemetry.DBSlowQueryThresh,
		DBSystem:        dbSystem,
	}, r.Logger)
	if err := plugin.Register(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to register database tracing: %w", err)
	}

	if r.Config.Telemetry.MetricsEnabled {
		sqlDB, err := db.DB.DB()
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		dbMetrics, err := telemetry.NewDBMetrics(r.Meter("db"), sqlDB, r.Config.Telemetry.DBSlowQueryThresh, r.Logger)
		if err == nil {
			err = db.DB.Use(dbMetrics)
		}
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to register database metrics: %w", err)
		}
	}

	if err := r.prepareSchema(ctx, db, service); err != nil {
		_ = db.Close()
		return nil, err
	}

	r.Logger.Info("Database connected",
		zap.String("driver", dbCfg.Driver),
		zap.String("service", service),
	)
	return db, nil
}

// prepareSchema auto-migrates sqlite (or when asked to) and applies the
// embedded SQL migrations otherwise.
func (r *Runtime) prepareSchema(ctx context.Context, db *persistence.Database, service string) error {
	if r.Config.Database.Driver == config.DriverSQLite || r.Config.Database.AutoMigrate {
		model, err := modelFor(service)
		if err != nil {
			return err
		}
		return db.AutoMigrate(model)
	}

	sqlDB, err := db.DB.WithContext(ctx).DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// the migrator is not closed: its driver would close sqlDB with it
	m, err := migration.New(sqlDB, service, r.Logger)
	if err != nil {
		return err
	}
	return m.Up()
}

func modelFor(service string) (any, error) {
	switch service {
	case migration.ServiceProduct:
		return &models.ProductModel{}, nil
	case migration.ServiceRecommendation:
		return &models.RecommendationModel{}, nil
	case migration.ServiceReview:
		return &models.ReviewModel{}, nil
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}
}

// NewEngine creates the gin engine with the shared middleware chain
func (r *Runtime) NewEngine() *gin.Engine {
	if r.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return router.NewEngine(router.EngineConfig{
		ServiceName:    r.Config.App.Name,
		Logger:         r.Logger,
		Meter:          r.Meter("http.server"),
		TracingEnabled: r.Config.Telemetry.Enabled,
		MaxBodyBytes:   r.Config.HTTP.MaxBodySize,
	})
}

// NewServer creates the HTTP server of this process
func (r *Runtime) NewServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:           ":" + r.Config.App.Port,
		Handler:        handler,
		ReadTimeout:    r.Config.HTTP.ReadTimeout,
		WriteTimeout:   r.Config.HTTP.WriteTimeout,
		IdleTimeout:    r.Config.HTTP.IdleTimeout,
		MaxHeaderBytes: r.Config.HTTP.MaxHeaderBytes,
	}
}

// Run serves handler until SIGINT or SIGTERM, then shuts down gracefully
func (r *Runtime) Run(handler http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", ":"+r.Config.App.Port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return r.Serve(ctx, lis, r.NewServer(handler))
}

// Serve runs srv on lis until ctx is done, then drains in-flight requests
// for at most ShutdownTimeout.
func (r *Runtime) Serve(ctx context.Context, lis net.Listener, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		r.Logger.Info("Server starting",
			zap.String("addr", lis.Addr().String()),
			zap.String("service_address", r.Address.Address()),
		)
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	r.Logger.Info("Server exited gracefully")
	return nil
}

// Exit logs err and terminates the process with status 1
func Exit(log *zap.Logger, msg string, err error) {
	if log == nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
	log.Error(msg, zap.Error(err))
	_ = log.Sync()
	os.Exit(1)
}
