package telemetry

import (
	"context"
	"database/sql"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Database metric attribute keys.
var (
	AttrDBOperation = attribute.Key("db.operation")
	AttrDBTable     = attribute.Key("db.table")
	AttrDBState     = attribute.Key("state")
)

// DBDurationBuckets are bucket boundaries for query duration (seconds).
var DBDurationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// DBMetrics is a GORM plugin recording query count, latency and slow queries
// per operation, plus connection pool gauges read from sql.DB.Stats.
type DBMetrics struct {
	queryTotal     *Counter
	queryDuration  *Histogram
	slowQueryTotal *Counter
	slowThreshold  time.Duration
	pool           metric.Registration
	logger         *zap.Logger
}

// NewDBMetrics creates the instruments on meter. Pool gauges are observed from
// sqlDB on every collection until Close.
func NewDBMetrics(meter metric.Meter, sqlDB *sql.DB, slowThreshold time.Duration, logger *zap.Logger) (*DBMetrics, error) {
	if slowThreshold == 0 {
		slowThreshold = 200 * time.Millisecond
	}

	queryTotal, err := NewCounter(meter, "db_query_total", "Total number of database queries by operation", "{query}")
	if err != nil {
		return nil, err
	}
	queryDuration, err := NewHistogram(meter, HistogramOpts{
		Name:        "db_query_duration_seconds",
		Description: "Database query latency distribution in seconds",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	slowQueryTotal, err := NewCounter(meter, "db_slow_query_total", "Total number of slow database queries", "{query}")
	if err != nil {
		return nil, err
	}

	connections, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Number of connections in the pool by state"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, err
	}
	maxConnections, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Maximum number of connections in the pool"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, err
	}
	pool, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sqlDB.Stats()
		o.ObserveInt64(maxConnections, int64(stats.MaxOpenConnections))
		o.ObserveInt64(connections, int64(stats.Idle), metric.WithAttributes(AttrDBState.String("idle")))
		o.ObserveInt64(connections, int64(stats.InUse), metric.WithAttributes(AttrDBState.String("in_use")))
		o.ObserveInt64(connections, int64(stats.OpenConnections), metric.WithAttributes(AttrDBState.String("open")))
		return nil
	}, connections, maxConnections)
	if err != nil {
		return nil, err
	}

	return &DBMetrics{
		queryTotal:     queryTotal,
		queryDuration:  queryDuration,
		slowQueryTotal: slowQueryTotal,
		slowThreshold:  slowThreshold,
		pool:           pool,
		logger:         logger,
	}, nil
}

// Name implements gorm.Plugin
func (m *DBMetrics) Name() string {
	return "db_metrics"
}

// Initialize implements gorm.Plugin
func (m *DBMetrics) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	registrations := []struct {
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
		op     string
	}{
		{cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register, "INSERT"},
		{cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register, "SELECT"},
		{cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register, "DELETE"},
		{cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register, "ROW"},
		{cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register, "RAW"},
	}
	for _, r := range registrations {
		op := r.op
		if err := r.before("db_metrics:before_"+op, markMetricsStart); err != nil {
			return err
		}
		if err := r.after("db_metrics:after_"+op, func(db *gorm.DB) { m.record(db, op) }); err != nil {
			return err
		}
	}
	m.logger.Info("Database metrics enabled", zap.Duration("slow_query_threshold", m.slowThreshold))
	return nil
}

// Close stops observing the connection pool
func (m *DBMetrics) Close() error {
	return m.pool.Unregister()
}

const metricsStartTimeKey contextKey = "db_metrics_start_time"

func markMetricsStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, metricsStartTimeKey, time.Now())
	}
}

func (m *DBMetrics) record(db *gorm.DB, operation string) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	start, ok := ctx.Value(metricsStartTimeKey).(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(start)

	m.queryTotal.Inc(ctx, AttrDBOperation.String(operation))
	m.queryDuration.RecordDuration(ctx, elapsed, AttrDBOperation.String(operation))
	if elapsed > m.slowThreshold {
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		m.slowQueryTotal.Inc(ctx, AttrDBTable.String(table))
	}
}
