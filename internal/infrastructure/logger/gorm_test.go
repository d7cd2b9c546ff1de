package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_LogMode(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Info)

	changed := gl.LogMode(gormlogger.Warn).(*GormLogger)
	assert.Equal(t, gormlogger.Warn, changed.level)
	assert.Equal(t, gormlogger.Info, gl.level)
}

func TestGormLogger_Trace(t *testing.T) {
	sql := func() (string, int64) { return `SELECT * FROM "products"`, 1 }

	t.Run("sql error carries request id", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Warn)

		ctx, _ := WithRequestID(context.Background(), zap.NewNop(), "req-1")
		gl.Trace(ctx, time.Now(), sql, errors.New("connection reset"))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "SQL Error", logs.All()[0].Message)
		assert.Equal(t, "req-1", logs.All()[0].ContextMap()["request_id"])
	})

	t.Run("trace context is attached", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Info)

		traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
		spanID, _ := trace.SpanIDFromHex("0102030405060708")
		ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    traceID,
			SpanID:     spanID,
			TraceFlags: trace.FlagsSampled,
		}))
		gl.Trace(ctx, time.Now(), sql, nil)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "SQL Query", entry.Message)
		assert.Equal(t, traceID.String(), entry.ContextMap()["trace_id"])
	})

	t.Run("record not found ignored", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Info)

		gl.Trace(context.Background(), time.Now(), sql, gormlogger.ErrRecordNotFound)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("queries need info level", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Warn)

		gl.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Silent)

		gl.Trace(context.Background(), time.Now(), sql, errors.New("x"))
		assert.Equal(t, 0, logs.Len())
	})
}

func TestGormLogger_Printf(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), gormlogger.Warn)

	gl.Info(context.Background(), "skipped %d", 1)
	gl.Warn(context.Background(), "slow %s", "migration")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "slow migration", logs.All()[0].Message)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("WARN"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}
