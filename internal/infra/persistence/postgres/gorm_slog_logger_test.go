package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"goodah/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturedGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), buf
}

func sqlAndRows(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace_QueryError(t *testing.T) {
	l, buf := newCapturedGormLogger(&config.Config{})

	l.Trace(context.Background(), time.Now(), sqlAndRows("SELECT * FROM reports", 0), errors.New("connection reset"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGormSlogLogger_Trace_RecordNotFoundSkipped(t *testing.T) {
	l, buf := newCapturedGormLogger(&config.Config{})

	l.Trace(context.Background(), time.Now(), sqlAndRows("SELECT * FROM reports WHERE id = $1", 0), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_Trace_SlowQuery(t *testing.T) {
	l, buf := newCapturedGormLogger(&config.Config{})

	begin := time.Now().Add(-2 * gormSlowThreshold)
	l.Trace(context.Background(), begin, sqlAndRows("SELECT * FROM user_devices", 3), nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_Trace_FastQuerySilentByDefault(t *testing.T) {
	// Default level is Warn, so successful fast queries are not traced.
	l, buf := newCapturedGormLogger(&config.Config{})

	l.Trace(context.Background(), time.Now(), sqlAndRows("SELECT * FROM user_devices", 3), nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_Trace_FastQueryTracedInDebug(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l, buf := newCapturedGormLogger(cfg)

	l.Trace(context.Background(), time.Now(), sqlAndRows("SELECT * FROM user_devices", 3), nil)

	assert.Contains(t, buf.String(), "GORM query")
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	l, buf := newCapturedGormLogger(&config.Config{})

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlAndRows("SELECT 1", 1), errors.New("boom"))

	assert.Empty(t, buf.String())
}
