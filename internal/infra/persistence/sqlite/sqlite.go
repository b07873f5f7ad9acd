// Package sqlite opens a file-backed GORM database for local development.
// The repositories under the postgres package are plain GORM and work
// unchanged against this driver.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"goodah/config"
	"goodah/internal/infra/persistence/model"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database and migrates the schema. Unlike the
// Postgres target there is no external migration step for local runs.
func New(params Params) (*gorm.DB, error) {
	dsn := params.Config.Database.SQLiteDSN
	if dsn == "" {
		dsn = ":memory:"
	}

	if err := ensureDirectory(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	if err := db.AutoMigrate(
		&model.ReportModel{},
		&model.UserDeviceModel{},
		&model.FeedbackModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate sqlite schema")
	}

	params.Logger.Info("SQLite database opened", slog.String("dsn", dsn))

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

func ensureDirectory(dsn string) error {
	candidate := strings.TrimSpace(dsn)
	if candidate == "" || candidate == ":memory:" {
		return nil
	}

	candidate = strings.TrimPrefix(strings.ToLower(candidate), "file:")
	if idx := strings.Index(candidate, "?"); idx >= 0 {
		candidate = candidate[:idx]
	}

	dir := filepath.Dir(candidate)
	if dir == "" || dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create sqlite directory %q", dir)
	}

	return nil
}
