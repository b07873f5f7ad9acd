// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"goodah/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReportNotFound is returned when a report is not found.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository defines the interface for report-related database operations.
type ReportRepository interface {
	// CreateReport persists a new report record.
	CreateReport(ctx context.Context, report *entity.Report) error

	// FindReportByID retrieves a report by its unique ID.
	FindReportByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// ListReports retrieves all reports, newest first.
	ListReports(ctx context.Context) ([]*entity.Report, error)
}
