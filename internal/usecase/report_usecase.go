// Package usecase defines the application use-case interfaces.
package usecase

import (
	"context"

	"goodah/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportInput carries the free-text fields of a new safety report. Every
// field is required; validation happens before any storage call.
type ReportInput struct {
	ReportType                  string `json:"reportType" validate:"required"`
	Status                      string `json:"status" validate:"required"`
	Ship                        string `json:"ship" validate:"required"`
	Observations                string `json:"observations" validate:"required"`
	Cause                       string `json:"cause" validate:"required"`
	ActionTaken                 string `json:"actionTaken" validate:"required"`
	Position                    string `json:"position" validate:"required"`
	Location                    string `json:"location" validate:"required"`
	Procedure                   string `json:"procedure" validate:"required"`
	ActionsAndPositions         string `json:"actionsAndPositions" validate:"required"`
	Permits                     string `json:"permits" validate:"required"`
	IsolationAndBarriers        string `json:"isolationAndBarriers" validate:"required"`
	PersonalProtectiveEquipment string `json:"personalProtectiveEquipment" validate:"required"`
	ToolsAndEquipment           string `json:"toolsAndEquipment" validate:"required"`
	Housekeeping                string `json:"housekeeping" validate:"required"`
	Others                      string `json:"others" validate:"required"`
}

// ReportUsecase defines the interface for report management use cases
type ReportUsecase interface {
	// CreateReport validates the input, stamps the submitting identity and
	// persists a new report
	CreateReport(ctx context.Context, input *ReportInput) (*entity.Report, error)

	// ListReports retrieves all reports
	ListReports(ctx context.Context) ([]*entity.Report, error)

	// GetReport retrieves a single report by ID
	GetReport(ctx context.Context, id uuid.UUID) (*entity.Report, error)
}
