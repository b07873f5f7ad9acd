// Package impl contains the concrete use-case services.
package impl

import (
	"context"
	"time"

	"goodah/internal/domain/entity"
	domainerrors "goodah/internal/domain/errors"
	"goodah/internal/domain/repository"
	"goodah/internal/domain/service"
	"goodah/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type reportService struct {
	reportRepo repository.ReportRepository
	identity   service.IdentityResolver
	validate   *validator.Validate
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo repository.ReportRepository, identity service.IdentityResolver) usecase.ReportUsecase {
	return &reportService{
		reportRepo: reportRepo,
		identity:   identity,
		validate:   validator.New(),
	}
}

// CreateReport validates the input, stamps the submitting identity and
// persists a new report. Validation failures never reach storage.
func (s *reportService) CreateReport(ctx context.Context, input *usecase.ReportInput) (*entity.Report, error) {
	if input == nil {
		return nil, domainerrors.ErrValidation.WithDetails("report input is missing")
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidation.WithDetails(err.Error())
	}

	clerkID, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve submitting identity")
	}

	now := time.Now()
	report := &entity.Report{
		ID:                          uuid.New(),
		ClerkID:                     clerkID,
		CreatedAt:                   now,
		UpdatedAt:                   now,
		ReportType:                  input.ReportType,
		Status:                      input.Status,
		Ship:                        input.Ship,
		Observations:                input.Observations,
		Cause:                       input.Cause,
		ActionTaken:                 input.ActionTaken,
		Position:                    input.Position,
		Location:                    input.Location,
		Procedure:                   input.Procedure,
		ActionsAndPositions:         input.ActionsAndPositions,
		Permits:                     input.Permits,
		IsolationAndBarriers:        input.IsolationAndBarriers,
		PersonalProtectiveEquipment: input.PersonalProtectiveEquipment,
		ToolsAndEquipment:           input.ToolsAndEquipment,
		Housekeeping:                input.Housekeeping,
		Others:                      input.Others,
	}

	if err := s.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to create report")
	}

	return report, nil
}

// ListReports retrieves all reports
func (s *reportService) ListReports(ctx context.Context) ([]*entity.Report, error) {
	reports, err := s.reportRepo.ListReports(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}

// GetReport retrieves a single report by ID
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	report, err := s.reportRepo.FindReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by ID")
	}

	return report, nil
}
