package postgres

import (
	"context"

	"goodah/internal/domain/entity"
	domainerrors "goodah/internal/domain/errors"
	"goodah/internal/domain/repository"
	"goodah/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// CreateReport persists a new report record.
func (repo *reportRepository) CreateReport(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrReportCreationFailed.WrapMessage("missing required report field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	// Update the entity with generated timestamps
	report.CreatedAt = reportM.CreatedAt
	report.UpdatedAt = reportM.UpdatedAt

	return nil
}

// FindReportByID retrieves a report by its unique ID.
func (repo *reportRepository) FindReportByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportM model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by ID")
	}

	return toReportDomain(&reportM), nil
}

// ListReports retrieves all reports, newest first.
func (repo *reportRepository) ListReports(ctx context.Context) ([]*entity.Report, error) {
	var reportModels []*model.ReportModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	reports := make([]*entity.Report, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toReportDomain(reportM))
	}

	return reports, nil
}

// --- Mapper Functions ---

// toReportDomain converts a GORM ReportModel to a domain Report entity.
func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:                          data.ID,
		ClerkID:                     data.ClerkID,
		CreatedAt:                   data.CreatedAt,
		UpdatedAt:                   data.UpdatedAt,
		ReportType:                  data.ReportType,
		Status:                      data.Status,
		Ship:                        data.Ship,
		Observations:                data.Observations,
		Cause:                       data.Cause,
		ActionTaken:                 data.ActionTaken,
		Position:                    data.Position,
		Location:                    data.Location,
		Procedure:                   data.Procedure,
		ActionsAndPositions:         data.ActionsAndPositions,
		Permits:                     data.Permits,
		IsolationAndBarriers:        data.IsolationAndBarriers,
		PersonalProtectiveEquipment: data.PersonalProtectiveEquipment,
		ToolsAndEquipment:           data.ToolsAndEquipment,
		Housekeeping:                data.Housekeeping,
		Others:                      data.Others,
	}
}

// fromReportDomain converts a domain Report entity to a GORM ReportModel.
func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	return &model.ReportModel{
		ID:                          data.ID,
		ClerkID:                     data.ClerkID,
		CreatedAt:                   data.CreatedAt,
		UpdatedAt:                   data.UpdatedAt,
		ReportType:                  data.ReportType,
		Status:                      data.Status,
		Ship:                        data.Ship,
		Observations:                data.Observations,
		Cause:                       data.Cause,
		ActionTaken:                 data.ActionTaken,
		Position:                    data.Position,
		Location:                    data.Location,
		Procedure:                   data.Procedure,
		ActionsAndPositions:         data.ActionsAndPositions,
		Permits:                     data.Permits,
		IsolationAndBarriers:        data.IsolationAndBarriers,
		PersonalProtectiveEquipment: data.PersonalProtectiveEquipment,
		ToolsAndEquipment:           data.ToolsAndEquipment,
		Housekeeping:                data.Housekeeping,
		Others:                      data.Others,
	}
}
