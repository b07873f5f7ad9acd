package impl

import (
	"context"
	"testing"

	"goodah/internal/domain/entity"
	domainerrors "goodah/internal/domain/errors"
	"goodah/internal/domain/repository"
	mockRepo "goodah/internal/mocks/repository"
	mockSvc "goodah/internal/mocks/service"
	"goodah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service    usecase.ReportUsecase
	reportRepo *mockRepo.MockReportRepository
	identity   *mockSvc.MockIdentityResolver
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)
	identity := mockSvc.NewMockIdentityResolver(t)
	service := NewReportService(reportRepo, identity)

	return reportServiceFixtures{
		service:    service,
		reportRepo: reportRepo,
		identity:   identity,
	}
}

func validReportInput() *usecase.ReportInput {
	return &usecase.ReportInput{
		ReportType:                  "near-miss",
		Status:                      "open",
		Ship:                        "MV Horizon",
		Observations:                "loose railing on deck 3",
		Cause:                       "corroded bolts",
		ActionTaken:                 "area cordoned off",
		Position:                    "deckhand",
		Location:                    "aft deck",
		Procedure:                   "followed",
		ActionsAndPositions:         "ok",
		Permits:                     "n/a",
		IsolationAndBarriers:        "in place",
		PersonalProtectiveEquipment: "worn",
		ToolsAndEquipment:           "inspected",
		Housekeeping:                "good",
		Others:                      "none",
	}
}

func TestReportService_CreateReport_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	input := validReportInput()

	fx.identity.EXPECT().
		Resolve(ctx).
		Return("user_anon", nil)

	fx.reportRepo.EXPECT().
		CreateReport(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)

	report, err := fx.service.CreateReport(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, "user_anon", report.ClerkID)
	assert.False(t, report.CreatedAt.IsZero())
	assert.Equal(t, report.CreatedAt, report.UpdatedAt)
	assert.Equal(t, input.ReportType, report.ReportType)
	assert.Equal(t, input.Status, report.Status)
	assert.Equal(t, input.Ship, report.Ship)
	assert.Equal(t, input.Observations, report.Observations)
	assert.Equal(t, input.Cause, report.Cause)
	assert.Equal(t, input.ActionTaken, report.ActionTaken)
	assert.Equal(t, input.Others, report.Others)
}

func TestReportService_CreateReport_MissingField(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	input := validReportInput()
	input.Observations = ""

	report, err := fx.service.CreateReport(ctx, input)
	assert.Error(t, err)
	assert.Nil(t, report)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
	fx.reportRepo.AssertNotCalled(t, "CreateReport", mock.Anything, mock.Anything)
}

func TestReportService_CreateReport_NilInput(t *testing.T) {
	fx := createTestReportService(t)

	report, err := fx.service.CreateReport(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, report)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
}

func TestReportService_CreateReport_StorageError(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	fx.identity.EXPECT().
		Resolve(ctx).
		Return("user_anon", nil)

	fx.reportRepo.EXPECT().
		CreateReport(ctx, mock.AnythingOfType("*entity.Report")).
		Return(errors.New("database error"))

	report, err := fx.service.CreateReport(ctx, validReportInput())
	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to create report")
}

func TestReportService_ListReports_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	stored := []*entity.Report{
		{ID: uuid.New(), ClerkID: "user_anon", ReportType: "near-miss"},
		{ID: uuid.New(), ClerkID: "user_anon", ReportType: "incident"},
	}

	fx.reportRepo.EXPECT().
		ListReports(ctx).
		Return(stored, nil)

	reports, err := fx.service.ListReports(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, stored, reports)
}

func TestReportService_ListReports_Error(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	fx.reportRepo.EXPECT().
		ListReports(ctx).
		Return(nil, errors.New("database error"))

	reports, err := fx.service.ListReports(ctx)
	assert.Error(t, err)
	assert.Nil(t, reports)
	assert.Contains(t, err.Error(), "failed to list reports")
}

func TestReportService_GetReport_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	reportID := uuid.New()
	stored := &entity.Report{ID: reportID, ClerkID: "user_anon"}

	fx.reportRepo.EXPECT().
		FindReportByID(ctx, reportID).
		Return(stored, nil)

	report, err := fx.service.GetReport(ctx, reportID)
	require.NoError(t, err)
	assert.Equal(t, stored, report)
}

func TestReportService_GetReport_NotFound(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	reportID := uuid.New()

	fx.reportRepo.EXPECT().
		FindReportByID(ctx, reportID).
		Return(nil, repository.ErrReportNotFound)

	report, err := fx.service.GetReport(ctx, reportID)
	assert.Error(t, err)
	assert.Nil(t, report)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrReportNotFound.ErrorCode(), appErr.ErrorCode())
}
