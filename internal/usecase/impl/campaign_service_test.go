package impl

import (
	"context"
	"testing"

	"goodah/internal/domain/entity"
	"goodah/internal/domain/service"
	mockRepo "goodah/internal/mocks/repository"
	mockSvc "goodah/internal/mocks/service"
	mockUC "goodah/internal/mocks/usecase"
	"goodah/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// campaignServiceFixtures holds all test dependencies for campaign service tests.
type campaignServiceFixtures struct {
	service    usecase.CampaignUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	pushUC     *mockUC.MockPushUsecase
	publisher  *mockSvc.MockCampaignEventPublisher
}

func createTestCampaignService(t *testing.T) campaignServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushUC := mockUC.NewMockPushUsecase(t)
	publisher := mockSvc.NewMockCampaignEventPublisher(t)
	service := NewCampaignService(deviceRepo, pushUC, publisher, newDiscardLogger())

	return campaignServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		pushUC:     pushUC,
		publisher:  publisher,
	}
}

func TestCampaignService_RunDailyCampaign_AllDelivered(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	devices := []*entity.UserDevice{
		{Token: "ExponentPushToken[a]", UserID: "user-1"},
		{Token: "ExponentPushToken[b]", UserID: "user-2"},
	}

	fx.deviceRepo.EXPECT().
		ListDevices(ctx).
		Return(devices, nil)

	for _, device := range devices {
		fx.pushUC.EXPECT().
			SendPush(ctx, device.Token, CampaignTitle, CampaignBody).
			Return(true).
			Once()
	}

	fx.publisher.EXPECT().
		PublishCampaignEvent(ctx, mock.AnythingOfType("*service.CampaignEvent")).
		Return(nil)

	result, err := fx.service.RunDailyCampaign(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.NotEmpty(t, result.CampaignID)
	assert.False(t, result.FinishedAt.Before(result.StartedAt))
}

func TestCampaignService_RunDailyCampaign_FailureIsolated(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	devices := []*entity.UserDevice{
		{Token: "ExponentPushToken[a]", UserID: "user-1"},
		{Token: "ExponentPushToken[b]", UserID: "user-2"},
		{Token: "ExponentPushToken[c]", UserID: "user-3"},
	}

	fx.deviceRepo.EXPECT().
		ListDevices(ctx).
		Return(devices, nil)

	// The middle dispatch fails; the remaining devices must still be visited.
	fx.pushUC.EXPECT().
		SendPush(ctx, "ExponentPushToken[a]", CampaignTitle, CampaignBody).
		Return(true).
		Once()
	fx.pushUC.EXPECT().
		SendPush(ctx, "ExponentPushToken[b]", CampaignTitle, CampaignBody).
		Return(false).
		Once()
	fx.pushUC.EXPECT().
		SendPush(ctx, "ExponentPushToken[c]", CampaignTitle, CampaignBody).
		Return(true).
		Once()

	var event *service.CampaignEvent
	fx.publisher.EXPECT().
		PublishCampaignEvent(ctx, mock.AnythingOfType("*service.CampaignEvent")).
		Run(func(_ context.Context, ev *service.CampaignEvent) {
			event = ev
		}).
		Return(nil)

	result, err := fx.service.RunDailyCampaign(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)

	require.NotNil(t, event)
	assert.Equal(t, result.CampaignID, event.CampaignID)
	assert.Equal(t, 2, event.Sent)
	assert.Equal(t, 1, event.Failed)
}

func TestCampaignService_RunDailyCampaign_NoDevices(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		ListDevices(ctx).
		Return([]*entity.UserDevice{}, nil)

	fx.publisher.EXPECT().
		PublishCampaignEvent(ctx, mock.AnythingOfType("*service.CampaignEvent")).
		Return(nil)

	result, err := fx.service.RunDailyCampaign(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestCampaignService_RunDailyCampaign_ListError(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		ListDevices(ctx).
		Return(nil, errors.New("database error"))

	result, err := fx.service.RunDailyCampaign(ctx)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to fetch device list")
}

func TestCampaignService_RunDailyCampaign_PublisherErrorNonFatal(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	devices := []*entity.UserDevice{
		{Token: "ExponentPushToken[a]", UserID: "user-1"},
	}

	fx.deviceRepo.EXPECT().
		ListDevices(ctx).
		Return(devices, nil)

	fx.pushUC.EXPECT().
		SendPush(ctx, "ExponentPushToken[a]", CampaignTitle, CampaignBody).
		Return(true)

	fx.publisher.EXPECT().
		PublishCampaignEvent(ctx, mock.AnythingOfType("*service.CampaignEvent")).
		Return(errors.New("broker unavailable"))

	result, err := fx.service.RunDailyCampaign(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}
