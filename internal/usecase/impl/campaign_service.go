package impl

import (
	"context"
	"log/slog"
	"time"

	"goodah/internal/domain/repository"
	"goodah/internal/domain/service"
	"goodah/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Fixed daily-reminder message sent to every device.
const (
	CampaignTitle = "Time to report!"
	CampaignBody  = "Don't forget to submit your daily safety report."
)

type campaignService struct {
	deviceRepo repository.DeviceRepository
	pushUC     usecase.PushUsecase
	publisher  service.CampaignEventPublisher
	logger     *slog.Logger
}

// NewCampaignService creates a new campaign runner instance
func NewCampaignService(
	deviceRepo repository.DeviceRepository,
	pushUC usecase.PushUsecase,
	publisher service.CampaignEventPublisher,
	logger *slog.Logger,
) usecase.CampaignUsecase {
	return &campaignService{
		deviceRepo: deviceRepo,
		pushUC:     pushUC,
		publisher:  publisher,
		logger:     logger,
	}
}

// RunDailyCampaign fans the daily reminder out to every registered device.
// Dispatches are failure-isolated per device: SendPush reduces every failure
// to false, so the loop always visits the full device list. Only a failed
// device-list fetch aborts the campaign.
func (s *campaignService) RunDailyCampaign(ctx context.Context) (*usecase.CampaignResult, error) {
	startedAt := time.Now()

	devices, err := s.deviceRepo.ListDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch device list")
	}

	result := &usecase.CampaignResult{
		CampaignID: uuid.NewString(),
		Total:      len(devices),
		StartedAt:  startedAt,
	}

	s.logger.Info("Starting daily campaign",
		slog.String("campaign_id", result.CampaignID),
		slog.Int("devices", len(devices)),
	)

	for _, device := range devices {
		if s.pushUC.SendPush(ctx, device.Token, CampaignTitle, CampaignBody) {
			result.Sent++
		} else {
			result.Failed++
			s.logger.Warn("Campaign dispatch failed",
				slog.String("campaign_id", result.CampaignID),
				slog.String("token", device.Token),
			)
		}
	}

	result.FinishedAt = time.Now()

	s.logger.Info("Daily campaign finished",
		slog.String("campaign_id", result.CampaignID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	// Summary event is best effort; a publisher failure does not fail the
	// campaign.
	event := &service.CampaignEvent{
		CampaignID: result.CampaignID,
		Total:      result.Total,
		Sent:       result.Sent,
		Failed:     result.Failed,
		StartedAt:  result.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt: result.FinishedAt.UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishCampaignEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish campaign event",
			slog.String("campaign_id", result.CampaignID),
			slog.Any("error", err),
		)
	}

	return result, nil
}
