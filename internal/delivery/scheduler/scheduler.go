// Package scheduler runs the daily campaign on a fixed interval when enabled.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"goodah/config"
	"goodah/internal/delivery"
	"goodah/internal/usecase"

	"go.uber.org/fx"
)

// ServerParams holds dependencies for the campaign scheduler
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	CampaignUC usecase.CampaignUsecase
}

type campaignScheduler struct {
	cfg        *config.Config
	logger     *slog.Logger
	campaignUC usecase.CampaignUsecase
	stop       chan struct{}
}

// NewScheduler creates the in-process campaign trigger. When the campaign is
// disabled in config it still satisfies the Delivery contract and simply
// idles, so the /dailyNotify endpoint stays the only trigger.
func NewScheduler(params ServerParams) delivery.Delivery {
	s := &campaignScheduler{
		cfg:        params.Config,
		logger:     params.Logger,
		campaignUC: params.CampaignUC,
		stop:       make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(s.stop)

			return nil
		},
	})

	return s
}

// Serve runs the scheduler loop until shutdown. A failed campaign run is
// logged and the loop keeps ticking; the next interval gets a fresh attempt.
func (s *campaignScheduler) Serve(ctx context.Context) error {
	if !s.cfg.Campaign.Enabled {
		s.logger.Info("Campaign scheduler disabled")
		<-s.stop

		return nil
	}

	interval := s.cfg.Campaign.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	s.logger.Info("Campaign scheduler started", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			s.logger.Info("Campaign scheduler stopped")

			return nil
		case <-ticker.C:
			if _, err := s.campaignUC.RunDailyCampaign(ctx); err != nil {
				s.logger.Error("Scheduled campaign failed", slog.Any("error", err))
			}
		}
	}
}
