package usecase

import (
	"context"
	"time"
)

// CampaignResult summarises one daily-reminder fan-out.
type CampaignResult struct {
	CampaignID string    `json:"campaign_id"`
	Total      int       `json:"total"`
	Sent       int       `json:"sent"`
	Failed     int       `json:"failed"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// CampaignUsecase defines the interface for the daily notification campaign
type CampaignUsecase interface {
	// RunDailyCampaign sends the daily reminder to every registered device.
	// One device's failure never prevents dispatch to the others; an error is
	// returned only when the campaign cannot start at all.
	RunDailyCampaign(ctx context.Context) (*CampaignResult, error)
}
