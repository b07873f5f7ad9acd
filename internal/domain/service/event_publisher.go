package service

import "context"

// CampaignEvent summarises one finished notification campaign.
type CampaignEvent struct {
	CampaignID string `json:"campaign_id"`
	Total      int    `json:"total"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
}

// CampaignEventPublisher defines the interface for publishing campaign
// summary events. Publishing is best effort; callers log and continue
// on failure.
type CampaignEventPublisher interface {
	// PublishCampaignEvent publishes a campaign summary event.
	PublishCampaignEvent(ctx context.Context, event *CampaignEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
