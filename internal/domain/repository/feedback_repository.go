package repository

import (
	"context"

	"goodah/internal/domain/entity"
)

// FeedbackRepository defines the interface for feedback database operations.
type FeedbackRepository interface {
	// CreateFeedback persists a new feedback entry.
	CreateFeedback(ctx context.Context, feedback *entity.Feedback) error
}
