package usecase

import (
	"context"

	"goodah/internal/domain/entity"
)

// FeedbackUsecase defines the interface for feedback intake
type FeedbackUsecase interface {
	// SubmitFeedback validates and persists one feedback entry. The rating
	// arrives as whatever JSON value the client sent and is coerced to a
	// number; a missing field or non-numeric rating fails validation.
	SubmitFeedback(ctx context.Context, name string, rating any, comment string) (*entity.Feedback, error)
}
